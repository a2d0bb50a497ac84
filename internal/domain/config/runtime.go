package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Chain settings
	Network        *Network
	FactoryAddress common.Address
	PrivateKey     string `json:"-"`
	StartBlock     uint64

	// Keeper behaviour
	PollInterval   time.Duration
	RPCRateLimit   float64       // campaign RPC calls per second, 0 disables the limiter
	ReceiptTimeout time.Duration // bound on waiting for an upkeep receipt, 0 waits forever

	// Verification settings
	Verify          bool
	VerifyDelay     time.Duration
	EtherscanAPIKey string `json:"-"`
	Artifacts       ArtifactPaths

	// Observability
	Debug       bool
	MetricsAddr string

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
	VerifierURL string `json:"verifierUrl,omitempty"` // explorer API, from foundry.toml [etherscan]
}

// IsWebsocket reports whether the RPC endpoint supports push subscriptions
func (n *Network) IsWebsocket() bool {
	return len(n.RPCURL) > 5 && (n.RPCURL[:5] == "ws://" || (len(n.RPCURL) > 6 && n.RPCURL[:6] == "wss://"))
}

// ArtifactPaths are the forge "path:Contract" identifiers of each campaign variant
type ArtifactPaths struct {
	Target string `mapstructure:"target"`
	Time   string `mapstructure:"time"`
	Steps  string `mapstructure:"steps"`
}
