package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

// NetworkResolver resolves network names to configurations
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
	lookupEnv     func(string) (string, bool)
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig, lookupEnv: os.LookupEnv}
}

// Resolve builds the network configuration. The RPC URL comes from rpcURL,
// then <NAME>_RPC_URL, then foundry.toml [rpc_endpoints]. A zero chain ID
// falls back to the known chain of the name, or is detected on connect.
func (r *NetworkResolver) Resolve(name, rpcURL string, chainID uint64) (*config.Network, error) {
	if rpcURL == "" {
		if url, ok := r.lookupEnv(GenerateEnvVarName(name)); ok {
			rpcURL = url
		}
	}
	if rpcURL == "" {
		rpcURL = r.foundryConfig.RpcEndpoints[name]
	}
	if varName, unresolved := unexpandedVar(rpcURL); unresolved {
		return nil, fmt.Errorf("rpc endpoint for network '%s' references unset variable %s", name, varName)
	}

	if chainID == 0 {
		chainID = domain.KnownNetworks[strings.ToLower(name)]
	}

	network := &config.Network{
		Name:    name,
		RPCURL:  rpcURL,
		ChainID: chainID,
	}
	network.ExplorerURL, network.VerifierURL = r.explorer(name, chainID)
	return network, nil
}

// EtherscanKey returns the [etherscan] key configured for the network
func (r *NetworkResolver) EtherscanKey(name string) string {
	key := r.foundryConfig.Etherscan[name].Key
	if _, unresolved := DetectEnvVar(key); unresolved {
		return ""
	}
	return key
}

// explorer returns the explorer site and, when configured, its API URL
func (r *NetworkResolver) explorer(name string, chainID uint64) (site, api string) {
	if etherscan, exists := r.foundryConfig.Etherscan[name]; exists && etherscan.URL != "" {
		api = etherscan.URL
	}
	return ExplorerURL(chainID), api
}

// ExplorerURL returns the block explorer of a chain, or "" when unknown
func ExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 80001:
		return "https://mumbai.polygonscan.com"
	case 80002:
		return "https://amoy.polygonscan.com"
	case 10:
		return "https://optimistic.etherscan.io"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	default:
		return ""
	}
}

// unexpandedVar reports a ${VAR} reference left behind because VAR is unset
func unexpandedVar(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	return DetectEnvVar(url)
}
