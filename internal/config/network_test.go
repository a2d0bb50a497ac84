package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

func TestNetworkResolver_Resolve(t *testing.T) {
	foundry := &config.FoundryConfig{
		RpcEndpoints: map[string]string{
			"sepolia": "https://foundry.sepolia",
			"polygon": "https://foundry.polygon",
			"custom":  "http://custom:8545",
			"unset":   "${MISSING_RPC}",
		},
		Etherscan: map[string]config.EtherscanConfig{
			"polygon": {Key: "POLYKEY", URL: "https://api.polygonscan.com/api"},
			"sepolia": {Key: "${MISSING_KEY}"},
		},
	}
	env := map[string]string{"SEPOLIA_RPC_URL": "https://env.sepolia"}
	r := NewNetworkResolver(foundry)
	r.lookupEnv = func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	tests := []struct {
		name     string
		network  string
		rpcURL   string
		chainID  uint64
		expected *config.Network
	}{
		{
			name:    "explicit url wins",
			network: "sepolia",
			rpcURL:  "wss://explicit",
			expected: &config.Network{Name: "sepolia", RPCURL: "wss://explicit", ChainID: 11155111,
				ExplorerURL: "https://sepolia.etherscan.io"},
		},
		{
			name:    "env var before foundry.toml",
			network: "sepolia",
			expected: &config.Network{Name: "sepolia", RPCURL: "https://env.sepolia", ChainID: 11155111,
				ExplorerURL: "https://sepolia.etherscan.io"},
		},
		{
			name:    "foundry endpoint with verifier url",
			network: "polygon",
			expected: &config.Network{Name: "polygon", RPCURL: "https://foundry.polygon", ChainID: 137,
				ExplorerURL: "https://polygonscan.com", VerifierURL: "https://api.polygonscan.com/api"},
		},
		{
			name:     "unknown network detects chain on connect",
			network:  "custom",
			expected: &config.Network{Name: "custom", RPCURL: "http://custom:8545"},
		},
		{
			name:    "configured chain id",
			network: "custom",
			chainID: 80002,
			expected: &config.Network{Name: "custom", RPCURL: "http://custom:8545", ChainID: 80002,
				ExplorerURL: "https://amoy.polygonscan.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := r.Resolve(tt.network, tt.rpcURL, tt.chainID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, network)
		})
	}

	t.Run("unset variable", func(t *testing.T) {
		_, err := r.Resolve("unset", "", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MISSING_RPC")
	})

	t.Run("etherscan keys", func(t *testing.T) {
		assert.Equal(t, "POLYKEY", r.EtherscanKey("polygon"))
		assert.Empty(t, r.EtherscanKey("sepolia"))
		assert.Empty(t, r.EtherscanKey("mainnet"))
	})
}

func TestExplorerURL(t *testing.T) {
	assert.Equal(t, "https://sepolia.etherscan.io", ExplorerURL(11155111))
	assert.Equal(t, "https://mumbai.polygonscan.com", ExplorerURL(80001))
	assert.Empty(t, ExplorerURL(31337))
}
