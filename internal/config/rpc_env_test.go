package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		name       string
		rawValue   string
		wantEnvVar string
		wantIsVar  bool
	}{
		{"simple env var", "${SEPOLIA_RPC_URL}", "SEPOLIA_RPC_URL", true},
		{"env var with underscores", "${POLYGON_MUMBAI_RPC_URL}", "POLYGON_MUMBAI_RPC_URL", true},
		{"hardcoded URL", "https://rpc.sepolia.org", "", false},
		{"env var with path suffix", "${MY_VAR}/path", "", false},
		{"empty string", "", "", false},
		{"localhost URL", "http://localhost:8545", "", false},
		{"env var starting with underscore", "${_MY_VAR}", "_MY_VAR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envVar, isVar := DetectEnvVar(tt.rawValue)
			assert.Equal(t, tt.wantEnvVar, envVar)
			assert.Equal(t, tt.wantIsVar, isVar)
		})
	}
}

func TestGenerateEnvVarName(t *testing.T) {
	tests := []struct {
		network string
		want    string
	}{
		{"sepolia", "SEPOLIA_RPC_URL"},
		{"polygon-mumbai", "POLYGON_MUMBAI_RPC_URL"},
		{"base.sepolia", "BASE_SEPOLIA_RPC_URL"},
		{"localhost", "LOCALHOST_RPC_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateEnvVarName(tt.network))
		})
	}
}
