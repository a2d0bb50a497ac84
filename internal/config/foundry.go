package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

// loadDotEnv loads .env and .env.local from the project root. Variables
// already set in the environment win.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig parses foundry.toml. A missing file yields an empty config.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	cfg := &config.FoundryConfig{
		Profile:      map[string]config.ProfileConfig{},
		RpcEndpoints: map[string]string{},
		Etherscan:    map[string]config.EtherscanConfig{},
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := toml.DecodeFile(foundryPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	for name, url := range cfg.RpcEndpoints {
		cfg.RpcEndpoints[name] = expandEnv(url)
	}
	for name, es := range cfg.Etherscan {
		es.Key = expandEnv(es.Key)
		es.URL = expandEnv(es.URL)
		cfg.Etherscan[name] = es
	}
	for name, profile := range cfg.Profile {
		if profile.Keeper != nil {
			profile.Keeper.FactoryAddress = expandEnv(profile.Keeper.FactoryAddress)
		}
		cfg.Profile[name] = profile
	}

	return cfg, nil
}

// expandEnv substitutes set variables and leaves unset ones as ${VAR}
func expandEnv(s string) string {
	return os.Expand(s, func(name string) string {
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return "${" + name + "}"
	})
}
