package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

// Default forge artifacts of the campaign contracts
const (
	DefaultTargetArtifact = "src/TogetherForCharityWithTarget.sol:TogetherForCharityWithTarget"
	DefaultTimeArtifact   = "src/TogetherForCharityWithTime.sol:TogetherForCharityWithTime"
	DefaultStepsArtifact  = "src/TogetherForCharityWithSteps.sol:TogetherForCharityWithSteps"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		if projectRoot, err = FindProjectRoot(); err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env files must be loaded before any env lookup
	loadDotEnv(projectRoot)

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	applyFoundryDefaults(v, foundryConfig)

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		StartBlock:      v.GetUint64("start_block"),
		PollInterval:    v.GetDuration("poll_interval"),
		RPCRateLimit:    v.GetFloat64("rpc_rate_limit"),
		ReceiptTimeout:  v.GetDuration("receipt_timeout"),
		PrivateKey:      v.GetString("private_key"),
		Verify:          v.GetBool("verify"),
		VerifyDelay:     v.GetDuration("verify_delay"),
		EtherscanAPIKey: v.GetString("etherscan_api_key"),
		Debug:           v.GetBool("debug"),
		MetricsAddr:     v.GetString("metrics_addr"),
		FoundryConfig:   foundryConfig,
		Artifacts: config.ArtifactPaths{
			Target: v.GetString("artifacts.target"),
			Time:   v.GetString("artifacts.time"),
			Steps:  v.GetString("artifacts.steps"),
		},
	}

	if raw := v.GetString("factory_address"); raw != "" {
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("%w: factory address %q", domain.ErrInvalidAddress, raw)
		}
		cfg.FactoryAddress = common.HexToAddress(raw)
	}

	resolver := NewNetworkResolver(foundryConfig)
	network, err := resolver.Resolve(v.GetString("network"), v.GetString("rpc_url"), v.GetUint64("chain_id"))
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	if cfg.EtherscanAPIKey == "" {
		cfg.EtherscanAPIKey = resolver.EtherscanKey(network.Name)
	}

	return cfg, nil
}

// applyFoundryDefaults layers the [profile.<name>.keeper] table under flags, env and config file
func applyFoundryDefaults(v *viper.Viper, foundryConfig *config.FoundryConfig) {
	profile, ok := foundryConfig.Profile[v.GetString("profile")]
	if !ok || profile.Keeper == nil {
		return
	}
	keeper := profile.Keeper

	if _, unresolved := DetectEnvVar(keeper.FactoryAddress); keeper.FactoryAddress != "" && !unresolved {
		v.SetDefault("factory_address", keeper.FactoryAddress)
	}
	if keeper.StartBlock > 0 {
		v.SetDefault("start_block", keeper.StartBlock)
	}
	for name, path := range keeper.Artifacts {
		v.SetDefault("artifacts."+strings.ToLower(name), path)
	}
}

// FindProjectRoot walks up from current directory to find foundry.toml.
// Outside a Foundry project the current directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Optional keeper.{json,yaml,toml} next to foundry.toml
	v.SetConfigName("keeper")
	v.AddConfigPath(projectRoot)

	// Set up environment variables
	v.SetEnvPrefix("KEEPER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Unprefixed names used by existing deployments
	_ = v.BindEnv("factory_address", "KEEPER_FACTORY_ADDRESS", "FACTORY_CONTRACT_ADDRESS")
	_ = v.BindEnv("private_key", "KEEPER_PRIVATE_KEY", "PRIVATE_KEY")
	_ = v.BindEnv("etherscan_api_key", "KEEPER_ETHERSCAN_API_KEY", "ETHERSCAN_API_KEY")

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("profile", "default")
	v.SetDefault("network", "sepolia")
	v.SetDefault("verify", true)
	v.SetDefault("verify_delay", "30s")
	v.SetDefault("poll_interval", "4s")
	v.SetDefault("start_block", 0)
	v.SetDefault("rpc_rate_limit", 0)
	v.SetDefault("receipt_timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("artifacts.target", DefaultTargetArtifact)
	v.SetDefault("artifacts.time", DefaultTimeArtifact)
	v.SetDefault("artifacts.steps", DefaultStepsArtifact)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd.Flags())
		bindFlags(v, cmd.InheritedFlags())
	}

	return v
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			panic(err)
		}
	})
}

// Validate checks the settings needed to run the keeper service
func Validate(cfg *config.RuntimeConfig, requireSigner bool) error {
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		name := ""
		if cfg.Network != nil {
			name = cfg.Network.Name
		}
		return fmt.Errorf("no RPC URL for network %q: set --rpc-url, %s or [rpc_endpoints] in foundry.toml", name, GenerateEnvVarName(name))
	}
	if cfg.FactoryAddress == (common.Address{}) {
		return fmt.Errorf("%w: factory address is required (--factory-address or FACTORY_CONTRACT_ADDRESS)", domain.ErrInvalidAddress)
	}
	if requireSigner && cfg.PrivateKey == "" {
		return fmt.Errorf("private key is required to perform upkeeps (PRIVATE_KEY)")
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}
	if cfg.ReceiptTimeout < 0 {
		return fmt.Errorf("receipt timeout must not be negative, got %s", cfg.ReceiptTimeout)
	}
	if cfg.RPCRateLimit < 0 {
		return fmt.Errorf("rpc rate limit must not be negative, got %v", cfg.RPCRateLimit)
	}
	return nil
}
