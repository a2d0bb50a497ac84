package config

// FoundryConfig represents the parts of foundry.toml the keeper reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig   `toml:"profile"`
	RpcEndpoints map[string]string          `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanConfig struct {
	Key   string `toml:"key,omitempty"` // API key for verification
	URL   string `toml:"url,omitempty"` // API URL (for custom explorers)
	Chain any    `toml:"chain,omitempty"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath     string        `toml:"src,omitempty"`
	OutPath     string        `toml:"out,omitempty"`
	SolcVersion string        `toml:"solc_version,omitempty"`
	Keeper      *KeeperConfig `toml:"keeper,omitempty"`
}

// KeeperConfig is the optional [profile.<name>.keeper] table
type KeeperConfig struct {
	FactoryAddress string            `toml:"factory_address,omitempty"`
	StartBlock     uint64            `toml:"start_block,omitempty"`
	Artifacts      map[string]string `toml:"artifacts,omitempty"` // campaign type name -> path:Contract
}
