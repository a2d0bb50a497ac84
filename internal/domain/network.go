package domain

// DevelopmentChainIDs are local chains where contracts are never verified
var DevelopmentChainIDs = map[uint64]string{
	31337: "localhost",
	1337:  "hardhat",
}

// KnownNetworks maps network names to chain IDs for the networks campaigns are deployed on
var KnownNetworks = map[string]uint64{
	"localhost": 31337,
	"anvil":     31337,
	"sepolia":   11155111,
	"mumbai":    80001,
	"amoy":      80002,
	"polygon":   137,
	"mainnet":   1,
}

// IsDevelopmentChain reports whether chainID is a local development chain
func IsDevelopmentChain(chainID uint64) bool {
	_, ok := DevelopmentChainIDs[chainID]
	return ok
}
