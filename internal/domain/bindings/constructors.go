package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Constructor parameter lists of the three campaign contracts, in declaration order.
var (
	TargetCampaignConstructor = mustArguments(
		"uint256", "string", "address", "address", "uint256", "uint256",
	)
	TimeCampaignConstructor = mustArguments(
		"uint256", "string", "address", "address", "uint256", "uint256",
	)
	StepsCampaignConstructor = mustArguments(
		"uint256", "string", "address", "address", "uint256", "uint256", "uint256", "uint256",
	)
)

func mustArguments(types ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(types))
	for i, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic(fmt.Sprintf("invalid constructor type %s at %d: %v", t, i, err))
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}
