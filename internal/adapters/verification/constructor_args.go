package verification

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/bindings"
)

// constructorArguments returns the constructor parameter list of a campaign variant
func constructorArguments(campaignType domain.CampaignType) (abi.Arguments, error) {
	switch campaignType {
	case domain.CampaignTypeTarget:
		return bindings.TargetCampaignConstructor, nil
	case domain.CampaignTypeTime:
		return bindings.TimeCampaignConstructor, nil
	case domain.CampaignTypeSteps:
		return bindings.StepsCampaignConstructor, nil
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownCampaignType, campaignType)
	}
}

// EncodeConstructorArgs ABI encodes args as the constructor input of the campaign variant
func EncodeConstructorArgs(campaignType domain.CampaignType, args []any) ([]byte, error) {
	arguments, err := constructorArguments(campaignType)
	if err != nil {
		return nil, err
	}
	if len(args) != len(arguments) {
		return nil, fmt.Errorf("%s campaign takes %d constructor arguments, got %d", campaignType, len(arguments), len(args))
	}

	encoded, err := arguments.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s constructor arguments: %w", campaignType, err)
	}
	return encoded, nil
}
