package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// GetEventID returns the event signature hash for a given event name
// This is a helper method that works alongside the generated ABI bindings
func (campaignFactory *CampaignFactory) GetEventID(eventName string) (common.Hash, error) {
	event, exists := campaignFactory.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// ABI returns the parsed factory ABI
func (campaignFactory *CampaignFactory) ABI() abi.ABI {
	return campaignFactory.abi
}

// ABI returns the parsed campaign ABI
func (campaign *Campaign) ABI() abi.ABI {
	return campaign.abi
}

func (e *CampaignFactoryCampaignCreated) String() string {
	return fmt.Sprintf(
		"%s: id=%s address=%s creator=%s beneficiary=%s type=%d",
		e.ContractEventName(),
		e.CampaignID,
		e.CampaignAddress.Hex(),
		e.Creator.Hex(),
		e.Beneficiary.Hex(),
		e.CampaignType,
	)
}
