package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

// InspectCampaign reads the live state of a single campaign
type InspectCampaign struct {
	binder CampaignBinder
}

// NewInspectCampaign creates a new inspect campaign use case
func NewInspectCampaign(binder CampaignBinder) *InspectCampaign {
	return &InspectCampaign{binder: binder}
}

// CampaignReport is everything the keeper knows about one campaign
type CampaignReport struct {
	Status   *domain.CampaignStatus
	Metadata *domain.CampaignMetadata
	Terms    domain.CampaignTerms
	Upkeep   *domain.UpkeepCheck
	// Tracked reports whether the keeper would keep watching the campaign
	Tracked bool
}

// Run reads status, metadata, terms and upkeep state of the campaign at address
func (i *InspectCampaign) Run(ctx context.Context, address common.Address) (*CampaignReport, error) {
	contract := i.binder.Bind(address)

	status, err := ReadStatus(ctx, contract)
	if err != nil {
		return nil, err
	}
	metadata, err := ReadMetadata(ctx, contract)
	if err != nil {
		return nil, err
	}
	terms, err := ReadTerms(ctx, contract, status.Type)
	if err != nil {
		return nil, err
	}
	check, err := contract.CheckUpkeep(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check upkeep: %w", err)
	}

	return &CampaignReport{
		Status:   status,
		Metadata: metadata,
		Terms:    terms,
		Upkeep:   check,
		Tracked:  !status.Closed() || (status.Type.IsSteps() && !status.AtFinalStep()),
	}, nil
}
