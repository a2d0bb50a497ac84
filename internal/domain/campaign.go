package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignType is the closed set of campaign variants the factory can create
type CampaignType uint8

const (
	CampaignTypeTarget CampaignType = 0
	CampaignTypeTime   CampaignType = 1
	CampaignTypeSteps  CampaignType = 2
)

// CampaignTypes lists every known variant in factory tag order
var CampaignTypes = []CampaignType{CampaignTypeTarget, CampaignTypeTime, CampaignTypeSteps}

// ParseCampaignType maps the factory's integer tag to a CampaignType
func ParseCampaignType(tag uint8) (CampaignType, error) {
	switch CampaignType(tag) {
	case CampaignTypeTarget, CampaignTypeTime, CampaignTypeSteps:
		return CampaignType(tag), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownCampaignType, tag)
	}
}

// ParseCampaignTypeName maps the string returned by getCampaignType()
func ParseCampaignTypeName(name string) (CampaignType, error) {
	for _, t := range CampaignTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCampaignType, name)
}

func (t CampaignType) String() string {
	switch t {
	case CampaignTypeTarget:
		return "Target"
	case CampaignTypeTime:
		return "Time"
	case CampaignTypeSteps:
		return "Steps"
	default:
		return fmt.Sprintf("CampaignType(%d)", uint8(t))
	}
}

// IsSteps reports whether the campaign pays out in milestone steps
func (t CampaignType) IsSteps() bool {
	return t == CampaignTypeSteps
}

// CampaignState mirrors the contract's state enum
type CampaignState uint8

const (
	CampaignStateOpen   CampaignState = 0
	CampaignStateClosed CampaignState = 1
)

func (s CampaignState) String() string {
	switch s {
	case CampaignStateOpen:
		return "open"
	case CampaignStateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// CampaignMetadata holds the fields shared by every campaign variant
type CampaignMetadata struct {
	ID              *big.Int
	Description     string
	Creator         common.Address
	Beneficiary     common.Address
	MinimumDonation *big.Int
}

// CampaignTerms is the type-specific part of a campaign.
// Implemented only by TargetTerms, TimeTerms and StepsTerms.
type CampaignTerms interface {
	CampaignType() CampaignType
	sealed()
}

// TargetTerms closes the campaign once the target amount is raised
type TargetTerms struct {
	TargetAmount *big.Int
}

// TimeTerms closes the campaign after a fixed duration
type TimeTerms struct {
	DurationSeconds *big.Int
}

// StepsTerms releases funds in TotalSteps milestones, one per step interval
type StepsTerms struct {
	TargetAmount        *big.Int
	TotalSteps          *big.Int
	StepDurationSeconds *big.Int
}

func (TargetTerms) CampaignType() CampaignType { return CampaignTypeTarget }
func (TimeTerms) CampaignType() CampaignType   { return CampaignTypeTime }
func (StepsTerms) CampaignType() CampaignType  { return CampaignTypeSteps }

func (TargetTerms) sealed() {}
func (TimeTerms) sealed()   {}
func (StepsTerms) sealed()  {}

// StepProgress is the milestone position of a Steps campaign
type StepProgress struct {
	Current *big.Int
	Total   *big.Int
}

// IsFinal reports whether the campaign is on its last step (Current == Total-1)
func (p StepProgress) IsFinal() bool {
	if p.Current == nil || p.Total == nil {
		return false
	}
	last := new(big.Int).Sub(p.Total, big.NewInt(1))
	return p.Current.Cmp(last) == 0
}

func (p StepProgress) String() string {
	return fmt.Sprintf("%s/%s", p.Current, p.Total)
}

// UpkeepCheck is the result of a campaign's checkUpkeep call
type UpkeepCheck struct {
	Needed      bool
	PerformData []byte
}

// CampaignStatus is one read of a campaign's live state, used for a single scan
type CampaignStatus struct {
	Address common.Address
	Type    CampaignType
	State   CampaignState
	Steps   *StepProgress // nil unless Type is Steps
}

// Closed reports whether the campaign contract reported itself closed
func (s CampaignStatus) Closed() bool {
	return s.State == CampaignStateClosed
}

// AtFinalStep is true for Steps campaigns on their last step
func (s CampaignStatus) AtFinalStep() bool {
	return s.Steps != nil && s.Steps.IsFinal()
}
