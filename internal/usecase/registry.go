package usecase

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

// TrackedCampaign is a campaign handle held by the registry
type TrackedCampaign struct {
	Address  common.Address
	Type     domain.CampaignType
	Contract CampaignContract
}

// RegistryEntry is the printable part of a tracked campaign
type RegistryEntry struct {
	Address common.Address
	Type    domain.CampaignType
}

// Registry is the ordered, in-memory set of campaigns being watched.
//
// It has no lock: only the keeper's consumer goroutine mutates it.
// Addresses are unique and a removed address is never tracked again.
type Registry struct {
	campaigns []*TrackedCampaign
	removed   map[common.Address]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		removed: make(map[common.Address]struct{}),
	}
}

// Add appends a campaign in creation order
func (r *Registry) Add(campaign *TrackedCampaign) error {
	if _, ok := r.removed[campaign.Address]; ok {
		return fmt.Errorf("%w: %s", domain.ErrCampaignRemoved, campaign.Address.Hex())
	}
	if r.Contains(campaign.Address) {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyTracked, campaign.Address.Hex())
	}
	r.campaigns = append(r.campaigns, campaign)
	return nil
}

// At returns the campaign at index i
func (r *Registry) At(i int) (*TrackedCampaign, error) {
	if i < 0 || i >= len(r.campaigns) {
		return nil, domain.RegistryIndexErr{Index: i, Len: len(r.campaigns)}
	}
	return r.campaigns[i], nil
}

// RemoveAt removes the campaign at index i, keeping the order of the rest
func (r *Registry) RemoveAt(i int) (*TrackedCampaign, error) {
	campaign, err := r.At(i)
	if err != nil {
		return nil, err
	}
	r.campaigns = slices.Delete(r.campaigns, i, i+1)
	r.removed[campaign.Address] = struct{}{}
	return campaign, nil
}

// Contains reports whether address is currently tracked
func (r *Registry) Contains(address common.Address) bool {
	return lo.ContainsBy(r.campaigns, func(c *TrackedCampaign) bool {
		return c.Address == address
	})
}

// Len returns the number of tracked campaigns
func (r *Registry) Len() int {
	return len(r.campaigns)
}

// Snapshot returns the tracked campaigns in creation order
func (r *Registry) Snapshot() []RegistryEntry {
	return lo.Map(r.campaigns, func(c *TrackedCampaign, _ int) RegistryEntry {
		return RegistryEntry{Address: c.Address, Type: c.Type}
	})
}
