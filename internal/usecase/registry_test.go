package usecase

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

func TestRegistry(t *testing.T) {
	a := newFakeCampaign("0xA", domain.CampaignTypeTarget)
	b := newFakeCampaign("0xB", domain.CampaignTypeTime)
	c := newFakeCampaign("0xC", domain.CampaignTypeSteps)

	t.Run("keeps creation order", func(t *testing.T) {
		registry := NewRegistry()
		trackAll(t, registry, a, b, c)

		assert.Equal(t, 3, registry.Len())
		assert.Equal(t, []RegistryEntry{
			{Address: a.address, Type: domain.CampaignTypeTarget},
			{Address: b.address, Type: domain.CampaignTypeTime},
			{Address: c.address, Type: domain.CampaignTypeSteps},
		}, registry.Snapshot())
	})

	t.Run("rejects duplicate address", func(t *testing.T) {
		registry := NewRegistry()
		trackAll(t, registry, a)

		err := registry.Add(&TrackedCampaign{Address: a.address, Type: domain.CampaignTypeTime, Contract: a})
		assert.ErrorIs(t, err, domain.ErrAlreadyTracked)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("removed address is never tracked again", func(t *testing.T) {
		registry := NewRegistry()
		trackAll(t, registry, a, b)

		removed, err := registry.RemoveAt(0)
		require.NoError(t, err)
		assert.Equal(t, a.address, removed.Address)
		assert.False(t, registry.Contains(a.address))

		err = registry.Add(&TrackedCampaign{Address: a.address, Type: a.typ, Contract: a})
		assert.ErrorIs(t, err, domain.ErrCampaignRemoved)
		assert.Equal(t, []RegistryEntry{{Address: b.address, Type: b.typ}}, registry.Snapshot())
	})

	t.Run("index out of range", func(t *testing.T) {
		registry := NewRegistry()
		trackAll(t, registry, a)

		_, err := registry.RemoveAt(1)
		var indexErr domain.RegistryIndexErr
		require.True(t, errors.As(err, &indexErr))
		assert.Equal(t, 1, indexErr.Index)
		assert.Equal(t, 1, indexErr.Len)

		_, err = registry.At(-1)
		assert.Error(t, err)
	})

	t.Run("snapshot is detached from later mutations", func(t *testing.T) {
		registry := NewRegistry()
		trackAll(t, registry, a, b, c)

		snapshot := registry.Snapshot()
		_, err := registry.RemoveAt(1)
		require.NoError(t, err)

		assert.Len(t, snapshot, 3)
		assert.Equal(t, b.address, snapshot[1].Address)
		assert.Equal(t, []common.Address{a.address, c.address}, []common.Address{
			registry.Snapshot()[0].Address, registry.Snapshot()[1].Address,
		})
	})
}
