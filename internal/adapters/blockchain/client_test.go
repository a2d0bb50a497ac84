package blockchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("detects chain ID", func(t *testing.T) {
		_, url := newRPCServer(t, 11155111)
		network := &config.Network{Name: "sepolia", RPCURL: url}

		client, err := Connect(ctx, network)
		require.NoError(t, err)
		defer client.Close()

		assert.Equal(t, uint64(11155111), network.ChainID)
	})

	t.Run("matching chain ID", func(t *testing.T) {
		_, url := newRPCServer(t, 31337)

		client, err := Connect(ctx, &config.Network{RPCURL: url, ChainID: 31337})
		require.NoError(t, err)
		client.Close()
	})

	t.Run("chain ID mismatch", func(t *testing.T) {
		_, url := newRPCServer(t, 11155111)

		_, err := Connect(ctx, &config.Network{RPCURL: url, ChainID: 1})

		var mismatch domain.ChainIDMismatchErr
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, uint64(1), mismatch.Expected)
		assert.Equal(t, uint64(11155111), mismatch.Actual)
	})

	t.Run("missing RPC URL", func(t *testing.T) {
		_, err := Connect(ctx, &config.Network{Name: "sepolia"})
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})
}
