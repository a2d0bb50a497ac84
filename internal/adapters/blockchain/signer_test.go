package blockchain

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

// first default anvil account
const anvilKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewSigner(t *testing.T) {
	t.Run("derives the sender address", func(t *testing.T) {
		signer, err := NewSigner(&config.RuntimeConfig{
			PrivateKey: anvilKey,
			Network:    &config.Network{ChainID: 31337},
		})
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.Address())

		opts, err := signer.TransactOpts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, signer.Address(), opts.From)
	})

	t.Run("no key configured", func(t *testing.T) {
		signer, err := NewSigner(&config.RuntimeConfig{})
		require.NoError(t, err)
		assert.Nil(t, signer)

		_, err = signer.TransactOpts(context.Background())
		assert.ErrorIs(t, err, ErrNoSigner)
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := NewSigner(&config.RuntimeConfig{PrivateKey: "0x1234"})
		assert.Error(t, err)
	})

	t.Run("chain ID not resolved", func(t *testing.T) {
		signer, err := NewSigner(&config.RuntimeConfig{PrivateKey: anvilKey, Network: &config.Network{}})
		require.NoError(t, err)

		_, err = signer.TransactOpts(context.Background())
		assert.Error(t, err)
	})
}
