package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

// ErrNoSigner is returned when a transaction is attempted without a private key
var ErrNoSigner = errors.New("no private key configured")

// Signer signs upkeep transactions with the keeper's key
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	network *config.Network
}

// NewSigner parses the configured private key. It returns a nil Signer when
// no key is configured so read-only commands can run without one.
func NewSigner(cfg *config.RuntimeConfig) (*Signer, error) {
	if cfg.PrivateKey == "" {
		return nil, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		network: cfg.Network,
	}, nil
}

// Address returns the account paying for upkeeps
func (s *Signer) Address() common.Address {
	return s.address
}

// TransactOpts returns transaction options bound to ctx.
// The chain ID is read at call time since it may be detected on connect.
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if s == nil {
		return nil, ErrNoSigner
	}
	if s.network == nil || s.network.ChainID == 0 {
		return nil, fmt.Errorf("chain ID not resolved")
	}

	opts := bind.NewKeyedTransactor(s.key, new(big.Int).SetUint64(s.network.ChainID))
	opts.Context = ctx
	return opts, nil
}
