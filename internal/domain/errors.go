package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for keeper operations
var (
	// ErrUnknownCampaignType is returned for a type tag outside Target, Time and Steps
	ErrUnknownCampaignType = errors.New("unknown campaign type")

	// ErrAlreadyTracked is returned when a campaign address is already in the registry
	ErrAlreadyTracked = errors.New("campaign already tracked")

	// ErrCampaignRemoved is returned when re-adding an address that was delivered
	ErrCampaignRemoved = errors.New("campaign already delivered")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrVerificationFailed is returned when contract verification fails
	ErrVerificationFailed = errors.New("verification failed")

	// ErrUpkeepReverted is returned when a performUpkeep transaction reverts
	ErrUpkeepReverted = errors.New("upkeep transaction reverted")

	// ErrReceiptTimeout is returned when an upkeep transaction is not mined in time
	ErrReceiptTimeout = errors.New("upkeep receipt not seen")

	// ErrNotConnected is returned when an adapter is used before Connect
	ErrNotConnected = errors.New("not connected to blockchain")
)

// ChainIDMismatchErr is returned when the node serves a different chain than configured
type ChainIDMismatchErr struct {
	Expected uint64
	Actual   uint64
}

func (e ChainIDMismatchErr) Error() string {
	return fmt.Sprintf("chain ID mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// RegistryIndexErr is returned for an index outside the registry
type RegistryIndexErr struct {
	Index int
	Len   int
}

func (e RegistryIndexErr) Error() string {
	return fmt.Sprintf("registry index %d out of range [0,%d)", e.Index, e.Len)
}

// UpkeepRevertedErr wraps ErrUpkeepReverted with the failing transaction
type UpkeepRevertedErr struct {
	Campaign common.Address
	TxHash   common.Hash
}

func (e UpkeepRevertedErr) Error() string {
	return fmt.Sprintf("upkeep on %s reverted in tx %s", e.Campaign.Hex(), e.TxHash.Hex())
}

func (e UpkeepRevertedErr) Unwrap() error {
	return ErrUpkeepReverted
}
