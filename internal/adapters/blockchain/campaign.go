package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/bindings"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
	"golang.org/x/time/rate"
)

// CampaignBinder creates contract handles that share one client, signer and rate limiter
type CampaignBinder struct {
	client         ChainClient
	binding        *bindings.Campaign
	signer         *Signer
	limiter        *rate.Limiter
	receiptTimeout time.Duration
}

// NewCampaignBinder creates a new campaign binder
func NewCampaignBinder(client ChainClient, signer *Signer, cfg *config.RuntimeConfig) *CampaignBinder {
	limit := rate.Inf
	if cfg.RPCRateLimit > 0 {
		limit = rate.Limit(cfg.RPCRateLimit)
	}
	return &CampaignBinder{
		client:         client,
		binding:        bindings.NewCampaign(),
		signer:         signer,
		limiter:        rate.NewLimiter(limit, 1),
		receiptTimeout: cfg.ReceiptTimeout,
	}
}

// Bind returns a handle to the campaign at address. No RPC call is made.
func (b *CampaignBinder) Bind(address common.Address) usecase.CampaignContract {
	return &CampaignContract{
		address:  address,
		binder:   b,
		instance: b.binding.Instance(b.client, address),
	}
}

// CampaignContract implements usecase.CampaignContract over JSON-RPC
type CampaignContract struct {
	address  common.Address
	binder   *CampaignBinder
	instance *bind.BoundContract
}

func call[T any](ctx context.Context, c *CampaignContract, name string, data []byte, unpack func([]byte) (T, error)) (T, error) {
	if err := c.binder.limiter.Wait(ctx); err != nil {
		return *new(T), err
	}
	out, err := bind.Call(c.instance, &bind.CallOpts{Context: ctx}, data, unpack)
	if err != nil {
		return out, fmt.Errorf("%s on %s: %w", name, c.address.Hex(), err)
	}
	return out, nil
}

func (c *CampaignContract) Address() common.Address {
	return c.address
}

func (c *CampaignContract) CampaignAddress(ctx context.Context) (common.Address, error) {
	b := c.binder.binding
	return call(ctx, c, "getCampaignAddress", b.PackGetCampaignAddress(), b.UnpackGetCampaignAddress)
}

func (c *CampaignContract) State(ctx context.Context) (domain.CampaignState, error) {
	b := c.binder.binding
	state, err := call(ctx, c, "getCampaignState", b.PackGetCampaignState(), b.UnpackGetCampaignState)
	return domain.CampaignState(state), err
}

func (c *CampaignContract) Type(ctx context.Context) (domain.CampaignType, error) {
	b := c.binder.binding
	name, err := call(ctx, c, "getCampaignType", b.PackGetCampaignType(), b.UnpackGetCampaignType)
	if err != nil {
		return 0, err
	}
	return domain.ParseCampaignTypeName(name)
}

func (c *CampaignContract) CurrentStep(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getCurrentStep", b.PackGetCurrentStep(), b.UnpackGetCurrentStep)
}

func (c *CampaignContract) TotalSteps(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getTotalSteps", b.PackGetTotalSteps(), b.UnpackGetTotalSteps)
}

func (c *CampaignContract) CampaignID(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getCampaignID", b.PackGetCampaignID(), b.UnpackGetCampaignID)
}

func (c *CampaignContract) Description(ctx context.Context) (string, error) {
	b := c.binder.binding
	return call(ctx, c, "getDescription", b.PackGetDescription(), b.UnpackGetDescription)
}

func (c *CampaignContract) Creator(ctx context.Context) (common.Address, error) {
	b := c.binder.binding
	return call(ctx, c, "getCreator", b.PackGetCreator(), b.UnpackGetCreator)
}

func (c *CampaignContract) Beneficiary(ctx context.Context) (common.Address, error) {
	b := c.binder.binding
	return call(ctx, c, "getBeneficiary", b.PackGetBeneficiary(), b.UnpackGetBeneficiary)
}

func (c *CampaignContract) MinimumDonation(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getMinimumDonation", b.PackGetMinimumDonation(), b.UnpackGetMinimumDonation)
}

func (c *CampaignContract) TargetAmount(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getTargetAmount", b.PackGetTargetAmount(), b.UnpackGetTargetAmount)
}

func (c *CampaignContract) DurationSeconds(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getCampaignDurationSeconds", b.PackGetCampaignDurationSeconds(), b.UnpackGetCampaignDurationSeconds)
}

func (c *CampaignContract) StepDurationSeconds(ctx context.Context) (*big.Int, error) {
	b := c.binder.binding
	return call(ctx, c, "getStepDurationInSeconds", b.PackGetStepDurationInSeconds(), b.UnpackGetStepDurationInSeconds)
}

// CheckUpkeep simulates checkUpkeep with empty checkData
func (c *CampaignContract) CheckUpkeep(ctx context.Context) (*domain.UpkeepCheck, error) {
	b := c.binder.binding
	out, err := call(ctx, c, "checkUpkeep", b.PackCheckUpkeep([]byte{}), b.UnpackCheckUpkeep)
	if err != nil {
		return nil, err
	}
	return &domain.UpkeepCheck{Needed: out.UpkeepNeeded, PerformData: out.PerformData}, nil
}

// PerformUpkeep sends performUpkeep and waits for it to be mined, for at most
// the configured receipt timeout. A reverted receipt is reported as
// domain.UpkeepRevertedErr.
func (c *CampaignContract) PerformUpkeep(ctx context.Context, performData []byte) (common.Hash, error) {
	opts, err := c.binder.signer.TransactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if err := c.binder.limiter.Wait(ctx); err != nil {
		return common.Hash{}, err
	}

	tx, err := bind.Transact(c.instance, opts, c.binder.binding.PackPerformUpkeep(performData))
	if err != nil {
		return common.Hash{}, fmt.Errorf("performUpkeep on %s: %w", c.address.Hex(), err)
	}

	receipt, err := awaitReceipt(ctx, c.binder.client, tx.Hash(), c.binder.receiptTimeout)
	if err != nil {
		return tx.Hash(), fmt.Errorf("waiting for upkeep tx %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return tx.Hash(), domain.UpkeepRevertedErr{Campaign: c.address, TxHash: tx.Hash()}
	}
	return tx.Hash(), nil
}

// awaitReceipt waits for the receipt of hash. A zero timeout waits until ctx is done.
func awaitReceipt(ctx context.Context, backend bind.DeployBackend, hash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(waitCtx, backend, hash)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s", domain.ErrReceiptTimeout, timeout)
	}
	return receipt, err
}

var (
	_ usecase.CampaignBinder   = (*CampaignBinder)(nil)
	_ usecase.CampaignContract = (*CampaignContract)(nil)
)
