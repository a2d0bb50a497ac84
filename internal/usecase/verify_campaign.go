package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

// VerifyCampaign publishes campaign sources to the block explorer.
// Verification is best effort: failures are logged and never retried.
type VerifyCampaign struct {
	verifier ContractVerifier
	binder   CampaignBinder
	cfg      *config.RuntimeConfig
	metrics  KeeperMetrics
	log      *slog.Logger

	after func(time.Duration) <-chan time.Time
	wg    sync.WaitGroup
}

// NewVerifyCampaign creates a new verify campaign use case
func NewVerifyCampaign(
	verifier ContractVerifier,
	binder CampaignBinder,
	cfg *config.RuntimeConfig,
	metrics KeeperMetrics,
	log *slog.Logger,
) *VerifyCampaign {
	return &VerifyCampaign{
		verifier: verifier,
		binder:   binder,
		cfg:      cfg,
		metrics:  metrics,
		log:      log,
		after:    time.After,
	}
}

// VerifyResult contains the result of a one-shot verification
type VerifyResult struct {
	Address common.Address
	Type    domain.CampaignType
	Args    []any
	Skipped string
}

// Schedule verifies campaign after the configured delay, giving the explorer
// time to index the new contract. It returns immediately.
func (v *VerifyCampaign) Schedule(ctx context.Context, campaign *TrackedCampaign) {
	if reason := v.skipReason(); reason != "" {
		v.log.Debug("Skipping verification", "address", campaign.Address.Hex(), "reason", reason)
		return
	}

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		select {
		case <-ctx.Done():
			return
		case <-v.after(v.cfg.VerifyDelay):
		}
		_ = v.Verify(ctx, campaign)
	}()
}

// Wait blocks until every scheduled verification has finished
func (v *VerifyCampaign) Wait() {
	v.wg.Wait()
}

// Verify reads the constructor arguments of campaign and submits them for verification
func (v *VerifyCampaign) Verify(ctx context.Context, campaign *TrackedCampaign) error {
	v.log.Info("Verifying Campaign Contract", "address", campaign.Address.Hex(), "type", campaign.Type)

	args, err := v.BuildConstructorArgs(ctx, campaign.Contract, campaign.Type)
	if err == nil {
		err = v.verifier.Verify(ctx, &VerificationRequest{
			Address: campaign.Address,
			Type:    campaign.Type,
			Args:    args,
		})
	}

	v.metrics.VerificationFinished(campaign.Type, err)
	if err != nil {
		v.log.Error("Error during verifying contract", "address", campaign.Address.Hex(), "error", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrVerificationFailed, campaign.Address.Hex(), err)
	}

	v.log.Info("Campaign Contract verified", "address", campaign.Address.Hex())
	return nil
}

// VerifyAddress verifies an already deployed campaign, reading its type from the chain
func (v *VerifyCampaign) VerifyAddress(ctx context.Context, address common.Address, sink ProgressSink) (*VerifyResult, error) {
	contract := v.binder.Bind(address)

	sink.OnProgress(ctx, ProgressEvent{Stage: "reading", Message: "Reading campaign " + address.Hex(), Spinner: true})
	campaignType, err := contract.Type(ctx)
	if err != nil {
		sink.OnProgress(ctx, ProgressEvent{Stage: "reading"})
		return nil, fmt.Errorf("failed to read campaign type: %w", err)
	}
	args, err := v.BuildConstructorArgs(ctx, contract, campaignType)
	if err != nil {
		sink.OnProgress(ctx, ProgressEvent{Stage: "reading"})
		return nil, err
	}

	result := &VerifyResult{Address: address, Type: campaignType, Args: args}
	if reason := v.skipReason(); reason != "" {
		sink.OnProgress(ctx, ProgressEvent{Stage: "skipped"})
		result.Skipped = reason
		return result, nil
	}

	sink.OnProgress(ctx, ProgressEvent{Stage: "verifying", Message: "Verifying " + campaignType.String() + " campaign", Spinner: true})
	err = v.verifier.Verify(ctx, &VerificationRequest{Address: address, Type: campaignType, Args: args})
	sink.OnProgress(ctx, ProgressEvent{Stage: "done"})
	v.metrics.VerificationFinished(campaignType, err)
	if err != nil {
		return result, fmt.Errorf("%w: %w", domain.ErrVerificationFailed, err)
	}
	return result, nil
}

// BuildConstructorArgs reads the campaign and returns its constructor arguments in declaration order
func (v *VerifyCampaign) BuildConstructorArgs(ctx context.Context, contract CampaignContract, campaignType domain.CampaignType) ([]any, error) {
	metadata, err := ReadMetadata(ctx, contract)
	if err != nil {
		return nil, err
	}
	terms, err := ReadTerms(ctx, contract, campaignType)
	if err != nil {
		return nil, err
	}
	return ConstructorArgs(metadata, terms)
}

func (v *VerifyCampaign) skipReason() string {
	if !v.cfg.Verify {
		return "verification disabled"
	}
	if v.cfg.Network != nil && domain.IsDevelopmentChain(v.cfg.Network.ChainID) {
		return fmt.Sprintf("development chain %d", v.cfg.Network.ChainID)
	}
	return ""
}

// ReadMetadata reads the fields shared by every campaign variant
func ReadMetadata(ctx context.Context, contract CampaignContract) (*domain.CampaignMetadata, error) {
	var (
		m   domain.CampaignMetadata
		err error
	)
	if m.ID, err = contract.CampaignID(ctx); err != nil {
		return nil, fmt.Errorf("failed to read campaign ID: %w", err)
	}
	if m.Description, err = contract.Description(ctx); err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	if m.Creator, err = contract.Creator(ctx); err != nil {
		return nil, fmt.Errorf("failed to read creator: %w", err)
	}
	if m.Beneficiary, err = contract.Beneficiary(ctx); err != nil {
		return nil, fmt.Errorf("failed to read beneficiary: %w", err)
	}
	if m.MinimumDonation, err = contract.MinimumDonation(ctx); err != nil {
		return nil, fmt.Errorf("failed to read minimum donation: %w", err)
	}
	return &m, nil
}

// ReadTerms reads the type-specific fields of a campaign
func ReadTerms(ctx context.Context, contract CampaignContract, campaignType domain.CampaignType) (domain.CampaignTerms, error) {
	switch campaignType {
	case domain.CampaignTypeTarget:
		target, err := contract.TargetAmount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read target amount: %w", err)
		}
		return domain.TargetTerms{TargetAmount: target}, nil

	case domain.CampaignTypeTime:
		duration, err := contract.DurationSeconds(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read campaign duration: %w", err)
		}
		return domain.TimeTerms{DurationSeconds: duration}, nil

	case domain.CampaignTypeSteps:
		target, err := contract.TargetAmount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read target amount: %w", err)
		}
		total, err := contract.TotalSteps(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read total steps: %w", err)
		}
		interval, err := contract.StepDurationSeconds(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read step duration: %w", err)
		}
		return domain.StepsTerms{TargetAmount: target, TotalSteps: total, StepDurationSeconds: interval}, nil

	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownCampaignType, campaignType)
	}
}

// ConstructorArgs assembles the constructor tuple of the deployed variant
func ConstructorArgs(m *domain.CampaignMetadata, terms domain.CampaignTerms) ([]any, error) {
	switch t := terms.(type) {
	case domain.TargetTerms:
		return []any{m.ID, m.Description, m.Creator, m.Beneficiary, t.TargetAmount, m.MinimumDonation}, nil
	case domain.TimeTerms:
		return []any{m.ID, m.Description, m.Creator, m.Beneficiary, t.DurationSeconds, m.MinimumDonation}, nil
	case domain.StepsTerms:
		return []any{m.ID, m.Description, m.Creator, m.Beneficiary, m.MinimumDonation, t.TargetAmount, t.TotalSteps, t.StepDurationSeconds}, nil
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrUnknownCampaignType, terms)
	}
}

var _ VerificationScheduler = (*VerifyCampaign)(nil)
