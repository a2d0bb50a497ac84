package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

// PerformUpkeep scans the registry on every new block and submits upkeeps
type PerformUpkeep struct {
	registry *Registry
	observer RegistryObserver
	metrics  KeeperMetrics
	log      *slog.Logger
}

// NewPerformUpkeep creates the per-block upkeep loop
func NewPerformUpkeep(registry *Registry, observer RegistryObserver, metrics KeeperMetrics, log *slog.Logger) *PerformUpkeep {
	return &PerformUpkeep{
		registry: registry,
		observer: observer,
		metrics:  metrics,
		log:      log,
	}
}

// ScanResult summarises one registry scan.
// Submitted, Delivered, StepsDelivered and Failed count performUpkeep
// submissions only; Removed and Errors cover campaigns that never got one.
type ScanResult struct {
	Block          uint64
	Checked        int
	Submitted      int
	Delivered      int // upkeep performed and campaign removed
	StepsDelivered int // upkeep performed on a non-final step
	Failed         int // performUpkeep not confirmed
	Removed        int // closed before any upkeep was needed
	Errors         int // state or checkUpkeep reads that failed
}

// HandleBlock walks the registry from the last index to the first so that
// removing the current index never shifts an element that is still to be visited.
// A failing campaign is logged and skipped; the scan always continues.
func (p *PerformUpkeep) HandleBlock(ctx context.Context, block domain.Block) *ScanResult {
	result := &ScanResult{Block: block.Number}

	for i := p.registry.Len() - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			break
		}
		result.Checked++
		if err := p.process(ctx, i, result); err != nil {
			result.Errors++
			p.log.Error("Error handling checkUpkeep", "index", i, "block", block.Number, "error", err)
		}
	}

	p.metrics.ScanCompleted(result)
	return result
}

func (p *PerformUpkeep) process(ctx context.Context, i int, result *ScanResult) error {
	campaign, err := p.registry.At(i)
	if err != nil {
		return err
	}

	status, err := ReadStatus(ctx, campaign.Contract)
	if err != nil {
		return fmt.Errorf("campaign %s: %w", campaign.Address.Hex(), err)
	}

	if status.Closed() {
		if !status.Type.IsSteps() || status.AtFinalStep() {
			result.Removed++
			return p.remove(i, campaign)
		}
		// Closed Steps campaigns stay tracked until their final step.
		p.log.Debug("Closed campaign not on final step", "address", campaign.Address.Hex(), "step", status.Steps)
	}

	check, err := campaign.Contract.CheckUpkeep(ctx)
	if err != nil {
		return fmt.Errorf("campaign %s: checkUpkeep: %w", campaign.Address.Hex(), err)
	}
	if !check.Needed {
		p.log.Info("No Upkeep Needed", "address", campaign.Address.Hex())
		return nil
	}

	p.log.Info("Upkeep Needed", "address", campaign.Address.Hex())
	result.Submitted++
	if !p.Submit(ctx, i, check.PerformData) {
		result.Failed++
		return nil
	}

	if status.Type.IsSteps() && !status.AtFinalStep() {
		result.StepsDelivered++
		p.log.Info(fmt.Sprintf("Step %s delivered", status.Steps.Current), "address", campaign.Address.Hex())
		return nil
	}

	result.Delivered++
	return p.remove(i, campaign)
}

// Submit sends performUpkeep for the campaign at index. Failures are logged
// and reported as false so a single campaign cannot stall the scan.
func (p *PerformUpkeep) Submit(ctx context.Context, index int, performData []byte) bool {
	campaign, err := p.registry.At(index)
	if err != nil {
		p.log.Error("Error handling performUpkeep", "index", index, "error", err)
		return false
	}

	txHash, err := campaign.Contract.PerformUpkeep(ctx, performData)
	if err != nil {
		p.log.Error("Error handling performUpkeep", "address", campaign.Address.Hex(), "error", err)
		return false
	}

	p.log.Info("Upkeep performed", "address", campaign.Address.Hex(), "tx", txHash.Hex())
	return true
}

func (p *PerformUpkeep) remove(i int, campaign *TrackedCampaign) error {
	if _, err := p.registry.RemoveAt(i); err != nil {
		return err
	}
	p.log.Info("Campaign delivered", "address", campaign.Address.Hex(), "type", campaign.Type)
	p.metrics.TrackedCampaigns(p.registry.Len())
	p.observer.OnRegistryChanged(p.registry.Snapshot())
	return nil
}

// ReadStatus reads the state, type and step progress of a campaign
func ReadStatus(ctx context.Context, contract CampaignContract) (*domain.CampaignStatus, error) {
	state, err := contract.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign state: %w", err)
	}
	campaignType, err := contract.Type(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign type: %w", err)
	}

	status := &domain.CampaignStatus{
		Address: contract.Address(),
		Type:    campaignType,
		State:   state,
	}
	if campaignType.IsSteps() {
		current, err := contract.CurrentStep(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read current step: %w", err)
		}
		total, err := contract.TotalSteps(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read total steps: %w", err)
		}
		status.Steps = &domain.StepProgress{Current: current, Total: total}
	}
	return status, nil
}
