package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

// ListenCampaigns turns factory CampaignCreated events into tracked campaigns
type ListenCampaigns struct {
	registry  *Registry
	binder    CampaignBinder
	scheduler VerificationScheduler
	observer  RegistryObserver
	metrics   KeeperMetrics
	log       *slog.Logger
}

// NewListenCampaigns creates the creation-event handler
func NewListenCampaigns(
	registry *Registry,
	binder CampaignBinder,
	scheduler VerificationScheduler,
	observer RegistryObserver,
	metrics KeeperMetrics,
	log *slog.Logger,
) *ListenCampaigns {
	return &ListenCampaigns{
		registry:  registry,
		binder:    binder,
		scheduler: scheduler,
		observer:  observer,
		metrics:   metrics,
		log:       log,
	}
}

// HandleCampaignCreated tracks the new campaign and schedules its verification.
// Failures are logged and returned; the event is dropped and no handle is created.
func (l *ListenCampaigns) HandleCampaignCreated(ctx context.Context, event domain.CampaignCreated) (*TrackedCampaign, error) {
	campaign, err := l.track(event)
	if errors.Is(err, domain.ErrAlreadyTracked) || errors.Is(err, domain.ErrCampaignRemoved) {
		l.log.Warn("Ignoring duplicate CampaignCreated event", "campaign", event.CampaignAddress.Hex(), "error", err)
		return nil, err
	}
	if err != nil {
		l.metrics.EventDropped()
		l.log.Error("Error handling CampaignCreated event",
			"campaign", event.CampaignAddress.Hex(),
			"type", event.CampaignType,
			"error", err,
		)
		return nil, err
	}

	l.log.Info("Campaign created", "address", campaign.Address.Hex(), "type", campaign.Type, "id", event.CampaignID)
	l.metrics.CampaignCreated(campaign.Type)
	l.metrics.TrackedCampaigns(l.registry.Len())
	l.observer.OnRegistryChanged(l.registry.Snapshot())

	l.scheduler.Schedule(ctx, campaign)
	return campaign, nil
}

func (l *ListenCampaigns) track(event domain.CampaignCreated) (*TrackedCampaign, error) {
	campaignType, err := domain.ParseCampaignType(event.CampaignType)
	if err != nil {
		return nil, err
	}
	if event.CampaignAddress == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero campaign address", domain.ErrInvalidAddress)
	}

	campaign := &TrackedCampaign{
		Address:  event.CampaignAddress,
		Type:     campaignType,
		Contract: l.binder.Bind(event.CampaignAddress),
	}
	if err := l.registry.Add(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
