package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	blockBufferSize = 16
	eventBufferSize = 64
)

// RunKeeper is the keeper service: two producers (blocks, creation events)
// feed one consumer, which is the only goroutine touching the registry.
type RunKeeper struct {
	blocks   BlockSource
	events   CampaignEventSource
	listener *ListenCampaigns
	upkeep   *PerformUpkeep
	verify   *VerifyCampaign
	log      *slog.Logger
}

// NewRunKeeper creates the keeper service
func NewRunKeeper(
	blocks BlockSource,
	events CampaignEventSource,
	listener *ListenCampaigns,
	upkeep *PerformUpkeep,
	verify *VerifyCampaign,
	log *slog.Logger,
) *RunKeeper {
	return &RunKeeper{
		blocks:   blocks,
		events:   events,
		listener: listener,
		upkeep:   upkeep,
		verify:   verify,
		log:      log,
	}
}

// Run blocks until ctx is cancelled or a source fails to start
func (k *RunKeeper) Run(ctx context.Context) error {
	blocks := make(chan domain.Block, blockBufferSize)
	created := make(chan domain.CampaignCreated, eventBufferSize)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return k.blocks.WatchBlocks(gctx, blocks)
	})
	g.Go(func() error {
		return k.events.WatchCampaignCreated(gctx, created)
	})
	g.Go(func() error {
		k.consume(gctx, blocks, created)
		return nil
	})

	k.log.Info("Keeper started")
	err := g.Wait()
	k.verify.Wait()
	k.log.Info("Keeper stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (k *RunKeeper) consume(ctx context.Context, blocks <-chan domain.Block, created <-chan domain.CampaignCreated) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-created:
			// errors are logged by the listener
			_, _ = k.listener.HandleCampaignCreated(ctx, event)
		case block := <-blocks:
			if k.upkeep.registry.Len() == 0 {
				k.log.Debug("No campaigns tracked", "block", block.Number)
				continue
			}
			k.upkeep.HandleBlock(ctx, block)
		}
	}
}
