package blockchain

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

const resubscribeDelay = 2 * time.Second

// HeadSource emits new blocks. Websocket endpoints are followed with
// eth_subscribe; http endpoints are polled.
type HeadSource struct {
	client       HeadReader
	websocket    bool
	pollInterval time.Duration
	retryDelay   time.Duration
	log          *slog.Logger
}

// NewHeadSource creates a head source for the configured network
func NewHeadSource(client HeadReader, cfg *config.RuntimeConfig, log *slog.Logger) *HeadSource {
	return &HeadSource{
		client:       client,
		websocket:    cfg.Network != nil && cfg.Network.IsWebsocket(),
		pollInterval: cfg.PollInterval,
		retryDelay:   resubscribeDelay,
		log:          log.With("component", "heads"),
	}
}

// WatchBlocks delivers blocks to sink until ctx is done. Transient RPC
// errors are logged and retried; only ctx.Err() is returned.
func (s *HeadSource) WatchBlocks(ctx context.Context, sink chan<- domain.Block) error {
	if s.websocket {
		return s.subscribe(ctx, sink)
	}
	return s.poll(ctx, sink)
}

func (s *HeadSource) subscribe(ctx context.Context, sink chan<- domain.Block) error {
	for {
		headers := make(chan *types.Header, 16)
		sub, err := s.client.SubscribeNewHead(ctx, headers)
		if err != nil {
			s.log.Warn("Failed to subscribe to new heads", "error", err)
			if err := sleep(ctx, s.retryDelay); err != nil {
				return err
			}
			continue
		}

	forward:
		for {
			select {
			case <-ctx.Done():
				sub.Unsubscribe()
				return ctx.Err()
			case err := <-sub.Err():
				s.log.Warn("Head subscription dropped, resubscribing", "error", err)
				break forward
			case header := <-headers:
				block := domain.Block{
					Number: header.Number.Uint64(),
					Hash:   header.Hash(),
					Time:   time.Unix(int64(header.Time), 0),
				}
				if err := send(ctx, sink, block); err != nil {
					sub.Unsubscribe()
					return err
				}
			}
		}

		if err := sleep(ctx, s.retryDelay); err != nil {
			return err
		}
	}
}

func (s *HeadSource) poll(ctx context.Context, sink chan<- domain.Block) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	var last uint64
	for {
		number, err := s.client.BlockNumber(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			s.log.Warn("Failed to read block number", "error", err)
		case err == nil && number > last:
			last = number
			if err := send(ctx, sink, domain.Block{Number: number, Time: time.Now()}); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func send[T any](ctx context.Context, sink chan<- T, v T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sink <- v:
		return nil
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ usecase.BlockSource = (*HeadSource)(nil)
