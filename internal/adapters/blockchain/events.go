package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/bindings"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// maxLogRange bounds a single eth_getLogs query
const maxLogRange = 2000

// FactoryEventSource emits CampaignCreated events of the factory.
// With a start block, historical logs are replayed before live ones.
type FactoryEventSource struct {
	client       LogReader
	factory      common.Address
	binding      *bindings.CampaignFactory
	topic        common.Hash
	startBlock   uint64
	websocket    bool
	pollInterval time.Duration
	retryDelay   time.Duration
	log          *slog.Logger
}

// NewFactoryEventSource creates an event source for the configured factory
func NewFactoryEventSource(client LogReader, cfg *config.RuntimeConfig, log *slog.Logger) (*FactoryEventSource, error) {
	binding := bindings.NewCampaignFactory()
	topic, err := binding.GetEventID(bindings.CampaignFactoryCampaignCreatedEventName)
	if err != nil {
		return nil, err
	}
	return &FactoryEventSource{
		client:       client,
		factory:      cfg.FactoryAddress,
		binding:      binding,
		topic:        topic,
		startBlock:   cfg.StartBlock,
		websocket:    cfg.Network != nil && cfg.Network.IsWebsocket(),
		pollInterval: cfg.PollInterval,
		retryDelay:   resubscribeDelay,
		log:          log.With("component", "factory-events", "factory", cfg.FactoryAddress.Hex()),
	}, nil
}

// WatchCampaignCreated delivers creation events to sink until ctx is done.
// Transient RPC errors are logged and retried; only ctx.Err() is returned.
func (s *FactoryEventSource) WatchCampaignCreated(ctx context.Context, sink chan<- domain.CampaignCreated) error {
	next, err := s.initialCursor(ctx)
	if err != nil {
		return err
	}
	if s.websocket {
		return s.subscribe(ctx, sink, next)
	}
	return s.poll(ctx, sink, next)
}

// initialCursor returns the first block whose logs are delivered
func (s *FactoryEventSource) initialCursor(ctx context.Context) (uint64, error) {
	if s.startBlock > 0 {
		return s.startBlock, nil
	}
	for {
		head, err := s.client.BlockNumber(ctx)
		if err == nil {
			return head + 1, nil
		}
		s.log.Warn("Failed to read block number", "error", err)
		if err := sleep(ctx, s.retryDelay); err != nil {
			return 0, err
		}
	}
}

func (s *FactoryEventSource) poll(ctx context.Context, sink chan<- domain.CampaignCreated, next uint64) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		var err error
		next, err = s.catchUp(ctx, sink, next)
		if err != nil && ctx.Err() == nil {
			s.log.Warn("Failed to fetch factory logs", "from", next, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *FactoryEventSource) subscribe(ctx context.Context, sink chan<- domain.CampaignCreated, next uint64) error {
	for {
		logs := make(chan types.Log, 64)
		sub, err := s.client.SubscribeFilterLogs(ctx, s.query(0, 0), logs)
		if err != nil {
			s.log.Warn("Failed to subscribe to factory logs", "error", err)
			if err := sleep(ctx, s.retryDelay); err != nil {
				return err
			}
			continue
		}

		// Logs mined before the subscription started. Live logs are only
		// forwarded once everything below them has been replayed.
		next, err = s.catchUp(ctx, sink, next)
		if err != nil {
			sub.Unsubscribe()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Warn("Failed to replay factory logs, resubscribing", "from", next, "error", err)
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
				sub.Unsubscribe()
				s.log.Warn("Factory log subscription dropped, resubscribing", "error", err)
				break forward
			case l := <-logs:
				if l.BlockNumber < next {
					continue
				}
				if err := s.emit(ctx, sink, l); err != nil {
					sub.Unsubscribe()
					return err
				}
				// a resubscribe replays this block; the registry drops the duplicates
				next = l.BlockNumber
			}
		}

		if err := sleep(ctx, s.retryDelay); err != nil {
			return err
		}
	}
}

// catchUp delivers logs from next up to the current head and returns the new cursor
func (s *FactoryEventSource) catchUp(ctx context.Context, sink chan<- domain.CampaignCreated, next uint64) (uint64, error) {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return next, err
	}

	for next <= head {
		to := min(next+maxLogRange-1, head)
		logs, err := s.client.FilterLogs(ctx, s.query(next, to))
		if err != nil {
			return next, fmt.Errorf("eth_getLogs [%d,%d]: %w", next, to, err)
		}
		for _, l := range logs {
			if err := s.emit(ctx, sink, l); err != nil {
				return next, err
			}
		}
		next = to + 1
	}
	return next, nil
}

func (s *FactoryEventSource) query(from, to uint64) ethereum.FilterQuery {
	q := ethereum.FilterQuery{
		Addresses: []common.Address{s.factory},
		Topics:    [][]common.Hash{{s.topic}},
	}
	if to > 0 {
		q.FromBlock = new(big.Int).SetUint64(from)
		q.ToBlock = new(big.Int).SetUint64(to)
	}
	return q
}

func (s *FactoryEventSource) emit(ctx context.Context, sink chan<- domain.CampaignCreated, l types.Log) error {
	if l.Removed {
		return nil
	}
	event, err := s.Decode(&l)
	if err != nil {
		s.log.Warn("Skipping undecodable factory log", "tx", l.TxHash.Hex(), "error", err)
		return nil
	}
	return send(ctx, sink, *event)
}

// Decode converts a raw factory log into a CampaignCreated event
func (s *FactoryEventSource) Decode(l *types.Log) (*domain.CampaignCreated, error) {
	ev, err := s.binding.UnpackCampaignCreatedEvent(l)
	if err != nil {
		return nil, err
	}
	return &domain.CampaignCreated{
		CampaignID:      ev.CampaignID,
		CampaignAddress: ev.CampaignAddress,
		Creator:         ev.Creator,
		Beneficiary:     ev.Beneficiary,
		CampaignType:    ev.CampaignType,
		BlockNumber:     l.BlockNumber,
		TxHash:          l.TxHash,
	}, nil
}

var _ usecase.CampaignEventSource = (*FactoryEventSource)(nil)
