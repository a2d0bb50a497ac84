package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

const dialTimeout = 15 * time.Second

// ChainClient is the part of ethclient.Client the keeper needs
type ChainClient interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// HeadReader reads and follows the chain head
type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// LogReader queries and follows contract logs
type LogReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

var _ ChainClient = (*ethclient.Client)(nil)

// Connect dials the node and checks it serves the configured chain.
// A zero network.ChainID is filled in from the node.
func Connect(ctx context.Context, network *config.Network) (*ethclient.Client, error) {
	if network == nil || network.RPCURL == "" {
		return nil, fmt.Errorf("%w: no RPC URL configured", domain.ErrNotConnected)
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if err := checkChainID(network, networkChainID); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func checkChainID(network *config.Network, actual *big.Int) error {
	if network.ChainID == 0 {
		network.ChainID = actual.Uint64()
		return nil
	}
	if actual.Uint64() != network.ChainID {
		return domain.ChainIDMismatchErr{Expected: network.ChainID, Actual: actual.Uint64()}
	}
	return nil
}

// ProvideClient connects to the configured network for Wire
func ProvideClient(cfg *config.RuntimeConfig) (*ethclient.Client, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	client, err := Connect(ctx, cfg.Network)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
