package adapters

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"
	"github.com/trebuchet-org/campaign-keeper/internal/adapters/blockchain"
	"github.com/trebuchet-org/campaign-keeper/internal/adapters/metrics"
	"github.com/trebuchet-org/campaign-keeper/internal/adapters/verification"
	"github.com/trebuchet-org/campaign-keeper/internal/cli/render"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

// BlockchainSet provides the RPC client and everything reading from it
var BlockchainSet = wire.NewSet(
	blockchain.ProvideClient,
	wire.Bind(new(blockchain.ChainClient), new(*ethclient.Client)),
	wire.Bind(new(blockchain.HeadReader), new(*ethclient.Client)),
	wire.Bind(new(blockchain.LogReader), new(*ethclient.Client)),

	blockchain.NewSigner,

	blockchain.NewCampaignBinder,
	wire.Bind(new(usecase.CampaignBinder), new(*blockchain.CampaignBinder)),

	blockchain.NewHeadSource,
	wire.Bind(new(usecase.BlockSource), new(*blockchain.HeadSource)),

	blockchain.NewFactoryEventSource,
	wire.Bind(new(usecase.CampaignEventSource), new(*blockchain.FactoryEventSource)),
)

// VerificationSet provides block explorer verification
var VerificationSet = wire.NewSet(
	verification.NewForgeVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.ForgeVerifier)),
)

// MetricsSet provides the prometheus collectors and their HTTP endpoint
var MetricsSet = wire.NewSet(
	metrics.NewMetrics,
	wire.Bind(new(usecase.KeeperMetrics), new(*metrics.Metrics)),
	metrics.NewServer,
)

// RenderSet provides terminal output of registry changes
var RenderSet = wire.NewSet(
	render.NewRegistryRenderer,
	wire.Bind(new(usecase.RegistryObserver), new(*render.RegistryRenderer)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	VerificationSet,
	MetricsSet,
	RenderSet,
)
