package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

// CampaignContract is the keeper's read/write view of one deployed campaign.
// Every call goes to the chain; nothing is cached.
type CampaignContract interface {
	Address() common.Address

	CampaignAddress(ctx context.Context) (common.Address, error)
	State(ctx context.Context) (domain.CampaignState, error)
	Type(ctx context.Context) (domain.CampaignType, error)
	CurrentStep(ctx context.Context) (*big.Int, error)
	TotalSteps(ctx context.Context) (*big.Int, error)

	CampaignID(ctx context.Context) (*big.Int, error)
	Description(ctx context.Context) (string, error)
	Creator(ctx context.Context) (common.Address, error)
	Beneficiary(ctx context.Context) (common.Address, error)
	MinimumDonation(ctx context.Context) (*big.Int, error)
	TargetAmount(ctx context.Context) (*big.Int, error)
	DurationSeconds(ctx context.Context) (*big.Int, error)
	StepDurationSeconds(ctx context.Context) (*big.Int, error)

	CheckUpkeep(ctx context.Context) (*domain.UpkeepCheck, error)
	// PerformUpkeep sends the upkeep transaction and waits for its receipt.
	// A reverted receipt is returned as domain.UpkeepRevertedErr.
	PerformUpkeep(ctx context.Context, performData []byte) (common.Hash, error)
}

// CampaignBinder binds a campaign address to a contract handle
type CampaignBinder interface {
	Bind(address common.Address) CampaignContract
}

// BlockSource delivers new chain heads until ctx is done
type BlockSource interface {
	WatchBlocks(ctx context.Context, sink chan<- domain.Block) error
}

// CampaignEventSource delivers factory CampaignCreated events until ctx is done
type CampaignEventSource interface {
	WatchCampaignCreated(ctx context.Context, sink chan<- domain.CampaignCreated) error
}

// VerificationRequest is one best-effort verification call
type VerificationRequest struct {
	Address common.Address
	Type    domain.CampaignType
	Args    []any // constructor arguments, in declaration order
}

// ContractVerifier publishes a campaign's source to the block explorer
type ContractVerifier interface {
	Verify(ctx context.Context, req *VerificationRequest) error
}

// VerificationScheduler defers verification of a freshly created campaign
type VerificationScheduler interface {
	Schedule(ctx context.Context, campaign *TrackedCampaign)
}

// RegistryObserver is notified with a snapshot after every registry mutation
type RegistryObserver interface {
	OnRegistryChanged(entries []RegistryEntry)
}

// KeeperMetrics records keeper activity
type KeeperMetrics interface {
	CampaignCreated(campaignType domain.CampaignType)
	EventDropped()
	ScanCompleted(result *ScanResult)
	VerificationFinished(campaignType domain.CampaignType, err error)
	TrackedCampaigns(n int)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// NopObserver ignores registry changes
type NopObserver struct{}

func (NopObserver) OnRegistryChanged([]RegistryEntry) {}

// NopMetrics discards all measurements
type NopMetrics struct{}

func (NopMetrics) CampaignCreated(domain.CampaignType)             {}
func (NopMetrics) EventDropped()                                   {}
func (NopMetrics) ScanCompleted(*ScanResult)                       {}
func (NopMetrics) VerificationFinished(domain.CampaignType, error) {}
func (NopMetrics) TrackedCampaigns(int)                            {}
