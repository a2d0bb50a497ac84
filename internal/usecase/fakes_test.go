package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
)

var errRPC = errors.New("rpc: connection refused")

// fakeCampaign is an in-memory CampaignContract
type fakeCampaign struct {
	mu sync.Mutex

	address common.Address
	typ     domain.CampaignType
	state   domain.CampaignState
	current int64
	total   int64

	metadata domain.CampaignMetadata
	target   *big.Int
	duration *big.Int
	interval *big.Int

	upkeepNeeded bool
	readErr      error
	checkErr     error
	performErr   error
	onPerform    func(c *fakeCampaign)

	checkCalls   int
	performCalls int
}

func newFakeCampaign(address string, typ domain.CampaignType) *fakeCampaign {
	return &fakeCampaign{
		address: common.HexToAddress(address),
		typ:     typ,
		state:   domain.CampaignStateOpen,
	}
}

func (f *fakeCampaign) Address() common.Address { return f.address }

func (f *fakeCampaign) CampaignAddress(context.Context) (common.Address, error) {
	return f.address, f.readErr
}

func (f *fakeCampaign) State(context.Context) (domain.CampaignState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.readErr
}

func (f *fakeCampaign) Type(context.Context) (domain.CampaignType, error) {
	return f.typ, f.readErr
}

func (f *fakeCampaign) CurrentStep(context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return big.NewInt(f.current), f.readErr
}

func (f *fakeCampaign) TotalSteps(context.Context) (*big.Int, error) {
	return big.NewInt(f.total), f.readErr
}

func (f *fakeCampaign) CampaignID(context.Context) (*big.Int, error) {
	return f.metadata.ID, f.readErr
}

func (f *fakeCampaign) Description(context.Context) (string, error) {
	return f.metadata.Description, f.readErr
}

func (f *fakeCampaign) Creator(context.Context) (common.Address, error) {
	return f.metadata.Creator, f.readErr
}

func (f *fakeCampaign) Beneficiary(context.Context) (common.Address, error) {
	return f.metadata.Beneficiary, f.readErr
}

func (f *fakeCampaign) MinimumDonation(context.Context) (*big.Int, error) {
	return f.metadata.MinimumDonation, f.readErr
}

func (f *fakeCampaign) TargetAmount(context.Context) (*big.Int, error) {
	return f.target, f.readErr
}

func (f *fakeCampaign) DurationSeconds(context.Context) (*big.Int, error) {
	return f.duration, f.readErr
}

func (f *fakeCampaign) StepDurationSeconds(context.Context) (*big.Int, error) {
	return f.interval, f.readErr
}

func (f *fakeCampaign) CheckUpkeep(context.Context) (*domain.UpkeepCheck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkCalls++
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	return &domain.UpkeepCheck{Needed: f.upkeepNeeded, PerformData: []byte{}}, nil
}

func (f *fakeCampaign) PerformUpkeep(context.Context, []byte) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.performCalls++
	if f.performErr != nil {
		return common.Hash{}, f.performErr
	}
	if f.onPerform != nil {
		f.onPerform(f)
	}
	return common.HexToHash("0xbeef"), nil
}

// fakeBinder returns pre-registered fake campaigns by address
type fakeBinder map[common.Address]*fakeCampaign

func (b fakeBinder) Bind(address common.Address) CampaignContract {
	if c, ok := b[address]; ok {
		return c
	}
	return newFakeCampaign(address.Hex(), domain.CampaignTypeTarget)
}

// recordingObserver keeps every snapshot it was notified with
type recordingObserver struct {
	snapshots [][]RegistryEntry
}

func (o *recordingObserver) OnRegistryChanged(entries []RegistryEntry) {
	o.snapshots = append(o.snapshots, entries)
}

// mockScheduler records scheduled verifications
type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) Schedule(ctx context.Context, campaign *TrackedCampaign) {
	m.Called(ctx, campaign)
}

// mockVerifier is a testify mock of ContractVerifier
type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, req *VerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// safeBuffer is a goroutine-safe log sink
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *safeBuffer) {
	buf := &safeBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func trackAll(t *testing.T, registry *Registry, campaigns ...*fakeCampaign) {
	t.Helper()
	for _, c := range campaigns {
		require.NoError(t, registry.Add(&TrackedCampaign{Address: c.address, Type: c.typ, Contract: c}))
	}
}
