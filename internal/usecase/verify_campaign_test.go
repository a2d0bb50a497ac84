package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
)

var oneFinney = big.NewInt(1_000_000_000_000_000)

func fundedCampaign(address string, typ domain.CampaignType) *fakeCampaign {
	c := newFakeCampaign(address, typ)
	c.metadata = domain.CampaignMetadata{
		ID:              big.NewInt(3),
		Description:     "desc",
		Creator:         common.HexToAddress("0xAA"),
		Beneficiary:     common.HexToAddress("0xBB"),
		MinimumDonation: oneFinney,
	}
	c.target = big.NewInt(5_000)
	c.duration = big.NewInt(60)
	c.interval = big.NewInt(3_600)
	c.total = 4
	return c
}

func newVerifier(t *testing.T, verifier ContractVerifier, cfg *config.RuntimeConfig) *VerifyCampaign {
	t.Helper()
	log, _ := newTestLogger()
	if cfg == nil {
		cfg = &config.RuntimeConfig{
			Verify:  true,
			Network: &config.Network{Name: "sepolia", ChainID: 11155111},
		}
	}
	return NewVerifyCampaign(verifier, fakeBinder{}, cfg, NopMetrics{}, log)
}

func TestBuildConstructorArgs(t *testing.T) {
	ctx := context.Background()
	v := newVerifier(t, &mockVerifier{}, nil)

	t.Run("time campaign", func(t *testing.T) {
		c := fundedCampaign("0x1", domain.CampaignTypeTime)

		args, err := v.BuildConstructorArgs(ctx, c, domain.CampaignTypeTime)
		require.NoError(t, err)

		assert.Equal(t, []any{
			big.NewInt(3),
			"desc",
			common.HexToAddress("0xAA"),
			common.HexToAddress("0xBB"),
			big.NewInt(60),
			big.NewInt(1_000_000_000_000_000),
		}, args)
	})

	t.Run("target campaign", func(t *testing.T) {
		c := fundedCampaign("0x1", domain.CampaignTypeTarget)

		args, err := v.BuildConstructorArgs(ctx, c, domain.CampaignTypeTarget)
		require.NoError(t, err)

		assert.Equal(t, []any{
			big.NewInt(3), "desc", common.HexToAddress("0xAA"), common.HexToAddress("0xBB"),
			big.NewInt(5_000), oneFinney,
		}, args)
	})

	t.Run("steps campaign puts minimum donation before the terms", func(t *testing.T) {
		c := fundedCampaign("0x1", domain.CampaignTypeSteps)

		args, err := v.BuildConstructorArgs(ctx, c, domain.CampaignTypeSteps)
		require.NoError(t, err)

		assert.Equal(t, []any{
			big.NewInt(3), "desc", common.HexToAddress("0xAA"), common.HexToAddress("0xBB"),
			oneFinney, big.NewInt(5_000), big.NewInt(4), big.NewInt(3_600),
		}, args)
	})

	t.Run("read failure", func(t *testing.T) {
		c := fundedCampaign("0x1", domain.CampaignTypeTime)
		c.readErr = errRPC

		_, err := v.BuildConstructorArgs(ctx, c, domain.CampaignTypeTime)
		assert.ErrorIs(t, err, errRPC)
	})

	t.Run("unknown type", func(t *testing.T) {
		c := fundedCampaign("0x1", domain.CampaignTypeTime)

		_, err := v.BuildConstructorArgs(ctx, c, domain.CampaignType(9))
		assert.ErrorIs(t, err, domain.ErrUnknownCampaignType)
	})
}

func TestVerifyCampaign_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("passes address, type and args to the verifier", func(t *testing.T) {
		verifier := &mockVerifier{}
		verifier.On("Verify", mock.Anything, mock.MatchedBy(func(req *VerificationRequest) bool {
			return req.Address == common.HexToAddress("0x1") &&
				req.Type == domain.CampaignTypeTime &&
				len(req.Args) == 6
		})).Return(nil)

		c := fundedCampaign("0x1", domain.CampaignTypeTime)
		err := newVerifier(t, verifier, nil).Verify(ctx, &TrackedCampaign{Address: c.address, Type: c.typ, Contract: c})

		require.NoError(t, err)
		verifier.AssertExpectations(t)
	})

	t.Run("failure is reported without touching the registry", func(t *testing.T) {
		verifier := &mockVerifier{}
		verifier.On("Verify", mock.Anything, mock.Anything).Return(errors.New("explorer unavailable"))

		registry := NewRegistry()
		c := fundedCampaign("0x1", domain.CampaignTypeTarget)
		trackAll(t, registry, c)
		tracked, _ := registry.At(0)

		err := newVerifier(t, verifier, nil).Verify(ctx, tracked)

		assert.ErrorIs(t, err, domain.ErrVerificationFailed)
		assert.Equal(t, 1, registry.Len())
	})
}

func TestVerifyCampaign_Schedule(t *testing.T) {
	t.Run("verifies after the delay", func(t *testing.T) {
		verifier := &mockVerifier{}
		verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)

		v := newVerifier(t, verifier, nil)
		v.cfg.VerifyDelay = 30 * time.Second
		fire := make(chan time.Time)
		var requested time.Duration
		v.after = func(d time.Duration) <-chan time.Time {
			requested = d
			return fire
		}

		c := fundedCampaign("0x1", domain.CampaignTypeTime)
		v.Schedule(context.Background(), &TrackedCampaign{Address: c.address, Type: c.typ, Contract: c})
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)

		fire <- time.Now()
		v.Wait()

		assert.Equal(t, 30*time.Second, requested)
		verifier.AssertNumberOfCalls(t, "Verify", 1)
	})

	t.Run("cancelled before the delay", func(t *testing.T) {
		verifier := &mockVerifier{}
		v := newVerifier(t, verifier, nil)
		v.after = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

		ctx, cancel := context.WithCancel(context.Background())
		c := fundedCampaign("0x1", domain.CampaignTypeTime)
		v.Schedule(ctx, &TrackedCampaign{Address: c.address, Type: c.typ, Contract: c})
		cancel()
		v.Wait()

		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("skipped on development chains", func(t *testing.T) {
		verifier := &mockVerifier{}
		v := newVerifier(t, verifier, &config.RuntimeConfig{
			Verify:  true,
			Network: &config.Network{Name: "localhost", ChainID: 31337},
		})

		c := fundedCampaign("0x1", domain.CampaignTypeTime)
		v.Schedule(context.Background(), &TrackedCampaign{Address: c.address, Type: c.typ, Contract: c})
		v.Wait()

		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("skipped when disabled", func(t *testing.T) {
		verifier := &mockVerifier{}
		v := newVerifier(t, verifier, &config.RuntimeConfig{Verify: false})

		c := fundedCampaign("0x1", domain.CampaignTypeTime)
		v.Schedule(context.Background(), &TrackedCampaign{Address: c.address, Type: c.typ, Contract: c})
		v.Wait()

		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})
}

func TestVerifyCampaign_VerifyAddress(t *testing.T) {
	verifier := &mockVerifier{}
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)

	c := fundedCampaign("0x42", domain.CampaignTypeSteps)
	log, _ := newTestLogger()
	cfg := &config.RuntimeConfig{Verify: true, Network: &config.Network{ChainID: 11155111}}
	v := NewVerifyCampaign(verifier, fakeBinder{c.address: c}, cfg, NopMetrics{}, log)

	result, err := v.VerifyAddress(context.Background(), c.address, NopProgress{})
	require.NoError(t, err)

	assert.Equal(t, domain.CampaignTypeSteps, result.Type)
	assert.Len(t, result.Args, 8)
	assert.Empty(t, result.Skipped)
	verifier.AssertNumberOfCalls(t, "Verify", 1)
}
