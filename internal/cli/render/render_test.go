package render

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestRegistryRenderer(t *testing.T) {
	t.Run("empty registry", func(t *testing.T) {
		var out bytes.Buffer
		r := &RegistryRenderer{out: &out}

		r.OnRegistryChanged(nil)

		assert.Equal(t, "Empty List\n", out.String())
	})

	t.Run("lists campaigns in order", func(t *testing.T) {
		var out bytes.Buffer
		r := &RegistryRenderer{out: &out}

		r.OnRegistryChanged([]usecase.RegistryEntry{
			{Address: common.HexToAddress("0xA"), Type: domain.CampaignTypeTarget},
			{Address: common.HexToAddress("0xB"), Type: domain.CampaignTypeSteps},
		})

		s := out.String()
		assert.Contains(t, s, "Tracked campaigns (2):")
		first := bytes.Index(out.Bytes(), []byte(common.HexToAddress("0xA").Hex()))
		second := bytes.Index(out.Bytes(), []byte(common.HexToAddress("0xB").Hex()))
		require.True(t, first >= 0 && second >= 0)
		assert.Less(t, first, second)
		assert.Contains(t, s, "Steps")
	})
}

func TestInspectRenderer(t *testing.T) {
	var out bytes.Buffer
	address := common.HexToAddress("0x7")

	err := NewInspectRenderer(&out, "https://sepolia.etherscan.io").Render(&usecase.CampaignReport{
		Status: &domain.CampaignStatus{
			Address: address,
			Type:    domain.CampaignTypeSteps,
			State:   domain.CampaignStateOpen,
			Steps:   &domain.StepProgress{Current: big.NewInt(1), Total: big.NewInt(4)},
		},
		Metadata: &domain.CampaignMetadata{
			ID:              big.NewInt(3),
			Description:     "clean water",
			Creator:         common.HexToAddress("0xAA"),
			Beneficiary:     common.HexToAddress("0xBB"),
			MinimumDonation: big.NewInt(100),
		},
		Terms:   domain.StepsTerms{TargetAmount: big.NewInt(5000), TotalSteps: big.NewInt(4), StepDurationSeconds: big.NewInt(60)},
		Upkeep:  &domain.UpkeepCheck{Needed: true},
		Tracked: true,
	})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Steps campaign "+address.Hex())
	assert.Contains(t, s, "clean water")
	assert.Contains(t, s, "1/4")
	assert.Contains(t, s, "https://sepolia.etherscan.io/address/"+address.Hex())
}

func TestVerifyRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewVerifyRenderer(&out)

	require.NoError(t, r.Render(&usecase.VerifyResult{
		Address: common.HexToAddress("0x1"),
		Type:    domain.CampaignTypeTime,
		Skipped: "development chain 31337",
	}))
	assert.Contains(t, out.String(), "Skipped Time campaign")
	assert.Contains(t, out.String(), "development chain 31337")

	out.Reset()
	require.NoError(t, r.Render(&usecase.VerifyResult{
		Address: common.HexToAddress("0x1"),
		Type:    domain.CampaignTypeTime,
		Args:    []any{big.NewInt(1)},
	}))
	assert.Contains(t, out.String(), "Verified Time campaign")
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Connection refused", FormatError("failed to connect to RPC: connection refused"))
}
