package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.CampaignCreated(domain.CampaignTypeSteps)
	m.CampaignCreated(domain.CampaignTypeSteps)
	m.EventDropped()
	m.TrackedCampaigns(2)
	m.ScanCompleted(&usecase.ScanResult{Block: 99, Submitted: 2, Delivered: 1, StepsDelivered: 1, Removed: 3, Errors: 4})
	m.VerificationFinished(domain.CampaignTypeTime, nil)
	m.VerificationFinished(domain.CampaignTypeTime, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.created.WithLabelValues("Steps")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.tracked))
	assert.Equal(t, 99.0, testutil.ToFloat64(m.lastBlock))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.upkeeps.WithLabelValues("submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upkeeps.WithLabelValues("step_delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upkeeps.WithLabelValues("delivered")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.upkeeps.WithLabelValues("failed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.removed))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.scanErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("Time", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verifications.WithLabelValues("Time", "verified")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.TrackedCampaigns(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "campaign_keeper_tracked_campaigns 3")
}
