package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trebuchet-org/campaign-keeper/internal/domain"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/config"
	"github.com/trebuchet-org/campaign-keeper/internal/usecase"
)

const namespace = "campaign_keeper"

// Metrics exports keeper activity as Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	created       *prometheus.CounterVec
	dropped       prometheus.Counter
	scans         prometheus.Counter
	upkeeps       *prometheus.CounterVec
	removed       prometheus.Counter
	scanErrors    prometheus.Counter
	verifications *prometheus.CounterVec
	tracked       prometheus.Gauge
	lastBlock     prometheus.Gauge
}

// NewMetrics creates the collectors on a dedicated registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_created_total",
			Help:      "CampaignCreated events accepted into the registry.",
		}, []string{"type"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "CampaignCreated events that could not be tracked.",
		}),
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Registry scans, one per observed block.",
		}),
		upkeeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upkeeps_total",
			Help:      "performUpkeep submissions by result.",
		}, []string{"result"}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removed_total",
			Help:      "Closed campaigns dropped from the registry without an upkeep.",
		}),
		scanErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_errors_total",
			Help:      "Campaigns skipped in a scan because reading their state or checkUpkeep failed.",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Explorer verifications by campaign type and result.",
		}, []string{"type", "result"}),
		tracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tracked_campaigns",
			Help:      "Campaigns currently in the registry.",
		}),
		lastBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_scanned_block",
			Help:      "Number of the last block the registry was scanned at.",
		}),
	}

	m.registry.MustRegister(
		m.created, m.dropped, m.scans, m.upkeeps, m.removed, m.scanErrors, m.verifications, m.tracked, m.lastBlock,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) CampaignCreated(campaignType domain.CampaignType) {
	m.created.WithLabelValues(campaignType.String()).Inc()
}

func (m *Metrics) EventDropped() {
	m.dropped.Inc()
}

func (m *Metrics) ScanCompleted(result *usecase.ScanResult) {
	m.scans.Inc()
	m.lastBlock.Set(float64(result.Block))
	m.upkeeps.WithLabelValues("submitted").Add(float64(result.Submitted))
	m.upkeeps.WithLabelValues("delivered").Add(float64(result.Delivered))
	m.upkeeps.WithLabelValues("step_delivered").Add(float64(result.StepsDelivered))
	m.upkeeps.WithLabelValues("failed").Add(float64(result.Failed))
	m.removed.Add(float64(result.Removed))
	m.scanErrors.Add(float64(result.Errors))
}

func (m *Metrics) VerificationFinished(campaignType domain.CampaignType, err error) {
	result := "verified"
	if err != nil {
		result = "failed"
	}
	m.verifications.WithLabelValues(campaignType.String(), result).Inc()
}

func (m *Metrics) TrackedCampaigns(n int) {
	m.tracked.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Server exposes /metrics on the configured address
type Server struct {
	addr    string
	metrics *Metrics
	log     *slog.Logger
}

// NewServer creates a metrics server. An empty address disables it.
func NewServer(cfg *config.RuntimeConfig, metrics *Metrics, log *slog.Logger) *Server {
	return &Server{addr: cfg.MetricsAddr, metrics: metrics, log: log}
}

// Run serves until ctx is done
func (s *Server) Run(ctx context.Context) error {
	if s.addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	srv := &http.Server{Addr: s.addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("Serving metrics", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var _ usecase.KeeperMetrics = (*Metrics)(nil)
