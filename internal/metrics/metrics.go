package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Slots Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelOutcome},
	)

	SpinRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinRejections,
			Help: HelpTextSpinRejections,
		},
		[]string{LabelReason},
	)

	SpinRefunds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinRefunds,
			Help: HelpTextSpinRefunds,
		},
	)

	CreditsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsWagered,
			Help: HelpTextCreditsWagered,
		},
	)

	CreditsWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsWon,
			Help: HelpTextCreditsWon,
		},
	)

	JackpotsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameJackpotsPaid,
			Help: HelpTextJackpotsPaid,
		},
	)

	JackpotPool = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameJackpotPool,
			Help: HelpTextJackpotPool,
		},
	)

	SpinDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinDuration,
			Help:    HelpTextSpinDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)
)

// Ledger Metrics
var (
	BonusClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusClaims,
			Help: HelpTextBonusClaims,
		},
		[]string{LabelResult},
	)

	AdminAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminAdjustments,
			Help: HelpTextAdminAdjustments,
		},
		[]string{LabelResult},
	)

	Accounts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAccounts,
			Help: HelpTextAccounts,
		},
	)
)

// Persistence Metrics
var (
	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotWrites,
			Help: HelpTextSnapshotWrites,
		},
		[]string{LabelTrigger, LabelResult},
	)

	SnapshotDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSnapshotDuration,
			Help:    HelpTextSnapshotDuration,
			Buckets: StorageLatencyBuckets,
		},
		[]string{LabelBackend},
	)

	SnapshotScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotScheduled,
			Help: HelpTextSnapshotScheduled,
		},
	)
)
