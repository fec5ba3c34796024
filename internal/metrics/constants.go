package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Slots metric names
const (
	MetricNameSpinsTotal        = "slots_spins_total"
	MetricNameSpinRejections    = "slots_spin_rejections_total"
	MetricNameSpinRefunds       = "slots_spin_refunds_total"
	MetricNameCreditsWagered    = "slots_credits_wagered_total"
	MetricNameCreditsWon        = "slots_credits_won_total"
	MetricNameJackpotsPaid      = "slots_jackpots_paid_total"
	MetricNameJackpotPool       = "slots_jackpot_pool"
	MetricNameSpinDuration      = "slots_spin_duration_seconds"
	MetricNameBonusClaims       = "ledger_bonus_claims_total"
	MetricNameAdminAdjustments  = "ledger_admin_adjustments_total"
	MetricNameAccounts          = "ledger_accounts"
	MetricNameSnapshotWrites    = "persistence_snapshot_writes_total"
	MetricNameSnapshotDuration  = "persistence_snapshot_write_duration_seconds"
	MetricNameSnapshotScheduled = "persistence_snapshot_schedules_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Slots metric help text
const (
	HelpTextSpinsTotal        = "Total number of settled spins by outcome"
	HelpTextSpinRejections    = "Total number of rejected spins by reason"
	HelpTextSpinRefunds       = "Total number of spins refunded after a settlement failure"
	HelpTextCreditsWagered    = "Total credits wagered on settled spins"
	HelpTextCreditsWon        = "Total credits paid out on settled spins, jackpots included"
	HelpTextJackpotsPaid      = "Total number of jackpot payouts"
	HelpTextJackpotPool       = "Current progressive jackpot pool"
	HelpTextSpinDuration      = "Spin lifecycle latency in seconds"
	HelpTextBonusClaims       = "Total daily bonus claims by result"
	HelpTextAdminAdjustments  = "Total admin balance adjustments by result"
	HelpTextAccounts          = "Number of accounts in the ledger"
	HelpTextSnapshotWrites    = "Total snapshot writes by trigger and result"
	HelpTextSnapshotDuration  = "Snapshot write latency in seconds"
	HelpTextSnapshotScheduled = "Total debounced saves scheduled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
	LabelResult  = "result"
	LabelTrigger = "trigger"
	LabelBackend = "backend"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultDenied  = "denied"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StorageLatencyBuckets covers snapshot writes from 1ms to 30s
var StorageLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30}

// ============================================================================
// Route Labels
// ============================================================================

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"
