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

// Business metric names
const (
	MetricNameRecommendationsComputed = "cost_recommendations_computed_total"
	MetricNameRecipesExcluded         = "cost_recipes_excluded_total"
	MetricNameErpRowsSynced           = "erp_rows_synced_total"
	MetricNamePriceReplacements       = "material_price_replacements_total"
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

// Business metric help text
const (
	HelpTextRecommendationsComputed = "Total number of cost recommendation batches computed"
	HelpTextRecipesExcluded         = "Total number of candidate recipes excluded from recommendations, by reason"
	HelpTextErpRowsSynced           = "Total number of ERP webhook rows processed, by data type and outcome"
	HelpTextPriceReplacements       = "Total number of current-price replacements ingested"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelReason   = "reason"
	LabelDataType = "data_type"
	LabelOutcome  = "outcome"
)

// Outcome label values for ERP sync rows
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// HTTPLatencyBuckets are the histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
