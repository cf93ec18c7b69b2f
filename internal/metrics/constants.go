package metrics

const namespace = "steam_inventory"

// Metric names
const (
	MetricNameHTTPRequestsTotal      = "http_requests_total"
	MetricNameHTTPRequestDuration    = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight   = "http_requests_in_flight"
	MetricNameInventoryFetchesTotal  = "inventory_fetches_total"
	MetricNameInventoryFetchDuration = "inventory_fetch_duration_seconds"
	MetricNameLoginsTotal            = "logins_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal      = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration    = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight   = "Number of HTTP requests currently being served"
	HelpTextInventoryFetchesTotal  = "Inventory fetches by outcome"
	HelpTextInventoryFetchDuration = "Inventory fetch latency in seconds"
	HelpTextLoginsTotal            = "Completed login attempts by result"
)

// Labels
const (
	LabelMethod  = "method"
	LabelRoute   = "route"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Login results
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

var (
	httpLatencyBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	upstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 15}
)
