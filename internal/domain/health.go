package domain

// ============================================================
// Health & Stats API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual dependency.
type ServiceHealth struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CommandStats is returned by GET /v1/stats.
type CommandStats struct {
	Commands        map[string]CommandCount `json:"commands"`
	AdvisorRequests map[string]int64        `json:"advisorRequests"`
}

// CommandCount aggregates invocations of one command by outcome.
type CommandCount struct {
	Total    int64            `json:"total"`
	Outcomes map[string]int64 `json:"outcomes"`
}
