package dto

// HealthStatus is the body of GET /api/health. Timestamp is RFC 3339 in UTC.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
