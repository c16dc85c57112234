package models

// ErrorResponse is the body of every rejected request
type ErrorResponse struct {
	Error string `json:"error"`
}

// SensitiveResponse represents the /sensitive endpoint response
type SensitiveResponse struct {
	Response string `json:"response"`
}

// HealthResponse represents the /health endpoint response
type HealthResponse struct {
	Status    string `json:"status"`
	UptimeSec int    `json:"uptime_sec"`
}
