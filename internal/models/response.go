package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// KeyStatusResponse reports the outcome of a provider credential probe.
type KeyStatusResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// StatsResponse aggregates a user's interview history for the dashboard.
type StatsResponse struct {
	TotalInterviews     int `json:"totalInterviews"`
	CompletedInterviews int `json:"completedInterviews"`
	AverageScore        int `json:"averageScore"`
}
