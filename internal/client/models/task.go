package models

// CategoryCount is one bar of the dashboard's per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Stats is the dashboard aggregate returned by the stats task.
type Stats struct {
	TotalEmails      int             `json:"total_emails"`
	TotalUsers       int             `json:"total_users"`
	TotalFeedback    int             `json:"total_feedback"`
	AvgConfidence    float64         `json:"avg_confidence"`
	EmailsByCategory []CategoryCount `json:"emails_by_category"`
}

// UploadResult is the raw response of the batch upload task.
type UploadResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Emails  []ScoredEmail `json:"emails"`
}

// UploadReport is what batch upload consumers see. The batch either
// succeeded or failed as a whole.
type UploadReport struct {
	Success bool
	Message string
	Count   int
	Emails  []ScoredEmail
}

// TaskResult is the generic {success, message} task response.
type TaskResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
