package models

// Category is a classification bucket. Color is a CSS-style hex string.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ScoredEmail is the result of classifying one message.
type ScoredEmail struct {
	ID                int64   `json:"id"`
	Sender            string  `json:"sender"`
	Subject           string  `json:"subject"`
	Body              string  `json:"body"`
	CategoryID        int64   `json:"categoryId"`
	CategoryName      string  `json:"categoryName"`
	ConfidenceScore   float64 `json:"confidenceScore"`
	SuggestedResponse string  `json:"suggestedResponse"`
	CreatedAt         string  `json:"createdAt"`
}

// FeedbackSubmission corrects the category of a scored email.
type FeedbackSubmission struct {
	EmailID             int64
	CorrectedCategoryID int64
	FeedbackText        string
}

// Feedback is the server's acknowledgement of a FeedbackSubmission.
type Feedback struct {
	ID int64 `json:"id"`
}
