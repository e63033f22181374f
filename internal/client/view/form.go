package view

import "context"

// FeedbackSubmitter sends a category correction for the current scored email.
type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, correctedCategoryID, feedbackText string) error
}

// FeedbackForm holds the feedback inputs between edits.
type FeedbackForm struct {
	CategoryID string
	Text       string
}

// Submit sends the form and clears it on success. On failure the inputs are
// kept so they can be corrected.
func (f *FeedbackForm) Submit(ctx context.Context, s FeedbackSubmitter) error {
	if err := s.SubmitFeedback(ctx, f.CategoryID, f.Text); err != nil {
		return err
	}
	f.Clear()
	return nil
}

func (f *FeedbackForm) Clear() {
	f.CategoryID = ""
	f.Text = ""
}
