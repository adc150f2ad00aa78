// File: models/feedback.go
package models

// Feedback categories. The remote store accepts exactly these three tags.
const (
	FeedbackGood   = "good"
	FeedbackBad    = "bad"
	FeedbackAction = "action"
)

// Feedback is one piece of categorized retrospective feedback attached to a meeting.
type Feedback struct {
	ID        string `json:"id,omitempty"`
	Content   string `json:"content"`
	Type      string `json:"type"` // good | bad | action
	MeetingID string `json:"meeting_id"`
}

// ValidFeedbackType reports whether t is one of the three known categories.
func ValidFeedbackType(t string) bool {
	switch t {
	case FeedbackGood, FeedbackBad, FeedbackAction:
		return true
	}
	return false
}
