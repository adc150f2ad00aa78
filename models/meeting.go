// Package models defines data structures used across the application.
// File: models/meeting.go
package models

// ----------------------- user model -----------------------

// User mirrors a row in the remote "users" collection. Accounts are created
// by the auth gateway, never by this application.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ---------------------- meeting model ----------------------

// Meeting represents a retrospective meeting.
type Meeting struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`                 // at least 2 characters
	Description string `json:"description,omitempty"` // optional free text
	Date        string `json:"date"`                  // ISO date, e.g. 2026-08-29
	Code        string `json:"code,omitempty"`        // 6-character join code
	UserID      string `json:"user_id,omitempty"`     // owning user
}

// -------------------- participant model --------------------

// Participant links a meeting with a user who was invited to it.
type Participant struct {
	MeetingID string `json:"meeting_id"`
	UserID    string `json:"user_id"`
}
