// file: models/meeting_test.go

//go:build unit
// +build unit

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: Create a Meeting and verify struct fields
func TestMeetingInitialization(t *testing.T) {
	meeting := Meeting{
		ID:          "mtg-1",
		Title:       "Sprint 12 retro",
		Description: "What went well, what didn't",
		Date:        "2026-08-29",
		Code:        "ABC123",
		UserID:      "user-1",
	}
	assert.Equal(t, "Sprint 12 retro", meeting.Title)
	assert.Equal(t, "2026-08-29", meeting.Date)
	assert.Equal(t, "ABC123", meeting.Code)
}

// Test: Meeting JSON uses the remote store's column names
func TestMeetingJSONRoundTrip(t *testing.T) {
	meeting := Meeting{Title: "Retro", Date: "2026-08-29", UserID: "user-1"}

	data, err := json.Marshal(meeting)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"user_id":"user-1"`)
	assert.NotContains(t, string(data), `"id"`, "empty id should be omitted")

	var decoded Meeting
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, meeting, decoded)
}

// Test: feedback categories are exactly the three known tags
func TestValidFeedbackType(t *testing.T) {
	assert.True(t, ValidFeedbackType(FeedbackGood))
	assert.True(t, ValidFeedbackType(FeedbackBad))
	assert.True(t, ValidFeedbackType(FeedbackAction))
	assert.False(t, ValidFeedbackType("great"))
	assert.False(t, ValidFeedbackType(""))
}

// Test: participant link carries both foreign keys
func TestParticipantJSON(t *testing.T) {
	p := Participant{MeetingID: "mtg-1", UserID: "user-2"}

	data, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"meeting_id":"mtg-1","user_id":"user-2"}`, string(data))
}
