// Package services: services/meeting_service.go
package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"retro-meet/logger"
	"retro-meet/models"
	"retro-meet/supabase"
)

// ------------------- sentinel errors -------------------

var (
	// ErrNotFound means no meeting matched the given id or join code.
	ErrNotFound = errors.New("meeting not found")

	// ErrNotAuthenticated means the access token did not resolve to a user.
	ErrNotAuthenticated = errors.New("user not authenticated")
)

// ------------------- service contract -------------------

// CreateMeetingInput carries the create-meeting form values after schema
// validation. Participants is the raw comma-separated email string.
type CreateMeetingInput struct {
	Title        string
	Description  string
	Date         string
	Participants string
}

// MeetingServiceInterface is everything the page controllers need from the
// meeting domain. Controllers hold this interface so tests can swap in a mock.
// Every method takes the signed-in user's access token so store calls run
// under the user's row-level permissions, never the anonymous role.
type MeetingServiceInterface interface {
	CreateMeeting(ctx context.Context, accessToken string, input CreateMeetingInput) (*models.Meeting, error)
	FindMeetingByCode(ctx context.Context, accessToken, code string) (*models.Meeting, error)
	GetMeeting(ctx context.Context, accessToken, id string) (*models.Meeting, error)
	ListMeetings(ctx context.Context, accessToken string) ([]models.Meeting, error)
	ListFeedback(ctx context.Context, accessToken, meetingID string) ([]models.Feedback, error)
	AddFeedback(ctx context.Context, accessToken, meetingID, content, feedbackType string) (*models.Feedback, error)
}

// MeetingService talks to the remote store. It holds no state of its own;
// every method is a pass-through to one or more remote calls.
type MeetingService struct {
	store *supabase.Client
}

var _ MeetingServiceInterface = (*MeetingService)(nil)

// NewMeetingService creates a new MeetingService instance.
func NewMeetingService(store *supabase.Client) *MeetingService {
	return &MeetingService{store: store}
}

// ------------------- meeting creation -------------------

// CreateMeeting resolves the current user, inserts the meeting row stamped
// with the owner's id and a fresh join code, then best-effort fans out one
// participant link per invited email. Participant failures are logged and
// skipped; there is no rollback of the meeting or of earlier links.
func (s *MeetingService) CreateMeeting(ctx context.Context, accessToken string, input CreateMeetingInput) (*models.Meeting, error) {
	user, err := s.store.GetUser(ctx, accessToken)
	if err != nil {
		logger.Warn.Printf("CreateMeeting: could not resolve current user: %v", err)
		return nil, ErrNotAuthenticated
	}

	code, err := NewJoinCode()
	if err != nil {
		logger.Error.Printf("CreateMeeting: %v", err)
		return nil, err
	}

	row := models.Meeting{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Code:        code,
		UserID:      user.ID,
	}

	var inserted []models.Meeting
	if err := s.store.From("meetings").Auth(accessToken).Insert(ctx, []models.Meeting{row}, &inserted); err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, errors.New("failed to create meeting: store returned no row")
	}
	meeting := inserted[0]

	s.addParticipants(ctx, accessToken, meeting.ID, input.Participants)

	logger.Info.Printf("CreateMeeting: meeting %s (%q) created by %s", meeting.ID, meeting.Title, user.Email)
	return &meeting, nil
}

// addParticipants inserts one participant link per email, in input order.
// An email with no matching user is skipped with a warning; a failed link
// insert is logged and does not affect the remaining emails.
func (s *MeetingService) addParticipants(ctx context.Context, accessToken, meetingID, participants string) {
	if strings.TrimSpace(participants) == "" {
		return
	}

	for _, email := range strings.Split(participants, ",") {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		var invitee struct {
			ID string `json:"id"`
		}
		err := s.store.From("users").Select("id").Eq("email", email).Single().
			Auth(accessToken).Get(ctx, &invitee)
		if err != nil {
			logger.Warn.Printf("CreateMeeting: no user found for email %s: %v", email, err)
			continue
		}

		link := models.Participant{MeetingID: meetingID, UserID: invitee.ID}
		err = s.store.From("meeting_participants").Auth(accessToken).
			Insert(ctx, []models.Participant{link}, nil)
		if err != nil {
			logger.Error.Printf("CreateMeeting: error adding participant %s: %v", email, err)
		}
	}
}

// ------------------- lookups -------------------

// FindMeetingByCode resolves a 6-character join code to a meeting id.
func (s *MeetingService) FindMeetingByCode(ctx context.Context, accessToken, code string) (*models.Meeting, error) {
	meeting := &models.Meeting{}
	err := s.store.From("meetings").Select("id").Eq("code", code).Single().
		Auth(accessToken).Get(ctx, meeting)
	if errors.Is(err, supabase.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// GetMeeting fetches one meeting row by id.
func (s *MeetingService) GetMeeting(ctx context.Context, accessToken, id string) (*models.Meeting, error) {
	meeting := &models.Meeting{}
	err := s.store.From("meetings").Select("*").Eq("id", id).Single().
		Auth(accessToken).Get(ctx, meeting)
	if errors.Is(err, supabase.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// ListMeetings fetches all meeting rows, newest date first. The order is
// the store's; it is rendered exactly as returned.
func (s *MeetingService) ListMeetings(ctx context.Context, accessToken string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := s.store.From("meetings").Select("*").Order("date", false).
		Auth(accessToken).Get(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// ------------------- feedback -------------------

// ListFeedback fetches all feedback rows for a meeting in insertion order.
func (s *MeetingService) ListFeedback(ctx context.Context, accessToken, meetingID string) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := s.store.From("feedbacks").Select("*").Eq("meeting_id", meetingID).
		Auth(accessToken).Get(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// AddFeedback inserts one categorized feedback row for a meeting.
func (s *MeetingService) AddFeedback(ctx context.Context, accessToken, meetingID, content, feedbackType string) (*models.Feedback, error) {
	if !models.ValidFeedbackType(feedbackType) {
		return nil, errors.New("invalid feedback type: " + feedbackType)
	}

	row := models.Feedback{Content: content, Type: feedbackType, MeetingID: meetingID}
	var inserted []models.Feedback
	if err := s.store.From("feedbacks").Auth(accessToken).Insert(ctx, []models.Feedback{row}, &inserted); err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, errors.New("failed to submit feedback: store returned no row")
	}
	return &inserted[0], nil
}

// ------------------- join codes -------------------

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewJoinCode returns a random 6-character meeting code. A failed read from
// the random source is an error, never a deterministic code.
func NewJoinCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("join code generation failed: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}
