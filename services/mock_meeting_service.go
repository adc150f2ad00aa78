// file: services/mock_meeting_service.go
package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"retro-meet/models"
)

// Ensure MockMeetingService implements MeetingServiceInterface
var _ MeetingServiceInterface = (*MockMeetingService)(nil)

// MockMeetingService is a mock implementation for testing and extends `mock.Mock`
type MockMeetingService struct {
	mock.Mock
}

// CreateMeeting (Mocked)
func (m *MockMeetingService) CreateMeeting(ctx context.Context, accessToken string, input CreateMeetingInput) (*models.Meeting, error) {
	args := m.Called(ctx, accessToken, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

// FindMeetingByCode (Mocked)
func (m *MockMeetingService) FindMeetingByCode(ctx context.Context, accessToken, code string) (*models.Meeting, error) {
	args := m.Called(ctx, accessToken, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

// GetMeeting (Mocked)
func (m *MockMeetingService) GetMeeting(ctx context.Context, accessToken, id string) (*models.Meeting, error) {
	args := m.Called(ctx, accessToken, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

// ListMeetings (Mocked)
func (m *MockMeetingService) ListMeetings(ctx context.Context, accessToken string) ([]models.Meeting, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meeting), args.Error(1)
}

// ListFeedback (Mocked)
func (m *MockMeetingService) ListFeedback(ctx context.Context, accessToken, meetingID string) ([]models.Feedback, error) {
	args := m.Called(ctx, accessToken, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

// AddFeedback (Mocked)
func (m *MockMeetingService) AddFeedback(ctx context.Context, accessToken, meetingID, content, feedbackType string) (*models.Feedback, error) {
	args := m.Called(ctx, accessToken, meetingID, content, feedbackType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}
