// Package controllers file: controllers/meeting_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"retro-meet/logger"
	"retro-meet/middleware"
	"retro-meet/models"
	"retro-meet/services"
	"retro-meet/supabase"
)

var meetingService services.MeetingServiceInterface

// SetMeetingService wires the meeting service used by these controllers.
func SetMeetingService(s services.MeetingServiceInterface) {
	meetingService = s
}

// ------------------ form schemas ------------------

type createMeetingForm struct {
	Title        string `form:"title" binding:"required,min=2"`
	Description  string `form:"description"`
	Date         string `form:"date" binding:"required"`
	Participants string `form:"participants"`
}

type joinMeetingForm struct {
	Code string `form:"code" binding:"required,len=6"`
}

type feedbackForm struct {
	Content string `form:"content" binding:"required"`
	Type    string `form:"type" binding:"omitempty,oneof=good bad action"`
}

// sessionAccessToken returns the signed-in user's access token. Store calls
// carry it so they run under the user's row-level permissions instead of the
// anonymous role.
func sessionAccessToken(c *gin.Context) string {
	token, _ := sessions.Default(c).Get(middleware.SessionKeyAccessToken).(string)
	return token
}

// createMeetingFormError maps a binding failure to the field that caused it.
// With several failing fields the title message wins, matching field order on
// the form.
func createMeetingFormError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Title" {
				return "Title must be at least 2 characters."
			}
		}
		for _, fe := range fieldErrs {
			if fe.Field() == "Date" {
				return "Please enter a valid date."
			}
		}
	}
	return "Title must be at least 2 characters."
}

// ------------------ create meeting ------------------

// ShowCreateMeeting renders the create-meeting form with today's date prefilled.
func ShowCreateMeeting(c *gin.Context) {
	c.HTML(http.StatusOK, "create_meeting.html", gin.H{
		"Title":        "",
		"Description":  "",
		"Date":         time.Now().Format("2006-01-02"),
		"Participants": "",
	})
}

// PerformCreateMeeting validates the form, creates the meeting through the
// service (which also fans out participant links), and redirects to the new
// meeting's detail page. Validation failures never reach the remote store.
func PerformCreateMeeting(c *gin.Context) {
	var form createMeetingForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn.Printf("[%s] PerformCreateMeeting: invalid form: %v", middleware.GetRequestID(c), err)
		c.HTML(http.StatusBadRequest, "create_meeting.html", gin.H{
			"Error":        createMeetingFormError(err),
			"Title":        c.PostForm("title"),
			"Description":  c.PostForm("description"),
			"Date":         c.PostForm("date"),
			"Participants": c.PostForm("participants"),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", form.Date); err != nil {
		logger.Warn.Printf("[%s] PerformCreateMeeting: invalid date %q", middleware.GetRequestID(c), form.Date)
		c.HTML(http.StatusBadRequest, "create_meeting.html", gin.H{
			"Error":        "Please enter a valid date.",
			"Title":        form.Title,
			"Description":  form.Description,
			"Date":         form.Date,
			"Participants": form.Participants,
		})
		return
	}

	meeting, err := meetingService.CreateMeeting(c.Request.Context(), sessionAccessToken(c), services.CreateMeetingInput{
		Title:        form.Title,
		Description:  form.Description,
		Date:         form.Date,
		Participants: form.Participants,
	})
	if errors.Is(err, services.ErrNotAuthenticated) {
		c.Redirect(http.StatusFound, "/signin")
		return
	}
	if err != nil {
		supabase.LogError(err)
		c.HTML(http.StatusInternalServerError, "create_meeting.html", gin.H{
			"Error":        "Could not create the meeting, please try again.",
			"Title":        form.Title,
			"Description":  form.Description,
			"Date":         form.Date,
			"Participants": form.Participants,
		})
		return
	}

	c.Redirect(http.StatusFound, "/meeting/"+meeting.ID)
}

// ------------------ join meeting ------------------

// ShowJoinMeeting renders the join form. A code query parameter (from a
// scanned QR link) prefills the field.
func ShowJoinMeeting(c *gin.Context) {
	c.HTML(http.StatusOK, "join_meeting.html", gin.H{
		"Code": c.Query("code"),
	})
}

// PerformJoinMeeting resolves a 6-character code to a meeting and redirects
// to its detail page. An unknown code attaches a field-level error to the
// re-rendered form; no navigation happens.
func PerformJoinMeeting(c *gin.Context) {
	var form joinMeetingForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn.Printf("[%s] PerformJoinMeeting: invalid form: %v", middleware.GetRequestID(c), err)
		c.HTML(http.StatusBadRequest, "join_meeting.html", gin.H{
			"Code":      c.PostForm("code"),
			"CodeError": "Meeting code must be exactly 6 characters.",
		})
		return
	}

	meeting, err := meetingService.FindMeetingByCode(c.Request.Context(), sessionAccessToken(c), form.Code)
	if errors.Is(err, services.ErrNotFound) {
		c.HTML(http.StatusNotFound, "join_meeting.html", gin.H{
			"Code":      form.Code,
			"CodeError": "Invalid meeting code. Please try again.",
		})
		return
	}
	if err != nil {
		supabase.LogError(err)
		c.HTML(http.StatusInternalServerError, "join_meeting.html", gin.H{
			"Code":  form.Code,
			"Error": "Could not look up the meeting, please try again.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/meeting/"+meeting.ID)
}

// ------------------ meeting detail ------------------

// ShowMeeting renders one meeting with all its feedback, in the store's
// insertion order. An unknown id renders the not-found page; a feedback
// fetch failure still renders the meeting, just without feedback.
func ShowMeeting(c *gin.Context) {
	id := c.Param("id")

	meeting, err := meetingService.GetMeeting(c.Request.Context(), sessionAccessToken(c), id)
	if errors.Is(err, services.ErrNotFound) {
		logger.Warn.Printf("[%s] ShowMeeting: no meeting found for id %s", middleware.GetRequestID(c), id)
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
		return
	}
	if err != nil {
		supabase.LogError(err)
		c.String(http.StatusInternalServerError, "Could not load the meeting")
		return
	}

	feedbacks, err := meetingService.ListFeedback(c.Request.Context(), sessionAccessToken(c), id)
	if err != nil {
		supabase.LogError(err)
		feedbacks = nil
	}

	c.HTML(http.StatusOK, "meeting.html", gin.H{
		"Meeting":   meeting,
		"Feedbacks": feedbacks,
	})
}

// ShowMeetingByQuery keeps the legacy query-parameter link shape alive by
// redirecting /meeting?id=X to the canonical /meeting/X.
func ShowMeetingByQuery(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
		return
	}
	c.Redirect(http.StatusMovedPermanently, "/meeting/"+id)
}

// SubmitFeedback inserts one feedback row for the meeting and reloads the
// detail page, where the new row appears at the end of the list.
func SubmitFeedback(c *gin.Context) {
	id := c.Param("id")

	var form feedbackForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn.Printf("[%s] SubmitFeedback: invalid form for meeting %s: %v", middleware.GetRequestID(c), id, err)
		c.Redirect(http.StatusFound, "/meeting/"+id)
		return
	}
	if form.Type == "" {
		form.Type = models.FeedbackGood
	}

	if _, err := meetingService.AddFeedback(c.Request.Context(), sessionAccessToken(c), id, form.Content, form.Type); err != nil {
		supabase.LogError(err)
	}

	c.Redirect(http.StatusFound, "/meeting/"+id)
}

// MeetingQRCode serves a PNG QR code of the meeting's join link.
func MeetingQRCode(c *gin.Context) {
	id := c.Param("id")

	meeting, err := meetingService.GetMeeting(c.Request.Context(), sessionAccessToken(c), id)
	if errors.Is(err, services.ErrNotFound) || (err == nil && meeting.Code == "") {
		c.String(http.StatusNotFound, "No join code for this meeting")
		return
	}
	if err != nil {
		supabase.LogError(err)
		c.String(http.StatusInternalServerError, "Could not load the meeting")
		return
	}

	qrBytes, err := services.GenerateJoinQRCode(meeting.Code, 300)
	if err != nil {
		logger.Error.Printf("[%s] MeetingQRCode: Error generating QR code: %v", middleware.GetRequestID(c), err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"qrcode.png\"")
	if _, err := c.Writer.Write(qrBytes); err != nil {
		logger.Error.Printf("[%s] MeetingQRCode: Error writing QR code bytes: %v", middleware.GetRequestID(c), err)
	}
}

// ------------------ my meetings ------------------

// MyMeetings lists every meeting, newest date first, exactly as the store
// orders them.
func MyMeetings(c *gin.Context) {
	meetings, err := meetingService.ListMeetings(c.Request.Context(), sessionAccessToken(c))
	if err != nil {
		supabase.LogError(err)
		c.HTML(http.StatusInternalServerError, "my_meetings.html", gin.H{
			"Error": "Could not load meetings, please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "my_meetings.html", gin.H{
		"Meetings": meetings,
	})
}
