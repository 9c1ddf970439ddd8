package controller

import (
	"time"

	"kazrockets/repository"
	"kazrockets/service"
	"kazrockets/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The one content type submissions may declare. Files are referenced, not
// stored; only the derived URL is persisted.
const allowedContentType = "application/pdf"

type SubmissionController struct {
	submissionService *service.SubmissionService
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		submissionService: service.NewSubmissionService(db),
	}
}

func setupSubmissionController(db *gorm.DB) []RouteInfo {
	e := NewSubmissionController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getSubmissionsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createSubmissionHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleParticipant}},
		{Method: "GET", Path: "/:submission_id", HandlerFunc: e.getSubmissionHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = "/submissions" + route.Path
	}
	return routes
}

// @id CreateSubmission
// @Description Submits a PDF for the caller's team against an event
// @Tags submission
// @Accept mpfd
// @Produce json
// @Param team_id formData string true "Team Id"
// @Param event_id formData string true "Event Id"
// @Param file formData file true "PDF file"
// @Success 201 {object} SubmissionCreatedResponse
// @Security BearerAuth
// @Router /submissions [post]
func (e *SubmissionController) createSubmissionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := uuid.Parse(c.PostForm("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "team_id must be a valid uuid"})
			return
		}
		eventId, err := uuid.Parse(c.PostForm("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "event_id must be a valid uuid"})
			return
		}
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": "file is required"})
			return
		}
		if file.Header.Get("Content-Type") != allowedContentType {
			c.JSON(400, gin.H{"error": "Only PDF files are allowed"})
			return
		}
		submission, err := e.submissionService.CreateSubmission(teamId, eventId, file.Filename, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, SubmissionCreatedResponse{
			Message:      "Submission created successfully",
			SubmissionId: submission.Id,
			Status:       submission.Status,
		})
	}
}

// @id GetSubmissions
// @Description Fetches submissions; participants only see their own team's
// @Tags submission
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param event_id query string false "Event filter"
// @Param team_id query string false "Team filter"
// @Success 200 {array} SubmissionResponse
// @Security BearerAuth
// @Router /submissions [get]
func (e *SubmissionController) getSubmissionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := getPagination(c)
		if !ok {
			return
		}
		eventId, ok := getUUIDQuery(c, "event_id")
		if !ok {
			return
		}
		teamId, ok := getUUIDQuery(c, "team_id")
		if !ok {
			return
		}
		submissions, err := e.submissionService.GetSubmissions(skip, limit, eventId, teamId, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(submissions, toSubmissionResponse))
	}
}

// @id GetSubmissionById
// @Description Fetches a submission with its average score
// @Tags submission
// @Produce json
// @Param submission_id path string true "Submission Id"
// @Success 200 {object} SubmissionResponse
// @Security BearerAuth
// @Router /submissions/{submission_id} [get]
func (e *SubmissionController) getSubmissionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		submissionId, ok := getUUIDParam(c, "submission_id")
		if !ok {
			return
		}
		submission, err := e.submissionService.GetSubmissionById(submissionId, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toSubmissionResponse(submission))
	}
}

type SubmissionCreatedResponse struct {
	Message      string                      `json:"message"`
	SubmissionId uuid.UUID                   `json:"submission_id"`
	Status       repository.SubmissionStatus `json:"status"`
}

type SubmissionResponse struct {
	Id              uuid.UUID                   `json:"id" binding:"required"`
	TeamId          uuid.UUID                   `json:"team_id" binding:"required"`
	EventId         uuid.UUID                   `json:"event_id" binding:"required"`
	FileUrl         string                      `json:"file_url" binding:"required"`
	Status          repository.SubmissionStatus `json:"status" binding:"required"`
	AverageScore    *float64                    `json:"average_score"`
	EvaluationCount int                         `json:"evaluation_count"`
	SubmittedAt     time.Time                   `json:"submitted_at" binding:"required"`
}

func toSubmissionResponse(submission *repository.Submission) *SubmissionResponse {
	return &SubmissionResponse{
		Id:              submission.Id,
		TeamId:          submission.TeamId,
		EventId:         submission.EventId,
		FileUrl:         submission.FileUrl,
		Status:          submission.Status,
		AverageScore:    submission.AverageScore(),
		EvaluationCount: len(submission.Evaluations),
		SubmittedAt:     submission.SubmittedAt,
	}
}
