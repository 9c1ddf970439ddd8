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

type EvaluationController struct {
	evaluationService *service.EvaluationService
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{
		evaluationService: service.NewEvaluationService(db),
	}
}

func setupEvaluationController(db *gorm.DB) []RouteInfo {
	e := NewEvaluationController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEvaluationsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createEvaluationHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleJudge}},
	}
	for i, route := range routes {
		routes[i].Path = "/evaluations" + route.Path
	}
	return routes
}

// @id CreateEvaluation
// @Description Records a judge's score for a submission
// @Tags evaluation
// @Accept json
// @Produce json
// @Param body body EvaluationCreateRequest true "Evaluation to create"
// @Success 201 {object} EvaluationResponse
// @Security BearerAuth
// @Router /evaluations [post]
func (e *EvaluationController) createEvaluationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request EvaluationCreateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		evaluation, err := e.evaluationService.CreateEvaluation(request.SubmissionId, *request.Score, request.Comments, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toEvaluationResponse(evaluation))
	}
}

// @id GetEvaluations
// @Description Fetches evaluations, optionally for a single submission
// @Tags evaluation
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param submission_id query string false "Submission filter"
// @Success 200 {array} EvaluationResponse
// @Security BearerAuth
// @Router /evaluations [get]
func (e *EvaluationController) getEvaluationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := getPagination(c)
		if !ok {
			return
		}
		submissionId, ok := getUUIDQuery(c, "submission_id")
		if !ok {
			return
		}
		evaluations, err := e.evaluationService.GetEvaluations(skip, limit, submissionId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(evaluations, toEvaluationResponse))
	}
}

type EvaluationCreateRequest struct {
	SubmissionId uuid.UUID `json:"submission_id" binding:"required"`
	// Pointer so a zero score still passes required validation.
	Score    *int    `json:"score" binding:"required,gte=0,lte=100"`
	Comments *string `json:"comments"`
}

type EvaluationResponse struct {
	Id           uuid.UUID `json:"id" binding:"required"`
	SubmissionId uuid.UUID `json:"submission_id" binding:"required"`
	JudgeId      uuid.UUID `json:"judge_id" binding:"required"`
	Score        int       `json:"score" binding:"required"`
	Comments     *string   `json:"comments"`
	CreatedAt    time.Time `json:"created_at" binding:"required"`
}

func toEvaluationResponse(evaluation *repository.Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		Id:           evaluation.Id,
		SubmissionId: evaluation.SubmissionId,
		JudgeId:      evaluation.JudgeId,
		Score:        evaluation.Score,
		Comments:     evaluation.Comments,
		CreatedAt:    evaluation.CreatedAt,
	}
}
