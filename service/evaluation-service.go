package service

import (
	"errors"

	"kazrockets/app_error"
	"kazrockets/auth"
	"kazrockets/metrics"
	"kazrockets/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationService struct {
	evaluationRepository *repository.EvaluationRepository
	submissionRepository *repository.SubmissionRepository
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{
		evaluationRepository: repository.NewEvaluationRepository(db),
		submissionRepository: repository.NewSubmissionRepository(db),
	}
}

func (s *EvaluationService) CreateEvaluation(submissionId uuid.UUID, score int, comments *string, judge *repository.User) (*repository.Evaluation, error) {
	if !auth.Can(judge.Role, auth.ActionEvaluationCreate, false) {
		return nil, app_error.Forbidden("Only judges can create evaluations")
	}
	if score < 0 || score > 100 {
		return nil, app_error.BadRequest("Score must be between 0 and 100")
	}
	if _, err := s.submissionRepository.GetSubmissionById(submissionId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("Submission not found")
		}
		return nil, err
	}
	evaluation := &repository.Evaluation{
		SubmissionId: submissionId,
		JudgeId:      judge.Id,
		Score:        score,
		Comments:     comments,
	}
	evaluation, err := s.evaluationRepository.Save(evaluation)
	if err != nil {
		return nil, err
	}
	metrics.EvaluationsCounter.Inc()
	return evaluation, nil
}

func (s *EvaluationService) GetEvaluations(skip int, limit int, submissionId *uuid.UUID) ([]*repository.Evaluation, error) {
	return s.evaluationRepository.GetEvaluations(skip, limit, submissionId)
}
