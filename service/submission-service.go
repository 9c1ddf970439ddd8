package service

import (
	"errors"
	"fmt"

	"kazrockets/app_error"
	"kazrockets/auth"
	"kazrockets/metrics"
	"kazrockets/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionService struct {
	submissionRepository *repository.SubmissionRepository
	eventService         *EventService
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{
		submissionRepository: repository.NewSubmissionRepository(db),
		eventService:         NewEventService(db),
	}
}

// CreateSubmission records a submission for the user's own team. The file
// itself is not stored; only the derived reference is.
func (s *SubmissionService) CreateSubmission(teamId uuid.UUID, eventId uuid.UUID, fileName string, user *repository.User) (*repository.Submission, error) {
	owns := user.TeamId != nil && *user.TeamId == teamId
	if !auth.Can(user.Role, auth.ActionSubmissionCreate, owns) {
		return nil, app_error.Forbidden("You can only submit for your own team")
	}
	if _, err := s.eventService.GetEventById(eventId); err != nil {
		return nil, err
	}
	submission := &repository.Submission{
		TeamId:  teamId,
		EventId: eventId,
		FileUrl: fmt.Sprintf("submissions/%s/%s/%s", eventId, teamId, fileName),
		Status:  repository.StatusPending,
	}
	submission, err := s.submissionRepository.Save(submission)
	if err != nil {
		return nil, err
	}
	metrics.SubmissionsCounter.Inc()
	return submission, nil
}

// GetSubmissions lists submissions, narrowed to the caller's own team when
// the caller is a participant.
func (s *SubmissionService) GetSubmissions(skip int, limit int, eventId *uuid.UUID, teamId *uuid.UUID, currentUser *repository.User) ([]*repository.Submission, error) {
	if currentUser.Role == repository.RoleParticipant {
		if currentUser.TeamId == nil {
			return []*repository.Submission{}, nil
		}
		teamId = currentUser.TeamId
	}
	return s.submissionRepository.GetSubmissions(skip, limit, eventId, teamId)
}

func (s *SubmissionService) GetSubmissionById(submissionId uuid.UUID, currentUser *repository.User) (*repository.Submission, error) {
	submission, err := s.submissionRepository.GetSubmissionById(submissionId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("Submission not found")
		}
		return nil, err
	}
	if currentUser.Role == repository.RoleParticipant &&
		(currentUser.TeamId == nil || *currentUser.TeamId != submission.TeamId) {
		return nil, app_error.Forbidden("You can only view your own team's submissions")
	}
	return submission, nil
}
