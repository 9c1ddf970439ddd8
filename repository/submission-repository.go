package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "PENDING"
	StatusApproved SubmissionStatus = "APPROVED"
	StatusRejected SubmissionStatus = "REJECTED"
)

type Submission struct {
	Id          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TeamId      uuid.UUID        `gorm:"type:uuid;not null;index"`
	EventId     uuid.UUID        `gorm:"type:uuid;not null;index"`
	FileUrl     string           `gorm:"not null"`
	Status      SubmissionStatus `gorm:"type:submission_status;not null;default:PENDING"`
	SubmittedAt time.Time        `gorm:"autoCreateTime"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Team        *Team         `gorm:"foreignKey:TeamId;constraint:OnDelete:CASCADE"`
	Event       *Event        `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Evaluations []*Evaluation `gorm:"foreignKey:SubmissionId"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}

// AverageScore is the arithmetic mean over the loaded evaluations. Soft
// deleted evaluations are already excluded by the query scope. Nil when
// there are none.
func (s *Submission) AverageScore() *float64 {
	if len(s.Evaluations) == 0 {
		return nil
	}
	sum := 0
	for _, evaluation := range s.Evaluations {
		sum += evaluation.Score
	}
	average := float64(sum) / float64(len(s.Evaluations))
	return &average
}

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) GetSubmissionById(submissionId uuid.UUID) (*Submission, error) {
	var submission Submission
	result := r.DB.Preload("Evaluations").First(&submission, "id = ?", submissionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &submission, nil
}

func (r *SubmissionRepository) GetSubmissions(skip int, limit int, eventId *uuid.UUID, teamId *uuid.UUID) ([]*Submission, error) {
	submissions := make([]*Submission, 0)
	query := r.DB.Preload("Evaluations").Offset(skip).Limit(limit)
	if eventId != nil {
		query = query.Where("event_id = ?", *eventId)
	}
	if teamId != nil {
		query = query.Where("team_id = ?", *teamId)
	}
	result := query.Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}
	return submissions, nil
}

func (r *SubmissionRepository) Save(submission *Submission) (*Submission, error) {
	result := r.DB.Save(submission)
	if result.Error != nil {
		return nil, result.Error
	}
	return submission, nil
}

func (r *SubmissionRepository) Delete(submissionId uuid.UUID) error {
	return r.DB.Delete(&Submission{}, "id = ?", submissionId).Error
}
