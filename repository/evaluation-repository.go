package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Evaluation struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubmissionId uuid.UUID `gorm:"type:uuid;not null;index"`
	JudgeId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Score        int       `gorm:"not null;check:score >= 0 AND score <= 100"`
	Comments     *string   `gorm:"null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Submission *Submission `gorm:"foreignKey:SubmissionId;constraint:OnDelete:CASCADE"`
	Judge      *User       `gorm:"foreignKey:JudgeId;constraint:OnDelete:CASCADE"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}

type EvaluationRepository struct {
	DB *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: db}
}

func (r *EvaluationRepository) GetEvaluationById(evaluationId uuid.UUID) (*Evaluation, error) {
	var evaluation Evaluation
	result := r.DB.First(&evaluation, "id = ?", evaluationId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &evaluation, nil
}

func (r *EvaluationRepository) GetEvaluations(skip int, limit int, submissionId *uuid.UUID) ([]*Evaluation, error) {
	evaluations := make([]*Evaluation, 0)
	query := r.DB.Offset(skip).Limit(limit)
	if submissionId != nil {
		query = query.Where("submission_id = ?", *submissionId)
	}
	result := query.Find(&evaluations)
	if result.Error != nil {
		return nil, result.Error
	}
	return evaluations, nil
}

func (r *EvaluationRepository) Save(evaluation *Evaluation) (*Evaluation, error) {
	result := r.DB.Save(evaluation)
	if result.Error != nil {
		return nil, result.Error
	}
	return evaluation, nil
}

func (r *EvaluationRepository) Delete(evaluationId uuid.UUID) error {
	return r.DB.Delete(&Evaluation{}, "id = ?", evaluationId).Error
}
