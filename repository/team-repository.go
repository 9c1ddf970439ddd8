package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CaptainId uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Captain *User   `gorm:"foreignKey:CaptainId;constraint:OnDelete:CASCADE"`
	Members []*User `gorm:"foreignKey:TeamId"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.Id == uuid.Nil {
		t.Id = uuid.New()
	}
	return nil
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) GetTeamById(teamId uuid.UUID) (*Team, error) {
	var team Team
	result := r.DB.Preload("Captain").Preload("Members").First(&team, "id = ?", teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

func (r *TeamRepository) GetTeams(skip int, limit int) ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.Preload("Captain").Preload("Members").Offset(skip).Limit(limit).Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

func (r *TeamRepository) Save(team *Team) (*Team, error) {
	result := r.DB.Save(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

// CreateWithCaptain inserts the team and points the captain's team
// reference at it in a single transaction.
func (r *TeamRepository) CreateWithCaptain(team *Team, captainId uuid.UUID) (*Team, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Model(&User{}).Where("id = ?", captainId).Update("team_id", team.Id).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetTeamById(team.Id)
}

func (r *TeamRepository) CountOtherMembers(teamId uuid.UUID, userId uuid.UUID) (int64, error) {
	var count int64
	result := r.DB.Model(&User{}).Where("team_id = ? AND id != ?", teamId, userId).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *TeamRepository) SetUserTeam(userId uuid.UUID, teamId *uuid.UUID) error {
	return r.DB.Model(&User{}).Where("id = ?", userId).Update("team_id", teamId).Error
}

// RemoveSoleMember clears the leaving captain's team reference and soft
// deletes the now empty team, atomically.
func (r *TeamRepository) RemoveSoleMember(teamId uuid.UUID, userId uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&User{}).Where("id = ?", userId).Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, "id = ?", teamId).Error
	})
}

// DetachMembersAndDelete clears every member's team reference before soft
// deleting the team so no live user points at a deleted team.
func (r *TeamRepository) DetachMembersAndDelete(teamId uuid.UUID) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&User{}).Where("team_id = ?", teamId).Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, "id = ?", teamId).Error
	})
}
