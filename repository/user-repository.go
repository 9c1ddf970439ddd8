package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleParticipant Role = "PARTICIPANT"
	RoleOrganizer   Role = "ORGANIZER"
	RoleJudge       Role = "JUDGE"
)

func (r Role) IsValid() bool {
	return r == RoleParticipant || r == RoleOrganizer || r == RoleJudge
}

type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"not null;index"`
	PasswordHash string     `gorm:"not null"`
	Name         string     `gorm:"not null"`
	Role         Role       `gorm:"type:user_role;not null"`
	TeamId       *uuid.UUID `gorm:"type:uuid;null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Team *Team `gorm:"foreignKey:TeamId;constraint:OnDelete:SET NULL"`
}

func (User) TableName() string {
	return "app_users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	return nil
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId uuid.UUID, preloads ...string) (*User, error) {
	var user User
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&user, "id = ?", userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*User, error) {
	var user User
	result := r.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// EmailExists checks for a live user with the given email. excludeId skips
// the user being updated so they can keep their own address.
func (r *UserRepository) EmailExists(email string, excludeId *uuid.UUID) (bool, error) {
	var count int64
	query := r.DB.Model(&User{}).Where("email = ?", email)
	if excludeId != nil {
		query = query.Where("id != ?", *excludeId)
	}
	result := query.Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *UserRepository) GetUsers(skip int, limit int, role *Role) ([]*User, error) {
	users := make([]*User, 0)
	query := r.DB.Offset(skip).Limit(limit)
	if role != nil {
		query = query.Where("role = ?", *role)
	}
	result := query.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

func (r *UserRepository) DeleteUser(userId uuid.UUID) error {
	return r.DB.Delete(&User{}, "id = ?", userId).Error
}
