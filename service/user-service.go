package service

import (
	"errors"

	"kazrockets/app_error"
	"kazrockets/auth"
	"kazrockets/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
	teamRepository *repository.TeamRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
		teamRepository: repository.NewTeamRepository(db),
	}
}

type UserCreate struct {
	Email    string
	Password string
	Name     string
	Role     repository.Role
}

type UserUpdate struct {
	Name   *string
	Email  *string
	TeamId *uuid.UUID
}

func (s *UserService) CreateUser(userCreate UserCreate) (*repository.User, error) {
	if !userCreate.Role.IsValid() {
		return nil, app_error.BadRequest("Invalid role %s", userCreate.Role)
	}
	// The pre-check gives a friendly error; the partial unique index on
	// app_users closes the race between concurrent registrations.
	exists, err := s.userRepository.EmailExists(userCreate.Email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, app_error.BadRequest("Email already registered")
	}
	hash, err := auth.HashPassword(userCreate.Password)
	if err != nil {
		return nil, err
	}
	user := &repository.User{
		Email:        userCreate.Email,
		PasswordHash: hash,
		Name:         userCreate.Name,
		Role:         userCreate.Role,
	}
	return s.userRepository.SaveUser(user)
}

// Authenticate returns nil without an error on any mismatch so callers
// cannot tell an unknown email from a wrong password.
func (s *UserService) Authenticate(email string, password string) (*repository.User, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

func (s *UserService) GetUserById(userId uuid.UUID, preloads ...string) (*repository.User, error) {
	user, err := s.userRepository.GetUserById(userId, preloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers(skip int, limit int, role *repository.Role) ([]*repository.User, error) {
	return s.userRepository.GetUsers(skip, limit, role)
}

func (s *UserService) UpdateUser(userId uuid.UUID, update UserUpdate, currentUser *repository.User) (*repository.User, error) {
	if !auth.Can(currentUser.Role, auth.ActionUserUpdate, currentUser.Id == userId) {
		return nil, app_error.Forbidden("Not enough permissions")
	}
	user, err := s.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil && *update.Email != user.Email {
		exists, err := s.userRepository.EmailExists(*update.Email, &userId)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, app_error.BadRequest("Email already registered")
		}
		user.Email = *update.Email
	}
	if update.TeamId != nil {
		if _, err := s.teamRepository.GetTeamById(*update.TeamId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, app_error.NotFound("Team not found")
			}
			return nil, err
		}
		user.TeamId = update.TeamId
	}
	return s.userRepository.SaveUser(user)
}

func (s *UserService) DeleteUser(userId uuid.UUID, currentUser *repository.User) error {
	if !auth.Can(currentUser.Role, auth.ActionUserDelete, false) {
		return app_error.Forbidden("Not enough permissions")
	}
	if _, err := s.GetUserById(userId); err != nil {
		return err
	}
	return s.userRepository.DeleteUser(userId)
}

func (s *UserService) ChangePassword(user *repository.User, currentPassword string, newPassword string) error {
	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return app_error.BadRequest("Incorrect current password")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	_, err = s.userRepository.SaveUser(user)
	return err
}
