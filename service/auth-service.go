package service

import (
	"kazrockets/app_error"
	"kazrockets/auth"
	"kazrockets/metrics"
	"kazrockets/repository"

	"gorm.io/gorm"
)

type AuthService struct {
	userService *UserService
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		userService: NewUserService(db),
	}
}

func (s *AuthService) Register(userCreate UserCreate) (*repository.User, *auth.TokenPair, error) {
	user, err := s.userService.CreateUser(userCreate)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := auth.CreateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	metrics.RegistrationsCounter.WithLabelValues(string(user.Role)).Inc()
	return user, tokens, nil
}

func (s *AuthService) Login(email string, password string) (*repository.User, *auth.TokenPair, error) {
	user, err := s.userService.Authenticate(email, password)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		metrics.LoginFailureCounter.Inc()
		return nil, nil, app_error.Unauthorized("Incorrect email or password")
	}
	tokens, err := auth.CreateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	metrics.LoginCounter.Inc()
	return user, tokens, nil
}

// Refresh verifies a refresh token and issues a new pair. The subject must
// still be a live user.
func (s *AuthService) Refresh(refreshToken string) (*auth.TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, app_error.Unauthorized("Invalid refresh token")
	}
	user, err := s.userService.GetUserById(claims.UserId)
	if err != nil {
		return nil, app_error.Unauthorized("User not found or inactive")
	}
	return auth.CreateTokenPair(user)
}

// Logout is a no-op: tokens are stateless and there is no server-side
// revocation list. The client discards its pair.
func (s *AuthService) Logout(user *repository.User) error {
	return nil
}
