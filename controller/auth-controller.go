package controller

import (
	"time"

	"kazrockets/auth"
	"kazrockets/repository"
	"kazrockets/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthController struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		authService: service.NewAuthService(db),
		userService: service.NewUserService(db),
	}
}

func setupAuthController(db *gorm.DB) []RouteInfo {
	e := NewAuthController(db)
	routes := []RouteInfo{
		{Method: "POST", Path: "/register", HandlerFunc: e.registerHandler()},
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/refresh", HandlerFunc: e.refreshHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler(), Authenticated: true},
		{Method: "GET", Path: "/me", HandlerFunc: e.meHandler(), Authenticated: true},
		{Method: "POST", Path: "/change-password", HandlerFunc: e.changePasswordHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = "/auth" + route.Path
	}
	return routes
}

// @id Register
// @Description Registers a new user and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "User to register"
// @Success 201 {object} AuthResponse
// @Router /auth/register [post]
func (e *AuthController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RegisterRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, tokens, err := e.authService.Register(service.UserCreate{
			Email:    request.Email,
			Password: request.Password,
			Name:     request.Name,
			Role:     request.Role,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, AuthResponse{
			Message: "User registered successfully",
			User:    toUserResponse(user),
			Tokens:  tokens,
		})
	}
}

// @id Login
// @Description Logs a user in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request LoginRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, tokens, err := e.authService.Login(request.Email, request.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, AuthResponse{
			Message: "Login successful",
			User:    toUserResponse(user),
			Tokens:  tokens,
		})
	}
}

// @id RefreshToken
// @Description Exchanges a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} auth.TokenPair
// @Router /auth/refresh [post]
func (e *AuthController) refreshHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RefreshRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tokens, err := e.authService.Refresh(request.RefreshToken)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, tokens)
	}
}

// @id Logout
// @Description Logs the authenticated user out
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.authService.Logout(getUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, MessageResponse{Message: "Logout successful"})
	}
}

// @id GetProfile
// @Description Fetches the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (e *AuthController) meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, toUserResponse(getUser(c)))
	}
}

// @id ChangePassword
// @Description Changes the authenticated user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body PasswordChangeRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (e *AuthController) changePasswordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request PasswordChangeRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.userService.ChangePassword(getUser(c), request.CurrentPassword, request.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, MessageResponse{Message: "Password changed successfully"})
	}
}

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Role     repository.Role `json:"role" binding:"required,oneof=PARTICIPANT ORGANIZER JUDGE"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	User    *UserResponse   `json:"user"`
	Tokens  *auth.TokenPair `json:"tokens"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Id        uuid.UUID       `json:"id" binding:"required"`
	Email     string          `json:"email" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Role      repository.Role `json:"role" binding:"required"`
	TeamId    *uuid.UUID      `json:"team_id"`
	CreatedAt time.Time       `json:"created_at" binding:"required"`
}

func toUserResponse(user *repository.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		TeamId:    user.TeamId,
		CreatedAt: user.CreatedAt,
	}
}
