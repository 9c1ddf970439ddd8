package controller

import (
	"kazrockets/app_error"
	"kazrockets/repository"
	"kazrockets/service"
	"kazrockets/utils"

	"kazrockets/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getUsersHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
		{Method: "GET", Path: "/:user_id", HandlerFunc: e.getUserHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:user_id", HandlerFunc: e.updateUserHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:user_id", HandlerFunc: e.deleteUserHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
	}
	for i, route := range routes {
		routes[i].Path = "/users" + route.Path
	}
	return routes
}

// @id GetUsers
// @Description Fetches all users, optionally filtered by role
// @Tags user
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param role query string false "Role filter"
// @Success 200 {array} UserResponse
// @Security BearerAuth
// @Router /users [get]
func (e *UserController) getUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		currentUser := getUser(c)
		if !auth.Can(currentUser.Role, auth.ActionUserList, false) {
			respondError(c, app_error.Forbidden("Not enough permissions"))
			return
		}
		skip, limit, ok := getPagination(c)
		if !ok {
			return
		}
		var role *repository.Role
		if roleParam := c.Query("role"); roleParam != "" {
			r := repository.Role(roleParam)
			if !r.IsValid() {
				c.JSON(400, gin.H{"error": "role must be one of PARTICIPANT, ORGANIZER, JUDGE"})
				return
			}
			role = &r
		}
		users, err := e.userService.GetUsers(skip, limit, role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id GetUserById
// @Description Fetches a user by id with their team name
// @Tags user
// @Produce json
// @Param user_id path string true "User Id"
// @Success 200 {object} UserWithTeamResponse
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := getUUIDParam(c, "user_id")
		if !ok {
			return
		}
		currentUser := getUser(c)
		if !auth.Can(currentUser.Role, auth.ActionUserView, currentUser.Id == userId) {
			respondError(c, app_error.Forbidden("Not enough permissions"))
			return
		}
		user, err := e.userService.GetUserById(userId, "Team")
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toUserWithTeamResponse(user))
	}
}

// @id UpdateUser
// @Description Updates a user (self, or any user for organizers)
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path string true "User Id"
// @Param body body UserUpdateRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/{user_id} [put]
func (e *UserController) updateUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := getUUIDParam(c, "user_id")
		if !ok {
			return
		}
		var request UserUpdateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.UpdateUser(userId, service.UserUpdate{
			Name:   request.Name,
			Email:  request.Email,
			TeamId: request.TeamId,
		}, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id DeleteUser
// @Description Soft deletes a user
// @Tags user
// @Produce json
// @Param user_id path string true "User Id"
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (e *UserController) deleteUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := getUUIDParam(c, "user_id")
		if !ok {
			return
		}
		if err := e.userService.DeleteUser(userId, getUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, MessageResponse{Message: "User deleted successfully"})
	}
}

type UserUpdateRequest struct {
	Name   *string    `json:"name"`
	Email  *string    `json:"email" binding:"omitempty,email"`
	TeamId *uuid.UUID `json:"team_id"`
}

type UserWithTeamResponse struct {
	UserResponse
	TeamName *string `json:"team_name"`
}

func toUserWithTeamResponse(user *repository.User) *UserWithTeamResponse {
	response := &UserWithTeamResponse{UserResponse: *toUserResponse(user)}
	if user.Team != nil {
		response.TeamName = &user.Team.Name
	}
	return response
}
