package controller

import (
	"kazrockets/repository"
	"kazrockets/service"
	"kazrockets/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamController struct {
	teamService *service.TeamService
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{
		teamService: service.NewTeamService(db),
	}
}

func setupTeamController(db *gorm.DB) []RouteInfo {
	e := NewTeamController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getTeamsHandler(), Authenticated: true},
		{Method: "POST", Path: "", HandlerFunc: e.createTeamHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleParticipant}},
		{Method: "POST", Path: "/join", HandlerFunc: e.joinTeamHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleParticipant}},
		{Method: "POST", Path: "/leave", HandlerFunc: e.leaveTeamHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleParticipant}},
		{Method: "GET", Path: "/:team_id", HandlerFunc: e.getTeamHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:team_id", HandlerFunc: e.updateTeamHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:team_id", HandlerFunc: e.deleteTeamHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
	}
	for i, route := range routes {
		routes[i].Path = "/teams" + route.Path
	}
	return routes
}

// @id GetTeams
// @Description Fetches all teams as summaries
// @Tags team
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} TeamSummaryResponse
// @Security BearerAuth
// @Router /teams [get]
func (e *TeamController) getTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := getPagination(c)
		if !ok {
			return
		}
		teams, err := e.teamService.GetTeams(skip, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(teams, toTeamSummaryResponse))
	}
}

// @id CreateTeam
// @Description Creates a team with the caller as captain and sole member
// @Tags team
// @Accept json
// @Produce json
// @Param body body TeamCreateRequest true "Team to create"
// @Success 201 {object} TeamResponse
// @Security BearerAuth
// @Router /teams [post]
func (e *TeamController) createTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request TeamCreateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.CreateTeam(request.Name, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toTeamResponse(team))
	}
}

// @id GetTeamById
// @Description Fetches a team with captain and members
// @Tags team
// @Produce json
// @Param team_id path string true "Team Id"
// @Success 200 {object} TeamResponse
// @Security BearerAuth
// @Router /teams/{team_id} [get]
func (e *TeamController) getTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, ok := getUUIDParam(c, "team_id")
		if !ok {
			return
		}
		team, err := e.teamService.GetTeamById(teamId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id UpdateTeam
// @Description Renames a team or transfers captaincy (captain or organizer)
// @Tags team
// @Accept json
// @Produce json
// @Param team_id path string true "Team Id"
// @Param body body TeamUpdateRequest true "Fields to update"
// @Success 200 {object} TeamResponse
// @Security BearerAuth
// @Router /teams/{team_id} [put]
func (e *TeamController) updateTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, ok := getUUIDParam(c, "team_id")
		if !ok {
			return
		}
		var request TeamUpdateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.UpdateTeam(teamId, service.TeamUpdate{
			Name:      request.Name,
			CaptainId: request.CaptainId,
		}, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id JoinTeam
// @Description Adds the caller to a team
// @Tags team
// @Accept json
// @Produce json
// @Param body body JoinTeamRequest true "Team to join"
// @Success 200 {object} JoinTeamResponse
// @Security BearerAuth
// @Router /teams/join [post]
func (e *TeamController) joinTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request JoinTeamRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.JoinTeam(request.TeamId, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, JoinTeamResponse{
			Message:  "Successfully joined team",
			TeamId:   team.Id,
			TeamName: team.Name,
		})
	}
}

// @id LeaveTeam
// @Description Removes the caller from their team
// @Tags team
// @Produce json
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /teams/leave [post]
func (e *TeamController) leaveTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := e.teamService.LeaveTeam(getUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, MessageResponse{Message: "Successfully left team"})
	}
}

// @id DeleteTeam
// @Description Detaches all members and soft deletes the team
// @Tags team
// @Produce json
// @Param team_id path string true "Team Id"
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /teams/{team_id} [delete]
func (e *TeamController) deleteTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, ok := getUUIDParam(c, "team_id")
		if !ok {
			return
		}
		if err := e.teamService.DeleteTeam(teamId, getUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, MessageResponse{Message: "Team deleted successfully"})
	}
}

type TeamCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type TeamUpdateRequest struct {
	Name      *string    `json:"name"`
	CaptainId *uuid.UUID `json:"captain_id"`
}

type JoinTeamRequest struct {
	TeamId uuid.UUID `json:"team_id" binding:"required"`
}

type JoinTeamResponse struct {
	Message  string    `json:"message"`
	TeamId   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name"`
}

type TeamMemberResponse struct {
	Id    uuid.UUID       `json:"id" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Email string          `json:"email" binding:"required"`
	Role  repository.Role `json:"role" binding:"required"`
}

type TeamResponse struct {
	Id          uuid.UUID             `json:"id" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	CaptainId   uuid.UUID             `json:"captain_id" binding:"required"`
	CaptainName string                `json:"captain_name"`
	Members     []*TeamMemberResponse `json:"members"`
	MemberCount int                   `json:"member_count"`
}

type TeamSummaryResponse struct {
	Id          uuid.UUID `json:"id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	CaptainName string    `json:"captain_name"`
	MemberCount int       `json:"member_count"`
}

func toTeamResponse(team *repository.Team) *TeamResponse {
	response := &TeamResponse{
		Id:        team.Id,
		Name:      team.Name,
		CaptainId: team.CaptainId,
		Members: utils.Map(team.Members, func(member *repository.User) *TeamMemberResponse {
			return &TeamMemberResponse{
				Id:    member.Id,
				Name:  member.Name,
				Email: member.Email,
				Role:  member.Role,
			}
		}),
		MemberCount: len(team.Members),
	}
	if team.Captain != nil {
		response.CaptainName = team.Captain.Name
	}
	return response
}

func toTeamSummaryResponse(team *repository.Team) *TeamSummaryResponse {
	response := &TeamSummaryResponse{
		Id:          team.Id,
		Name:        team.Name,
		MemberCount: len(team.Members),
	}
	if team.Captain != nil {
		response.CaptainName = team.Captain.Name
	}
	return response
}
