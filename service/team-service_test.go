package service

import (
	"testing"

	"kazrockets/app_error"
	"kazrockets/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTeamLifecycle(t *testing.T) {
	defer TearDown()
	teamService := NewTeamService(db)
	userService := NewUserService(db)

	team, captain := makeTeam(t, "Rockets")
	assert.Equal(t, captain.Id, team.CaptainId)
	assert.Len(t, team.Members, 1)
	assert.NotNil(t, captain.TeamId)
	assert.Equal(t, team.Id, *captain.TeamId)

	// one team per user
	_, err := teamService.CreateTeam("Second Rockets", captain)
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	member := makeUser(t, repository.RoleParticipant)
	team, err = teamService.JoinTeam(team.Id, member)
	assert.NoError(t, err)
	assert.Len(t, team.Members, 2)
	member, err = userService.GetUserById(member.Id)
	assert.NoError(t, err)

	// the same user cannot join twice
	_, err = teamService.JoinTeam(team.Id, member)
	assert.Error(t, err)

	// captain is stuck while the team has other members
	err = teamService.LeaveTeam(captain)
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	// transfer captaincy, then the old captain may leave
	team, err = teamService.UpdateTeam(team.Id, TeamUpdate{CaptainId: &member.Id}, captain)
	assert.NoError(t, err)
	assert.Equal(t, member.Id, team.CaptainId)

	assert.NoError(t, teamService.LeaveTeam(captain))
	team, err = teamService.GetTeamById(team.Id)
	assert.NoError(t, err)
	assert.Len(t, team.Members, 1)

	captain, err = userService.GetUserById(captain.Id)
	assert.NoError(t, err)
	assert.Nil(t, captain.TeamId)
}

func TestSoleCaptainLeaveDeletesTeam(t *testing.T) {
	defer TearDown()
	teamService := NewTeamService(db)
	userService := NewUserService(db)

	team, captain := makeTeam(t, "Solo")

	assert.NoError(t, teamService.LeaveTeam(captain))

	_, err := teamService.GetTeamById(team.Id)
	assert.Error(t, err)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	captain, err = userService.GetUserById(captain.Id)
	assert.NoError(t, err)
	assert.Nil(t, captain.TeamId)
}

func TestDeleteTeamDetachesMembers(t *testing.T) {
	defer TearDown()
	teamService := NewTeamService(db)
	userService := NewUserService(db)

	team, captain := makeTeam(t, "Doomed")
	member := makeUser(t, repository.RoleParticipant)
	organizer := makeUser(t, repository.RoleOrganizer)
	_, err := teamService.JoinTeam(team.Id, member)
	assert.NoError(t, err)

	// even the captain cannot delete the team outright
	err = teamService.DeleteTeam(team.Id, captain)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	assert.NoError(t, teamService.DeleteTeam(team.Id, organizer))

	_, err = teamService.GetTeamById(team.Id)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	// members survive, detached
	captain, err = userService.GetUserById(captain.Id)
	assert.NoError(t, err)
	assert.Nil(t, captain.TeamId)
	member, err = userService.GetUserById(member.Id)
	assert.NoError(t, err)
	assert.Nil(t, member.TeamId)
}

func TestCreateTeamRequiresParticipant(t *testing.T) {
	defer TearDown()
	teamService := NewTeamService(db)

	organizer := makeUser(t, repository.RoleOrganizer)
	_, err := teamService.CreateTeam("Staff Team", organizer)
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	judge := makeUser(t, repository.RoleJudge)
	_, err = teamService.JoinTeam(organizer.Id, judge)
	assert.Error(t, err)
}

func TestUpdateTeamPermissions(t *testing.T) {
	defer TearDown()
	teamService := NewTeamService(db)

	team, _ := makeTeam(t, "Original Name")
	outsider := makeUser(t, repository.RoleParticipant)
	organizer := makeUser(t, repository.RoleOrganizer)

	name := "Renamed"
	_, err := teamService.UpdateTeam(team.Id, TeamUpdate{Name: &name}, outsider)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	team, err = teamService.UpdateTeam(team.Id, TeamUpdate{Name: &name}, organizer)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", team.Name)

	// captaincy cannot go to someone outside the team
	_, err = teamService.UpdateTeam(team.Id, TeamUpdate{CaptainId: &outsider.Id}, organizer)
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	// nor to a user that does not exist
	ghost := uuid.New()
	_, err = teamService.UpdateTeam(team.Id, TeamUpdate{CaptainId: &ghost}, organizer)
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))
}
