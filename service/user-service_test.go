package service

import (
	"testing"

	"kazrockets/app_error"
	"kazrockets/repository"

	"github.com/stretchr/testify/assert"
)

func TestSoftDeletedUserIsInvisible(t *testing.T) {
	defer TearDown()
	userService := NewUserService(db)

	user := makeUser(t, repository.RoleParticipant)
	organizer := makeUser(t, repository.RoleOrganizer)

	// only organizers delete users
	err := userService.DeleteUser(user.Id, user)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	assert.NoError(t, userService.DeleteUser(user.Id, organizer))

	_, err = userService.GetUserById(user.Id)
	assert.Error(t, err)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	users, err := userService.GetUsers(0, 100, nil)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, organizer.Id, users[0].Id)

	// a deleted user frees their email for re-registration
	_, err = userService.CreateUser(UserCreate{
		Email:    user.Email,
		Password: "password123",
		Name:     "Reborn",
		Role:     repository.RoleParticipant,
	})
	assert.NoError(t, err)
}

func TestUpdateUserPermissions(t *testing.T) {
	defer TearDown()
	userService := NewUserService(db)

	user := makeUser(t, repository.RoleParticipant)
	other := makeUser(t, repository.RoleParticipant)
	organizer := makeUser(t, repository.RoleOrganizer)

	name := "New Name"
	_, err := userService.UpdateUser(user.Id, UserUpdate{Name: &name}, other)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	updated, err := userService.UpdateUser(user.Id, UserUpdate{Name: &name}, user)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	staffName := "Renamed By Staff"
	updated, err = userService.UpdateUser(user.Id, UserUpdate{Name: &staffName}, organizer)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed By Staff", updated.Name)

	// an email change cannot collide with another live user
	_, err = userService.UpdateUser(user.Id, UserUpdate{Email: &other.Email}, user)
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	// keeping your own email is not a collision
	_, err = userService.UpdateUser(user.Id, UserUpdate{Email: &user.Email}, user)
	assert.NoError(t, err)
}

func TestGetUsersRoleFilter(t *testing.T) {
	defer TearDown()
	userService := NewUserService(db)

	makeUser(t, repository.RoleParticipant)
	makeUser(t, repository.RoleParticipant)
	judge := makeUser(t, repository.RoleJudge)

	role := repository.RoleJudge
	judges, err := userService.GetUsers(0, 100, &role)
	assert.NoError(t, err)
	assert.Len(t, judges, 1)
	assert.Equal(t, judge.Id, judges[0].Id)

	all, err := userService.GetUsers(0, 100, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	paged, err := userService.GetUsers(2, 100, nil)
	assert.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestCreateUserRejectsInvalidRole(t *testing.T) {
	defer TearDown()
	userService := NewUserService(db)

	_, err := userService.CreateUser(UserCreate{
		Email:    "admin@kazrockets.kz",
		Password: "password123",
		Name:     "Admin",
		Role:     repository.Role("ADMIN"),
	})
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))
}
