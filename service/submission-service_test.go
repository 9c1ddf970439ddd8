package service

import (
	"fmt"
	"testing"

	"kazrockets/app_error"
	"kazrockets/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateSubmission(t *testing.T) {
	defer TearDown()
	submissionService := NewSubmissionService(db)

	team, captain := makeTeam(t, "Builders")
	event := makeEvent(t, "Qualifier")

	submission, err := submissionService.CreateSubmission(team.Id, event.Id, "design.pdf", captain)
	assert.NoError(t, err)
	assert.Equal(t, repository.StatusPending, submission.Status)
	assert.Equal(t, fmt.Sprintf("submissions/%s/%s/design.pdf", event.Id, team.Id), submission.FileUrl)

	// members of other teams cannot submit for this one
	_, outsider := makeTeam(t, "Rivals")
	_, err = submissionService.CreateSubmission(team.Id, event.Id, "sneaky.pdf", outsider)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	// nor can a teamless participant
	teamless := makeUser(t, repository.RoleParticipant)
	_, err = submissionService.CreateSubmission(team.Id, event.Id, "late.pdf", teamless)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	// the event has to exist
	_, err = submissionService.CreateSubmission(team.Id, uuid.New(), "lost.pdf", captain)
	assert.Equal(t, 404, app_error.HTTPStatus(err))
}

func TestParticipantSubmissionScoping(t *testing.T) {
	defer TearDown()
	submissionService := NewSubmissionService(db)

	event := makeEvent(t, "Regionals")
	team1, captain1 := makeTeam(t, "Alpha")
	team2, captain2 := makeTeam(t, "Beta")

	sub1, err := submissionService.CreateSubmission(team1.Id, event.Id, "alpha.pdf", captain1)
	assert.NoError(t, err)
	sub2, err := submissionService.CreateSubmission(team2.Id, event.Id, "beta.pdf", captain2)
	assert.NoError(t, err)

	// a participant only sees their own team's submissions, even when
	// asking for another team's
	visible, err := submissionService.GetSubmissions(0, 100, nil, &team2.Id, captain1)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Equal(t, sub1.Id, visible[0].Id)

	// judges and organizers see everything
	judge := makeUser(t, repository.RoleJudge)
	visible, err = submissionService.GetSubmissions(0, 100, nil, nil, judge)
	assert.NoError(t, err)
	assert.Len(t, visible, 2)

	// a teamless participant sees nothing
	teamless := makeUser(t, repository.RoleParticipant)
	visible, err = submissionService.GetSubmissions(0, 100, nil, nil, teamless)
	assert.NoError(t, err)
	assert.Empty(t, visible)

	// unknown ids are a 404 for everyone
	_, err = submissionService.GetSubmissionById(uuid.New(), judge)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	// the same scoping applies to single fetches
	_, err = submissionService.GetSubmissionById(sub2.Id, captain1)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	fetched, err := submissionService.GetSubmissionById(sub2.Id, judge)
	assert.NoError(t, err)
	assert.Equal(t, sub2.Id, fetched.Id)
}
