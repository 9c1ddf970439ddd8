package auth

import (
	"testing"

	"kazrockets/repository"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role     repository.Role
		action   Action
		owns     bool
		expected bool
	}{
		{repository.RoleOrganizer, ActionUserList, false, true},
		{repository.RoleParticipant, ActionUserList, false, false},
		{repository.RoleJudge, ActionUserList, false, false},

		{repository.RoleParticipant, ActionUserView, true, true},
		{repository.RoleParticipant, ActionUserView, false, false},
		{repository.RoleOrganizer, ActionUserView, false, true},

		{repository.RoleParticipant, ActionUserUpdate, true, true},
		{repository.RoleParticipant, ActionUserUpdate, false, false},
		{repository.RoleOrganizer, ActionUserUpdate, false, true},
		{repository.RoleJudge, ActionUserUpdate, false, false},

		{repository.RoleOrganizer, ActionUserDelete, false, true},
		{repository.RoleParticipant, ActionUserDelete, true, false},

		{repository.RoleParticipant, ActionTeamCreate, false, true},
		{repository.RoleOrganizer, ActionTeamCreate, false, false},
		{repository.RoleJudge, ActionTeamCreate, false, false},

		{repository.RoleParticipant, ActionTeamUpdate, true, true},
		{repository.RoleParticipant, ActionTeamUpdate, false, false},
		{repository.RoleOrganizer, ActionTeamUpdate, false, true},

		{repository.RoleParticipant, ActionTeamJoin, false, true},
		{repository.RoleJudge, ActionTeamJoin, false, false},
		{repository.RoleParticipant, ActionTeamLeave, false, true},

		{repository.RoleOrganizer, ActionTeamDelete, false, true},
		{repository.RoleParticipant, ActionTeamDelete, true, false},

		{repository.RoleOrganizer, ActionEventManage, false, true},
		{repository.RoleJudge, ActionEventManage, false, false},

		{repository.RoleParticipant, ActionSubmissionCreate, true, true},
		{repository.RoleParticipant, ActionSubmissionCreate, false, false},
		{repository.RoleOrganizer, ActionSubmissionCreate, true, false},
		{repository.RoleJudge, ActionSubmissionCreate, true, false},

		{repository.RoleJudge, ActionEvaluationCreate, false, true},
		{repository.RoleParticipant, ActionEvaluationCreate, false, false},
		{repository.RoleOrganizer, ActionEvaluationCreate, false, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Can(test.role, test.action, test.owns),
			"role=%s action=%s owns=%v", test.role, test.action, test.owns)
	}
}

func TestCanUnknownAction(t *testing.T) {
	assert.False(t, Can(repository.RoleOrganizer, Action("nonsense"), true))
}
