package auth

import "kazrockets/repository"

type Action string

const (
	ActionUserList   Action = "user:list"
	ActionUserView   Action = "user:view"
	ActionUserUpdate Action = "user:update"
	ActionUserDelete Action = "user:delete"

	ActionTeamCreate Action = "team:create"
	ActionTeamUpdate Action = "team:update"
	ActionTeamJoin   Action = "team:join"
	ActionTeamLeave  Action = "team:leave"
	ActionTeamDelete Action = "team:delete"

	ActionEventManage Action = "event:manage"

	ActionSubmissionCreate Action = "submission:create"

	ActionEvaluationCreate Action = "evaluation:create"
)

// Can decides whether a role may perform an action. owns reports whether
// the caller owns the resource in question (their own profile, a team they
// captain, their own team's submission).
func Can(role repository.Role, action Action, owns bool) bool {
	switch action {
	case ActionUserList, ActionUserDelete, ActionTeamDelete, ActionEventManage:
		return role == repository.RoleOrganizer
	case ActionUserView, ActionUserUpdate, ActionTeamUpdate:
		return owns || role == repository.RoleOrganizer
	case ActionTeamCreate, ActionTeamJoin, ActionTeamLeave:
		return role == repository.RoleParticipant
	case ActionSubmissionCreate:
		return role == repository.RoleParticipant && owns
	case ActionEvaluationCreate:
		return role == repository.RoleJudge
	}
	return false
}
