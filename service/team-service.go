package service

import (
	"errors"

	"kazrockets/app_error"
	"kazrockets/auth"
	"kazrockets/metrics"
	"kazrockets/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamService struct {
	teamRepository *repository.TeamRepository
	userRepository *repository.UserRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		teamRepository: repository.NewTeamRepository(db),
		userRepository: repository.NewUserRepository(db),
	}
}

type TeamUpdate struct {
	Name      *string
	CaptainId *uuid.UUID
}

func (s *TeamService) CreateTeam(name string, captain *repository.User) (*repository.Team, error) {
	if !auth.Can(captain.Role, auth.ActionTeamCreate, false) {
		return nil, app_error.BadRequest("Only participants can be team captains")
	}
	if captain.TeamId != nil {
		return nil, app_error.BadRequest("Captain is already in a team")
	}
	team := &repository.Team{
		Name:      name,
		CaptainId: captain.Id,
	}
	team, err := s.teamRepository.CreateWithCaptain(team, captain.Id)
	if err != nil {
		return nil, err
	}
	metrics.TeamsCreatedCounter.Inc()
	return team, nil
}

func (s *TeamService) GetTeamById(teamId uuid.UUID) (*repository.Team, error) {
	team, err := s.teamRepository.GetTeamById(teamId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("Team not found")
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) GetTeams(skip int, limit int) ([]*repository.Team, error) {
	return s.teamRepository.GetTeams(skip, limit)
}

func (s *TeamService) UpdateTeam(teamId uuid.UUID, update TeamUpdate, currentUser *repository.User) (*repository.Team, error) {
	team, err := s.GetTeamById(teamId)
	if err != nil {
		return nil, err
	}
	if !auth.Can(currentUser.Role, auth.ActionTeamUpdate, currentUser.Id == team.CaptainId) {
		return nil, app_error.Forbidden("Not enough permissions")
	}
	if update.Name != nil {
		team.Name = *update.Name
	}
	if update.CaptainId != nil {
		newCaptain, err := s.userRepository.GetUserById(*update.CaptainId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, app_error.BadRequest("New captain must be a participant and current team member")
			}
			return nil, err
		}
		if newCaptain.Role != repository.RoleParticipant ||
			newCaptain.TeamId == nil || *newCaptain.TeamId != teamId {
			return nil, app_error.BadRequest("New captain must be a participant and current team member")
		}
		team.CaptainId = *update.CaptainId
	}
	if _, err := s.teamRepository.Save(team); err != nil {
		return nil, err
	}
	return s.GetTeamById(teamId)
}

func (s *TeamService) JoinTeam(teamId uuid.UUID, user *repository.User) (*repository.Team, error) {
	if !auth.Can(user.Role, auth.ActionTeamJoin, false) {
		return nil, app_error.BadRequest("Only participants can join teams")
	}
	if user.TeamId != nil {
		return nil, app_error.BadRequest("User is already in a team")
	}
	team, err := s.GetTeamById(teamId)
	if err != nil {
		return nil, err
	}
	if err := s.teamRepository.SetUserTeam(user.Id, &team.Id); err != nil {
		return nil, err
	}
	return s.GetTeamById(teamId)
}

// LeaveTeam removes the user from their team. A captain may only leave a
// team they are the last member of; the empty team is then soft deleted.
func (s *TeamService) LeaveTeam(user *repository.User) error {
	if user.TeamId == nil {
		return app_error.BadRequest("User is not in a team")
	}
	team, err := s.GetTeamById(*user.TeamId)
	if err != nil {
		return err
	}
	if user.Id == team.CaptainId {
		others, err := s.teamRepository.CountOtherMembers(team.Id, user.Id)
		if err != nil {
			return err
		}
		if others > 0 {
			return app_error.BadRequest("Captain cannot leave team with other members. Transfer captaincy first.")
		}
		return s.teamRepository.RemoveSoleMember(team.Id, user.Id)
	}
	return s.teamRepository.SetUserTeam(user.Id, nil)
}

func (s *TeamService) DeleteTeam(teamId uuid.UUID, currentUser *repository.User) error {
	if !auth.Can(currentUser.Role, auth.ActionTeamDelete, false) {
		return app_error.Forbidden("Not enough permissions")
	}
	if _, err := s.GetTeamById(teamId); err != nil {
		return err
	}
	return s.teamRepository.DetachMembersAndDelete(teamId)
}
