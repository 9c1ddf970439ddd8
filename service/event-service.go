package service

import (
	"errors"
	"time"

	"kazrockets/app_error"
	"kazrockets/auth"
	"kazrockets/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService struct {
	eventRepository *repository.EventRepository
	teamRepository  *repository.TeamRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository: repository.NewEventRepository(db),
		teamRepository:  repository.NewTeamRepository(db),
	}
}

type EventUpdate struct {
	Title     *string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *EventService) CreateEvent(title string, startDate time.Time, endDate time.Time, currentUser *repository.User) (*repository.Event, error) {
	if !auth.Can(currentUser.Role, auth.ActionEventManage, false) {
		return nil, app_error.Forbidden("Not enough permissions")
	}
	if !endDate.After(startDate) {
		return nil, app_error.BadRequest("End date must be after start date")
	}
	event := &repository.Event{
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
	}
	return s.eventRepository.Save(event)
}

func (s *EventService) GetEventById(eventId uuid.UUID) (*repository.Event, error) {
	event, err := s.eventRepository.GetEventById(eventId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("Event not found")
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEvents(skip int, limit int) ([]*repository.Event, error) {
	return s.eventRepository.GetEvents(skip, limit)
}

func (s *EventService) UpdateEvent(eventId uuid.UUID, update EventUpdate, currentUser *repository.User) (*repository.Event, error) {
	if !auth.Can(currentUser.Role, auth.ActionEventManage, false) {
		return nil, app_error.Forbidden("Not enough permissions")
	}
	event, err := s.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.StartDate != nil {
		event.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		event.EndDate = *update.EndDate
	}
	if !event.EndDate.After(event.StartDate) {
		return nil, app_error.BadRequest("End date must be after start date")
	}
	return s.eventRepository.Save(event)
}

func (s *EventService) DeleteEvent(eventId uuid.UUID, currentUser *repository.User) error {
	if !auth.Can(currentUser.Role, auth.ActionEventManage, false) {
		return app_error.Forbidden("Not enough permissions")
	}
	if _, err := s.GetEventById(eventId); err != nil {
		return err
	}
	return s.eventRepository.Delete(eventId)
}

func (s *EventService) DeclareWinner(eventId uuid.UUID, teamId uuid.UUID, currentUser *repository.User) (*repository.Event, error) {
	if !auth.Can(currentUser.Role, auth.ActionEventManage, false) {
		return nil, app_error.Forbidden("Not enough permissions")
	}
	event, err := s.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if _, err := s.teamRepository.GetTeamById(teamId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("Team not found")
		}
		return nil, err
	}
	event.WinnerTeamId = &teamId
	return s.eventRepository.Save(event)
}
