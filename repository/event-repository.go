package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title        string     `gorm:"not null"`
	StartDate    time.Time  `gorm:"not null"`
	EndDate      time.Time  `gorm:"not null"`
	WinnerTeamId *uuid.UUID `gorm:"type:uuid;null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	WinnerTeam *Team `gorm:"foreignKey:WinnerTeamId;constraint:OnDelete:SET NULL"`
}

func (Event) TableName() string {
	return "competitive_events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId uuid.UUID) (*Event, error) {
	var event Event
	result := r.DB.First(&event, "id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *EventRepository) GetEvents(skip int, limit int) ([]*Event, error) {
	events := make([]*Event, 0)
	result := r.DB.Offset(skip).Limit(limit).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) Save(event *Event) (*Event, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) Delete(eventId uuid.UUID) error {
	return r.DB.Delete(&Event{}, "id = ?", eventId).Error
}
