package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Event struct {
	Id          int       `gorm:"primaryKey"`
	Name        string    `gorm:"column:nombre;not null"`
	Description string    `gorm:"column:descripcion"`
	StartDate   time.Time `gorm:"column:fecha_inicio"`
	EndDate     time.Time `gorm:"column:fecha_fin"`
	Active      bool      `gorm:"column:activo;not null;default:true"`
	Teams       []*Team   `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Rubrics     []*Rubric `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
	Judges      []*Judge  `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

func (Event) TableName() string {
	return "eventos"
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(eventId int, preloads ...string) (*Event, error) {
	var event *Event
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

// GetActiveEvents returns active events, most recent first. The ordering is
// part of the display contract on every surface.
func (r *EventRepository) GetActiveEvents() ([]*Event, error) {
	events := make([]*Event, 0)
	result := r.DB.Where("activo = ?", true).Order("fecha_inicio DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) Save(event *Event) (*Event, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save event: %v", result.Error)
	}
	return event, nil
}

func (r *EventRepository) Update(eventId int, updateEvent *Event) (*Event, error) {
	event, err := r.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	if updateEvent.Name != "" {
		event.Name = updateEvent.Name
	}
	if updateEvent.Description != "" {
		event.Description = updateEvent.Description
	}
	if !updateEvent.StartDate.IsZero() {
		event.StartDate = updateEvent.StartDate
	}
	if !updateEvent.EndDate.IsZero() {
		event.EndDate = updateEvent.EndDate
	}
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

// SoftDelete clears the active flag. Events are never physically removed.
func (r *EventRepository) SoftDelete(eventId int) error {
	result := r.DB.Model(&Event{}).Where("id = ?", eventId).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
