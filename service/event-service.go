package service

import (
	"fll/repository"

	"gorm.io/gorm"
)

type EventService struct {
	eventRepository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository: repository.NewEventRepository(db),
	}
}

func (e *EventService) GetActiveEvents() ([]*repository.Event, error) {
	return e.eventRepository.GetActiveEvents()
}

func (e *EventService) GetEventById(eventId int, preloads ...string) (*repository.Event, error) {
	return e.eventRepository.GetEventById(eventId, preloads...)
}

func (e *EventService) CreateEvent(event *repository.Event) (*repository.Event, error) {
	event.Active = true
	return e.eventRepository.Save(event)
}

func (e *EventService) UpdateEvent(eventId int, event *repository.Event) (*repository.Event, error) {
	return e.eventRepository.Update(eventId, event)
}

func (e *EventService) DeleteEvent(eventId int) error {
	return e.eventRepository.SoftDelete(eventId)
}
