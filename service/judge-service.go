package service

import (
	"errors"

	"fll/app_error"
	"fll/repository"

	"gorm.io/gorm"
)

type JudgeService struct {
	judgeRepository *repository.JudgeRepository
}

func NewJudgeService(db *gorm.DB) *JudgeService {
	return &JudgeService{
		judgeRepository: repository.NewJudgeRepository(db),
	}
}

func (e *JudgeService) GetJudgesForEvent(eventId int) ([]*repository.Judge, error) {
	return e.judgeRepository.GetJudgesForEvent(eventId)
}

func (e *JudgeService) GetJudgeById(judgeId int) (*repository.Judge, error) {
	return e.judgeRepository.GetJudgeById(judgeId)
}

// GetJudgeForUser resolves the judge row bound to a user within one event.
// Judges only ever act through this binding, never by raw judge id from the
// client.
func (e *JudgeService) GetJudgeForUser(eventId int, userId int) (*repository.Judge, error) {
	return e.judgeRepository.GetJudgeForUser(eventId, userId)
}

func (e *JudgeService) GetEventsForUser(userId int) ([]*repository.Event, error) {
	return e.judgeRepository.GetEventsForUser(userId)
}

func (e *JudgeService) CreateJudge(judge *repository.Judge) (*repository.Judge, error) {
	judge.Active = true
	saved, err := e.judgeRepository.Save(judge)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, app_error.NewValidationError("user %d is already a judge in event %d", judge.UserId, judge.EventId)
		}
		return nil, err
	}
	return saved, nil
}

func (e *JudgeService) UpdateJudge(judgeId int, judge *repository.Judge) (*repository.Judge, error) {
	return e.judgeRepository.Update(judgeId, judge)
}

func (e *JudgeService) DeleteJudge(judgeId int) error {
	return e.judgeRepository.SoftDelete(judgeId)
}
