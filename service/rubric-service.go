package service

import (
	"strings"

	"fll/app_error"
	"fll/repository"
	"fll/scoring"
	"fll/utils"

	"gorm.io/gorm"
)

type RubricService struct {
	rubricRepository *repository.RubricRepository
}

func NewRubricService(db *gorm.DB) *RubricService {
	return &RubricService{
		rubricRepository: repository.NewRubricRepository(db),
	}
}

func (e *RubricService) GetRubricsForEvent(eventId int) ([]*repository.Rubric, error) {
	return e.rubricRepository.GetRubricsForEvent(eventId)
}

func (e *RubricService) GetRubricById(rubricId int) (*repository.Rubric, error) {
	return e.rubricRepository.GetRubricById(rubricId)
}

func (e *RubricService) CreateRubric(rubric *repository.Rubric) (*repository.Rubric, error) {
	rubric.Active = true
	return e.rubricRepository.SaveRubric(rubric)
}

func (e *RubricService) UpdateRubric(rubricId int, rubric *repository.Rubric) (*repository.Rubric, error) {
	existing, err := e.rubricRepository.GetRubricById(rubricId)
	if err != nil {
		return nil, err
	}
	rubric.Id = existing.Id
	rubric.EventId = existing.EventId
	rubric.Active = existing.Active
	return e.rubricRepository.SaveRubric(rubric)
}

func (e *RubricService) DeleteRubric(rubricId int) error {
	return e.rubricRepository.SoftDeleteRubric(rubricId)
}

// GetAspectsForRubric lists active aspects with their levels. Aspects without
// any configured level get the default four-level scale so the scoring form
// is never empty.
func (e *RubricService) GetAspectsForRubric(rubricId int) ([]*repository.Aspect, error) {
	aspects, err := e.rubricRepository.GetAspectsForRubric(rubricId)
	if err != nil {
		return nil, err
	}
	for _, aspect := range aspects {
		if len(aspect.Levels) == 0 {
			aspect.Levels = scoring.DefaultLevels(aspect.Id)
		}
	}
	return aspects, nil
}

func (e *RubricService) GetAspectById(aspectId int) (*repository.Aspect, error) {
	return e.rubricRepository.GetAspectById(aspectId)
}

// CreateAspect appends the aspect at the end of the rubric's display order and
// installs its level set in the same call.
func (e *RubricService) CreateAspect(aspect *repository.Aspect, levels []*repository.Level) (*repository.Aspect, error) {
	if err := validateLevels(levels); err != nil {
		return nil, err
	}
	count, err := e.rubricRepository.CountAspectsForRubric(aspect.RubricId)
	if err != nil {
		return nil, err
	}
	aspect.Order = int(count) + 1
	aspect.Active = true
	aspect.MaxValue = maxPoints(levels)
	saved, err := e.rubricRepository.SaveAspect(aspect)
	if err != nil {
		return nil, err
	}
	if len(levels) > 0 {
		if err := e.rubricRepository.ReplaceLevels(saved.Id, levels, saved.MaxValue); err != nil {
			return nil, err
		}
	}
	saved.Levels = levels
	return saved, nil
}

func (e *RubricService) UpdateAspect(aspectId int, aspect *repository.Aspect) (*repository.Aspect, error) {
	existing, err := e.rubricRepository.GetAspectById(aspectId)
	if err != nil {
		return nil, err
	}
	existing.Name = aspect.Name
	existing.Description = aspect.Description
	if aspect.Order != 0 {
		existing.Order = aspect.Order
	}
	return e.rubricRepository.SaveAspect(existing)
}

func (e *RubricService) DeleteAspect(aspectId int) error {
	return e.rubricRepository.SoftDeleteAspect(aspectId)
}

// ReplaceAspectLevels swaps the aspect's whole scale. Existing scores keep
// the points resolved at submission time, so rescaling never rewrites history.
func (e *RubricService) ReplaceAspectLevels(aspectId int, levels []*repository.Level) ([]*repository.Level, error) {
	if err := validateLevels(levels); err != nil {
		return nil, err
	}
	if _, err := e.rubricRepository.GetAspectById(aspectId); err != nil {
		return nil, err
	}
	if err := e.rubricRepository.ReplaceLevels(aspectId, levels, maxPoints(levels)); err != nil {
		return nil, err
	}
	return e.rubricRepository.GetLevelsForAspect(aspectId)
}

func (e *RubricService) GetLevelsForAspect(aspectId int) ([]*repository.Level, error) {
	levels, err := e.rubricRepository.GetLevelsForAspect(aspectId)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return scoring.DefaultLevels(aspectId), nil
	}
	return levels, nil
}

func validateLevels(levels []*repository.Level) error {
	seen := make(map[int]bool)
	for _, level := range levels {
		if level.Number < 1 {
			return app_error.NewValidationError("level number %d must be positive", level.Number)
		}
		if strings.TrimSpace(level.Description) == "" {
			return app_error.NewValidationError("level %d has no description", level.Number)
		}
		if level.Points < 0 {
			return app_error.NewValidationError("level %d has negative points", level.Number)
		}
		if seen[level.Number] {
			return app_error.NewValidationError("level number %d appears twice", level.Number)
		}
		seen[level.Number] = true
	}
	return nil
}

func maxPoints(levels []*repository.Level) int {
	if len(levels) == 0 {
		return 0
	}
	return utils.Max(utils.Map(levels, func(level *repository.Level) int { return level.Points }))
}
