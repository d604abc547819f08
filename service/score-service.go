package service

import (
	"fll/app_error"
	"fll/metrics"
	"fll/repository"
	"fll/scoring"

	"gorm.io/gorm"
)

// AspectSelection is one aspect's pick inside a rubric submission.
type AspectSelection struct {
	AspectId      int
	SelectedLevel int
	Observation   string
}

type ScoreService struct {
	scoreRepository  *repository.ScoreRepository
	rubricRepository *repository.RubricRepository
	judgeRepository  *repository.JudgeRepository
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{
		scoreRepository:  repository.NewScoreRepository(db),
		rubricRepository: repository.NewRubricRepository(db),
		judgeRepository:  repository.NewJudgeRepository(db),
	}
}

// SubmitScores records one judge's full pass over a rubric for one team.
// Points are resolved from the aspect's current levels here, at submission
// time, and stored on the row. The general observation is denormalized onto
// every row of the batch, readers take it from the first row.
func (e *ScoreService) SubmitScores(judgeId int, teamId int, rubricId int, generalObservation string, selections []*AspectSelection) error {
	if len(selections) == 0 {
		return app_error.NewValidationError("submission contains no aspect selections")
	}
	aspects, err := e.rubricRepository.GetAspectsForRubric(rubricId)
	if err != nil {
		return &app_error.StoreError{Err: err}
	}
	levelsByAspect := make(map[int][]*repository.Level, len(aspects))
	for _, aspect := range aspects {
		levelsByAspect[aspect.Id] = aspect.Levels
	}

	scores := make([]*repository.Score, 0, len(selections))
	for _, selection := range selections {
		levels, ok := levelsByAspect[selection.AspectId]
		if !ok {
			return app_error.NewValidationError("aspect %d does not belong to rubric %d", selection.AspectId, rubricId)
		}
		points, err := scoring.ResolvePoints(selection.AspectId, levels, selection.SelectedLevel)
		if err != nil {
			return err
		}
		scores = append(scores, &repository.Score{
			JudgeId:            judgeId,
			TeamId:             teamId,
			RubricId:           rubricId,
			AspectId:           selection.AspectId,
			SelectedLevel:      selection.SelectedLevel,
			Points:             points,
			AspectObservation:  selection.Observation,
			GeneralObservation: generalObservation,
		})
	}
	if err := e.scoreRepository.UpsertScores(scores); err != nil {
		return &app_error.StoreError{Err: err}
	}
	metrics.ScoreSubmissionCounter.Inc()
	metrics.ScoreRowsWrittenCounter.Add(float64(len(scores)))
	return nil
}

// GetScoresForJudge returns the judge's existing rows for one team and rubric
// so the scoring form opens prefilled instead of blank.
func (e *ScoreService) GetScoresForJudge(judgeId int, teamId int, rubricId int) ([]*repository.Score, error) {
	return e.scoreRepository.GetScoresForJudge(judgeId, teamId, rubricId)
}
