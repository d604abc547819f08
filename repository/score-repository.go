package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Score is one judge's selection for one aspect of one rubric, for one team.
// Points are resolved from the selected level at recording time and never
// recomputed afterwards, so later rubric edits do not rewrite history.
type Score struct {
	Id                 int    `gorm:"primaryKey"`
	JudgeId            int    `gorm:"column:jurado_id;not null;uniqueIndex:calificaciones_unica"`
	TeamId             int    `gorm:"column:equipo_id;not null;uniqueIndex:calificaciones_unica"`
	RubricId           int    `gorm:"column:rubrica_id;not null;uniqueIndex:calificaciones_unica"`
	AspectId           int    `gorm:"column:aspecto_id;not null;uniqueIndex:calificaciones_unica"`
	SelectedLevel      int    `gorm:"column:nivel_seleccionado;not null"`
	Points             int    `gorm:"column:puntuacion;not null"`
	AspectObservation  string `gorm:"column:observacion_aspecto"`
	GeneralObservation string `gorm:"column:observacion_general"`
}

func (Score) TableName() string {
	return "calificaciones"
}

// ScoreRow is a score annotated with the display names the aggregation engine
// and the presentation surfaces need. It is flattened out of the store in one
// query so the engine itself never touches the database.
type ScoreRow struct {
	Id                 int
	JudgeId            int
	JudgeName          string
	TeamId             int
	TeamName           string
	RubricId           int
	RubricName         string
	AspectId           int
	AspectName         string
	AspectOrder        int
	SelectedLevel      int
	Points             int
	AspectObservation  string
	GeneralObservation string
}

var scoreQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

// UpsertScores writes a judge's batch atomically keyed on the
// (jurado, equipo, rubrica, aspecto) tuple. Re-scoring updates the existing
// row instead of inserting a duplicate, so a double submit cannot race its
// own existence check.
func (r *ScoreRepository) UpsertScores(scores []*Score) error {
	if len(scores) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "jurado_id"},
			{Name: "equipo_id"},
			{Name: "rubrica_id"},
			{Name: "aspecto_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"nivel_seleccionado",
			"puntuacion",
			"observacion_aspecto",
			"observacion_general",
		}),
	}).Create(scores).Error
}

// GetScoresForJudge returns the judge's existing rows for one team and rubric,
// used to prefill the scoring form.
func (r *ScoreRepository) GetScoresForJudge(judgeId int, teamId int, rubricId int) ([]*Score, error) {
	scores := make([]*Score, 0)
	result := r.DB.Where("jurado_id = ? AND equipo_id = ? AND rubrica_id = ?", judgeId, teamId, rubricId).Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

const annotatedRowsQuery = `
	SELECT
		calificaciones.id,
		calificaciones.jurado_id AS judge_id,
		COALESCE(jurados.nombre_referencia, '') AS judge_name,
		calificaciones.equipo_id AS team_id,
		COALESCE(equipos.nombre, '') AS team_name,
		calificaciones.rubrica_id AS rubric_id,
		COALESCE(rubricas.nombre, '') AS rubric_name,
		calificaciones.aspecto_id AS aspect_id,
		COALESCE(aspectos_rubrica.nombre, '') AS aspect_name,
		COALESCE(aspectos_rubrica.orden, 0) AS aspect_order,
		calificaciones.nivel_seleccionado AS selected_level,
		calificaciones.puntuacion AS points,
		COALESCE(calificaciones.observacion_aspecto, '') AS aspect_observation,
		COALESCE(calificaciones.observacion_general, '') AS general_observation
	FROM calificaciones
	LEFT JOIN jurados ON jurados.id = calificaciones.jurado_id
	JOIN equipos ON equipos.id = calificaciones.equipo_id
	LEFT JOIN rubricas ON rubricas.id = calificaciones.rubrica_id
	LEFT JOIN aspectos_rubrica ON aspectos_rubrica.id = calificaciones.aspecto_id
	WHERE calificaciones.equipo_id IN @teamIds
	ORDER BY calificaciones.jurado_id, calificaciones.rubrica_id, aspectos_rubrica.orden, calificaciones.id
`

// GetAnnotatedRowsForTeams flattens every score of the given teams with its
// judge, team, rubric and aspect names. Missing references come back as empty
// strings, the engine substitutes its placeholders.
func (r *ScoreRepository) GetAnnotatedRowsForTeams(teamIds []int) ([]*ScoreRow, error) {
	if len(teamIds) == 0 {
		return []*ScoreRow{}, nil
	}
	t := time.Now()
	rows := make([]*ScoreRow, 0)
	err := r.DB.Raw(annotatedRowsQuery, map[string]interface{}{"teamIds": teamIds}).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	scoreQueryDuration.WithLabelValues("annotatedRowsForTeams").Observe(time.Since(t).Seconds())
	return rows, nil
}
