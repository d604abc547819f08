package repository

import (
	"fmt"
	"log"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600)
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			return err
		}
		return db.AutoMigrate(
			&Event{},
			&Team{},
			&User{},
			&Judge{},
			&Rubric{},
			&Aspect{},
			&Level{},
			&Score{},
		)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM calificaciones")
	db.Exec("DELETE FROM niveles_aspecto")
	db.Exec("DELETE FROM aspectos_rubrica")
	db.Exec("DELETE FROM rubricas")
	db.Exec("DELETE FROM jurados")
	db.Exec("DELETE FROM equipos")
	db.Exec("DELETE FROM usuarios")
	db.Exec("DELETE FROM eventos")
}

func SetUp() *Event {
	event := &Event{
		Name:   "Regional 2026",
		Active: true,
		Teams: []*Team{
			{Name: "Robo1", Code: "1234", Active: true},
			{Name: "Robo2", Code: "5678", Active: true},
		},
		Rubrics: []*Rubric{
			{Name: "Proyecto", Active: true, Aspects: []*Aspect{
				{Name: "Investigación", Order: 1, Active: true, Levels: []*Level{
					{Number: 1, Description: "Básico", Points: 1, Active: true},
					{Number: 2, Description: "En Desarrollo", Points: 2, Active: true},
					{Number: 3, Description: "Cumplido", Points: 3, Active: true},
					{Number: 4, Description: "Superado", Points: 4, Active: true},
				}},
				{Name: "Solución", Order: 2, Active: true},
			}},
		},
		Judges: []*Judge{
			{ReferenceName: "Ana", UserId: 1, Active: true},
		},
	}
	err := db.Create(event).Error
	if err != nil {
		log.Fatalf("Error creating event: %v", err)
	}
	return event
}

func TestReplaceLevelsSwapsWholeSet(t *testing.T) {
	event := SetUp()
	defer TearDown()
	repo := NewRubricRepository(db)

	aspect := event.Rubrics[0].Aspects[0]
	oldLevels, err := repo.GetLevelsForAspect(aspect.Id)
	assert.NoError(t, err)
	assert.Len(t, oldLevels, 4)
	oldIds := make(map[int]bool)
	for _, level := range oldLevels {
		oldIds[level.Id] = true
	}

	newLevels := []*Level{
		{Number: 1, Description: "Inicial", Points: 0, Active: true},
		{Number: 2, Description: "Competente", Points: 5, Active: true},
		{Number: 3, Description: "Ejemplar", Points: 10, Active: true},
	}
	err = repo.ReplaceLevels(aspect.Id, newLevels, 10)
	assert.NoError(t, err)

	levels, err := repo.GetLevelsForAspect(aspect.Id)
	assert.NoError(t, err)
	assert.Len(t, levels, 3)
	for _, level := range levels {
		assert.False(t, oldIds[level.Id])
	}
	assert.Equal(t, "Inicial", levels[0].Description)
	assert.Equal(t, 10, levels[2].Points)

	updated, err := repo.GetAspectById(aspect.Id)
	assert.NoError(t, err)
	assert.Equal(t, 10, updated.MaxValue)
}

func TestUpsertScoresNeverDuplicates(t *testing.T) {
	event := SetUp()
	defer TearDown()
	repo := NewScoreRepository(db)

	judge := event.Judges[0]
	team := event.Teams[0]
	rubric := event.Rubrics[0]
	aspect := rubric.Aspects[0]

	first := []*Score{{
		JudgeId:            judge.Id,
		TeamId:             team.Id,
		RubricId:           rubric.Id,
		AspectId:           aspect.Id,
		SelectedLevel:      2,
		Points:             2,
		AspectObservation:  "primer intento",
		GeneralObservation: "bien",
	}}
	assert.NoError(t, repo.UpsertScores(first))

	second := []*Score{{
		JudgeId:            judge.Id,
		TeamId:             team.Id,
		RubricId:           rubric.Id,
		AspectId:           aspect.Id,
		SelectedLevel:      4,
		Points:             4,
		AspectObservation:  "corregido",
		GeneralObservation: "excelente",
	}}
	assert.NoError(t, repo.UpsertScores(second))

	scores, err := repo.GetScoresForJudge(judge.Id, team.Id, rubric.Id)
	assert.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Equal(t, 4, scores[0].SelectedLevel)
	assert.Equal(t, 4, scores[0].Points)
	assert.Equal(t, "corregido", scores[0].AspectObservation)
	assert.Equal(t, "excelente", scores[0].GeneralObservation)
}

func TestGetActiveTeamsByCode(t *testing.T) {
	SetUp()
	defer TearDown()
	repo := NewTeamRepository(db)

	teams, err := repo.GetActiveTeamsByCode("1234")
	assert.NoError(t, err)
	assert.Len(t, teams, 1)
	assert.Equal(t, "Robo1", teams[0].Name)

	teams, err = repo.GetActiveTeamsByCode("0000")
	assert.NoError(t, err)
	assert.Len(t, teams, 0)

	// a colliding code in another event surfaces both rows
	other := &Event{Name: "Nacional 2026", Active: true, Teams: []*Team{
		{Name: "Robo3", Code: "1234", Active: true},
	}}
	assert.NoError(t, db.Create(other).Error)
	teams, err = repo.GetActiveTeamsByCode("1234")
	assert.NoError(t, err)
	assert.Len(t, teams, 2)

	// deactivated teams no longer match
	assert.NoError(t, NewTeamRepository(db).SoftDelete(other.Teams[0].Id))
	teams, err = repo.GetActiveTeamsByCode("1234")
	assert.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestGetAnnotatedRowsForTeams(t *testing.T) {
	event := SetUp()
	defer TearDown()
	scoreRepo := NewScoreRepository(db)

	judge := event.Judges[0]
	team := event.Teams[0]
	rubric := event.Rubrics[0]

	scores := []*Score{
		{
			JudgeId:       judge.Id,
			TeamId:        team.Id,
			RubricId:      rubric.Id,
			AspectId:      rubric.Aspects[1].Id,
			SelectedLevel: 4,
			Points:        4,
		},
		{
			JudgeId:            judge.Id,
			TeamId:             team.Id,
			RubricId:           rubric.Id,
			AspectId:           rubric.Aspects[0].Id,
			SelectedLevel:      3,
			Points:             3,
			GeneralObservation: "sólido",
		},
	}
	assert.NoError(t, scoreRepo.UpsertScores(scores))

	rows, err := scoreRepo.GetAnnotatedRowsForTeams([]int{team.Id})
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// ordered by aspect display order, not insertion order
	assert.Equal(t, "Investigación", rows[0].AspectName)
	assert.Equal(t, "Solución", rows[1].AspectName)
	assert.Equal(t, "Ana", rows[0].JudgeName)
	assert.Equal(t, "Robo1", rows[0].TeamName)
	assert.Equal(t, "Proyecto", rows[0].RubricName)
	assert.Equal(t, 3, rows[0].Points)

	rows, err = scoreRepo.GetAnnotatedRowsForTeams([]int{})
	assert.NoError(t, err)
	assert.Len(t, rows, 0)
}
