package scoring

import (
	"testing"

	"fll/repository"

	"github.com/stretchr/testify/assert"
)

func row(judgeId int, judgeName string, rubricId int, rubricName string, aspectId int, aspectName string, level int, points int) *repository.ScoreRow {
	return &repository.ScoreRow{
		JudgeId:       judgeId,
		JudgeName:     judgeName,
		RubricId:      rubricId,
		RubricName:    rubricName,
		AspectId:      aspectId,
		AspectName:    aspectName,
		SelectedLevel: level,
		Points:        points,
	}
}

func TestGroupByJudgeKeepsFirstSeenOrder(t *testing.T) {
	rows := []*repository.ScoreRow{
		row(7, "Ana", 1, "Proyecto", 1, "Investigación", 3, 3),
		row(2, "Luis", 1, "Proyecto", 1, "Investigación", 2, 2),
		row(7, "Ana", 1, "Proyecto", 2, "Solución", 4, 4),
	}
	groups := GroupByJudge(rows)
	assert.Len(t, groups, 2)
	assert.Equal(t, 7, groups[0].JudgeId)
	assert.Equal(t, "Ana", groups[0].Name)
	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, 2, groups[1].JudgeId)
	assert.Len(t, groups[1].Records, 1)
}

func TestGroupByJudgeFallbackNames(t *testing.T) {
	rows := []*repository.ScoreRow{
		row(5, "", 1, "Proyecto", 1, "Investigación", 3, 3),
		row(9, "", 1, "Proyecto", 1, "Investigación", 2, 2),
		row(5, "", 1, "Proyecto", 2, "Solución", 4, 4),
	}
	groups := GroupByJudge(rows)
	assert.Equal(t, "Jurado 1", groups[0].Name)
	assert.Equal(t, "Jurado 2", groups[1].Name)
}

func TestGroupByRubricSumsPoints(t *testing.T) {
	rows := []*repository.ScoreRow{
		row(1, "Ana", 1, "Proyecto", 1, "Investigación", 3, 3),
		row(1, "Ana", 1, "Proyecto", 2, "Solución", 4, 4),
		row(1, "Ana", 2, "Diseño", 3, "Mecánica", 2, 2),
	}
	groups := GroupByRubric(rows)
	assert.Len(t, groups, 2)
	assert.Equal(t, "Proyecto", groups[0].Name)
	assert.Equal(t, 7, groups[0].Total)
	assert.Equal(t, "Diseño", groups[1].Name)
	assert.Equal(t, 2, groups[1].Total)
}

func TestGroupByRubricFirstRowGeneralObservation(t *testing.T) {
	first := row(1, "Ana", 1, "Proyecto", 1, "Investigación", 3, 3)
	first.GeneralObservation = "gran trabajo"
	second := row(1, "Ana", 1, "Proyecto", 2, "Solución", 4, 4)
	second.GeneralObservation = "ignored"
	groups := GroupByRubric([]*repository.ScoreRow{first, second})
	assert.Equal(t, "gran trabajo", groups[0].GeneralObservation)
}

func TestGroupByRubricMissingNameFallback(t *testing.T) {
	rows := []*repository.ScoreRow{row(1, "Ana", 1, "", 1, "Investigación", 3, 3)}
	groups := GroupByRubric(rows)
	assert.Equal(t, "Rúbrica", groups[0].Name)
}

func TestGroupByAspectSumsAcrossJudges(t *testing.T) {
	rows := []*repository.ScoreRow{
		row(1, "Ana", 1, "Proyecto", 1, "Investigación", 3, 3),
		row(2, "Luis", 1, "Proyecto", 1, "Investigación", 2, 2),
	}
	groups := GroupByAspect(rows)
	assert.Len(t, groups, 1)
	assert.Equal(t, 5, groups[0].Total)
	assert.Equal(t, 3, groups[0].SelectedLevel)
}

func TestTeamTotalIsPlainSum(t *testing.T) {
	rows := []*repository.ScoreRow{
		row(1, "Ana", 1, "Proyecto", 1, "Investigación", 3, 3),
		row(1, "Ana", 1, "Proyecto", 2, "Solución", 4, 4),
		row(2, "Luis", 1, "Proyecto", 1, "Investigación", 2, 2),
		row(2, "Luis", 1, "Proyecto", 2, "Solución", 4, 4),
	}
	assert.Equal(t, 13, TeamTotal(rows))
}

func TestRankTeamsStableOnTies(t *testing.T) {
	standings := []*TeamStanding{
		{TeamId: 1, TeamName: "Alfa", Total: 10},
		{TeamId: 2, TeamName: "Beta", Total: 30},
		{TeamId: 3, TeamName: "Gamma", Total: 30},
		{TeamId: 4, TeamName: "Delta", Total: 5},
	}
	ranked := RankTeams(standings)
	assert.Equal(t, []int{2, 3, 1, 4}, []int{ranked[0].TeamId, ranked[1].TeamId, ranked[2].TeamId, ranked[3].TeamId})
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, 2, ranked[1].Position)
	assert.Equal(t, 3, ranked[2].Position)
	assert.Equal(t, 4, ranked[3].Position)
	// input order untouched
	assert.Equal(t, 1, standings[0].TeamId)
}

func TestRankLabel(t *testing.T) {
	assert.Equal(t, "🥇", RankLabel(1))
	assert.Equal(t, "🥈", RankLabel(2))
	assert.Equal(t, "🥉", RankLabel(3))
	assert.Equal(t, "#4", RankLabel(4))
	assert.Equal(t, "#17", RankLabel(17))
}

func TestDefaultLevels(t *testing.T) {
	levels := DefaultLevels(42)
	assert.Len(t, levels, 4)
	assert.Equal(t, "Básico", levels[0].Description)
	assert.Equal(t, "Superado", levels[3].Description)
	for i, level := range levels {
		assert.Equal(t, i+1, level.Number)
		assert.Equal(t, i+1, level.Points)
		assert.Equal(t, 42, level.AspectId)
	}
}

func TestResolvePointsConfiguredLevels(t *testing.T) {
	levels := []*repository.Level{
		{Number: 1, Points: 0},
		{Number: 2, Points: 5},
		{Number: 3, Points: 10},
	}
	points, err := ResolvePoints(1, levels, 2)
	assert.NoError(t, err)
	assert.Equal(t, 5, points)
}

func TestResolvePointsDefaultScale(t *testing.T) {
	points, err := ResolvePoints(1, nil, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, points)
}

func TestResolvePointsUnknownLevel(t *testing.T) {
	_, err := ResolvePoints(1, nil, 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no level 5")
}
