package scoring

import (
	"testing"

	"fll/repository"

	"github.com/stretchr/testify/assert"
)

// Two judges score team Robo1 on the same rubric: 3+4 and 2+4. The report has
// to show 7 and 6 inside the judge groups and 13 on the cross-judge rubric.
func robo1Rows() []*repository.ScoreRow {
	rows := []*repository.ScoreRow{
		row(1, "Ana", 1, "Proyecto", 1, "Investigación", 3, 3),
		row(1, "Ana", 1, "Proyecto", 2, "Solución", 4, 4),
		row(2, "Luis", 1, "Proyecto", 1, "Investigación", 2, 2),
		row(2, "Luis", 1, "Proyecto", 2, "Solución", 4, 4),
	}
	for _, r := range rows {
		r.TeamId = 10
		r.TeamName = "Robo1"
	}
	return rows
}

func TestBuildTeamReport(t *testing.T) {
	team := &repository.Team{Id: 10, Name: "Robo1"}
	report := BuildTeamReport(team, robo1Rows())

	assert.Equal(t, 13, report.Total)
	assert.Equal(t, 4, report.ScoreCount)

	assert.Len(t, report.Judges, 2)
	assert.Equal(t, "Ana", report.Judges[0].Name)
	assert.Equal(t, 7, report.Judges[0].Rubrics[0].Total)
	assert.Equal(t, "Luis", report.Judges[1].Name)
	assert.Equal(t, 6, report.Judges[1].Rubrics[0].Total)

	assert.Len(t, report.Rubrics, 1)
	assert.Equal(t, "Proyecto", report.Rubrics[0].Name)
	assert.Equal(t, 13, report.Rubrics[0].Total)
}

func TestBuildEventReportRanksAndIncludesScorelessTeams(t *testing.T) {
	event := &repository.Event{Id: 1, Name: "Regional 2026"}
	teams := []*repository.Team{
		{Id: 10, Name: "Robo1"},
		{Id: 11, Name: "Robo2"},
	}
	rows := robo1Rows()
	report := BuildEventReport(event, teams, rows)

	assert.Equal(t, "Regional 2026", report.EventName)
	assert.Len(t, report.Teams, 2)

	first := report.Teams[0]
	assert.Equal(t, "Robo1", first.TeamName)
	assert.Equal(t, 13, first.Total)
	assert.Equal(t, 1, first.Position)

	second := report.Teams[1]
	assert.Equal(t, "Robo2", second.TeamName)
	assert.Equal(t, 0, second.Total)
	assert.Equal(t, 2, second.Position)
	assert.Empty(t, second.Judges)
}

func TestBuildEventReportAspectBreakdown(t *testing.T) {
	event := &repository.Event{Id: 1, Name: "Regional 2026"}
	teams := []*repository.Team{{Id: 10, Name: "Robo1"}}
	report := BuildEventReport(event, teams, robo1Rows())

	judge := report.Teams[0].Judges[0]
	aspects := judge.Rubrics[0].Aspects
	assert.Len(t, aspects, 2)
	assert.Equal(t, "Investigación", aspects[0].Name)
	assert.Equal(t, 3, aspects[0].SelectedLevel)
	assert.Equal(t, 3, aspects[0].Total)
	assert.Equal(t, "Solución", aspects[1].Name)
	assert.Equal(t, 4, aspects[1].Total)

	// cross-judge rubric sums the aspect across both judges
	crossAspects := report.Teams[0].Rubrics[0].Aspects
	assert.Equal(t, 5, crossAspects[0].Total)
	assert.Equal(t, 8, crossAspects[1].Total)
}
