package scoring

import (
	"time"

	"fll/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var aggregationDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "score_aggregation_duration_s",
	Help: "Duration of the aggregation step when building an event report",
}, []string{"aggregation-step"})

// EventReport is the nested structure every presentation surface walks: the
// admin detail view, the team results view and the exporters all consume this
// and render it, never re-aggregating on their own.
type EventReport struct {
	EventId     int
	EventName   string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	GeneratedAt time.Time
	Teams       []*TeamReport
}

type TeamReport struct {
	TeamId     int
	TeamName   string
	Total      int
	ScoreCount int
	Position   int
	// Per-judge breakdown, each judge's records grouped by rubric.
	Judges []*JudgeReport
	// Cross-judge rubric totals, the "suma" spanning all judge subgroups.
	Rubrics []*RubricReport
}

type JudgeReport struct {
	JudgeId int
	Name    string
	Rubrics []*RubricReport
}

type RubricReport struct {
	RubricId           int
	Name               string
	Total              int
	GeneralObservation string
	ScoreCount         int
	Aspects            []*AspectReport
}

type AspectReport struct {
	AspectId      int
	Name          string
	SelectedLevel int
	Observation   string
	Total         int
	ScoreCount    int
}

// BuildEventReport aggregates every score row of the event's teams into the
// ranked nested report. Teams arrive ordered (by name) and that order is the
// tie-break of the ranking. Teams without scores are included with zero
// totals so the report lists the full field.
func BuildEventReport(event *repository.Event, teams []*repository.Team, rows []*repository.ScoreRow) *EventReport {
	t := time.Now()

	rowsByTeam := make(map[int][]*repository.ScoreRow)
	for _, row := range rows {
		rowsByTeam[row.TeamId] = append(rowsByTeam[row.TeamId], row)
	}

	standings := make([]*TeamStanding, 0, len(teams))
	for _, team := range teams {
		teamRows := rowsByTeam[team.Id]
		standings = append(standings, &TeamStanding{
			TeamId:     team.Id,
			TeamName:   team.Name,
			Total:      TeamTotal(teamRows),
			ScoreCount: len(teamRows),
		})
	}
	ranked := RankTeams(standings)

	report := &EventReport{
		EventId:     event.Id,
		EventName:   event.Name,
		Description: event.Description,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		GeneratedAt: time.Now(),
		Teams:       make([]*TeamReport, 0, len(ranked)),
	}
	for _, standing := range ranked {
		report.Teams = append(report.Teams, buildTeamReport(standing, rowsByTeam[standing.TeamId]))
	}

	aggregationDuration.WithLabelValues("event-report").Set(time.Since(t).Seconds())
	return report
}

// BuildTeamReport aggregates one team's rows outside an event ranking, for
// the single-team surfaces (admin team detail, code-authenticated results).
func BuildTeamReport(team *repository.Team, rows []*repository.ScoreRow) *TeamReport {
	standing := &TeamStanding{
		TeamId:     team.Id,
		TeamName:   team.Name,
		Total:      TeamTotal(rows),
		ScoreCount: len(rows),
	}
	return buildTeamReport(standing, rows)
}

func buildTeamReport(standing *TeamStanding, rows []*repository.ScoreRow) *TeamReport {
	team := &TeamReport{
		TeamId:     standing.TeamId,
		TeamName:   standing.TeamName,
		Total:      standing.Total,
		ScoreCount: standing.ScoreCount,
		Position:   standing.Position,
		Judges:     make([]*JudgeReport, 0),
		Rubrics:    make([]*RubricReport, 0),
	}
	for _, judgeGroup := range GroupByJudge(rows) {
		judge := &JudgeReport{
			JudgeId: judgeGroup.JudgeId,
			Name:    judgeGroup.Name,
			Rubrics: buildRubricReports(judgeGroup.Records),
		}
		team.Judges = append(team.Judges, judge)
	}
	team.Rubrics = buildRubricReports(rows)
	return team
}

func buildRubricReports(rows []*repository.ScoreRow) []*RubricReport {
	reports := make([]*RubricReport, 0)
	for _, rubricGroup := range GroupByRubric(rows) {
		rubric := &RubricReport{
			RubricId:           rubricGroup.RubricId,
			Name:               rubricGroup.Name,
			Total:              rubricGroup.Total,
			GeneralObservation: rubricGroup.GeneralObservation,
			ScoreCount:         len(rubricGroup.Records),
			Aspects:            make([]*AspectReport, 0),
		}
		for _, aspectGroup := range GroupByAspect(rubricGroup.Records) {
			rubric.Aspects = append(rubric.Aspects, &AspectReport{
				AspectId:      aspectGroup.AspectId,
				Name:          aspectGroup.Name,
				SelectedLevel: aspectGroup.SelectedLevel,
				Observation:   aspectGroup.Observation,
				Total:         aspectGroup.Total,
				ScoreCount:    len(aspectGroup.Records),
			})
		}
		reports = append(reports, rubric)
	}
	return reports
}
