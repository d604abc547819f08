package scoring

import (
	"fmt"
	"sort"

	"fll/repository"
)

// The engine is pure: annotated score rows in, summaries out. Every surface
// (admin detail, team results, exports) goes through these functions, so the
// sum-at-every-depth model only exists in one place.
//
// Totals are sums, not averages. A team scored by three judges accumulates
// three judges' worth of points. That is the scoring model of the
// competition, do not "fix" it.

type JudgeGroup struct {
	JudgeId int
	// Reference name of the judge, or "Jurado {n}" by 1-based first-seen
	// position when the assignment has no name.
	Name    string
	Records []*repository.ScoreRow
}

type RubricGroup struct {
	RubricId int
	Name     string
	Total    int
	// Taken from the first record of the group. The value is denormalized
	// onto every aspect row of the same rubric, the first row wins.
	GeneralObservation string
	Records            []*repository.ScoreRow
}

type AspectGroup struct {
	AspectId      int
	Name          string
	SelectedLevel int
	Observation   string
	Total         int
	Records       []*repository.ScoreRow
}

// GroupByJudge groups records by judge id in first-seen order.
func GroupByJudge(records []*repository.ScoreRow) []*JudgeGroup {
	groups := make([]*JudgeGroup, 0)
	byId := make(map[int]*JudgeGroup)
	for _, record := range records {
		group, ok := byId[record.JudgeId]
		if !ok {
			group = &JudgeGroup{
				JudgeId: record.JudgeId,
				Name:    record.JudgeName,
			}
			if group.Name == "" {
				group.Name = fmt.Sprintf("Jurado %d", len(groups)+1)
			}
			byId[record.JudgeId] = group
			groups = append(groups, group)
		}
		group.Records = append(group.Records, record)
	}
	return groups
}

// GroupByRubric groups records by rubric id in first-seen order, summing
// points over the whole group.
func GroupByRubric(records []*repository.ScoreRow) []*RubricGroup {
	groups := make([]*RubricGroup, 0)
	byId := make(map[int]*RubricGroup)
	for _, record := range records {
		group, ok := byId[record.RubricId]
		if !ok {
			group = &RubricGroup{
				RubricId:           record.RubricId,
				Name:               record.RubricName,
				GeneralObservation: record.GeneralObservation,
			}
			if group.Name == "" {
				group.Name = "Rúbrica"
			}
			byId[record.RubricId] = group
			groups = append(groups, group)
		}
		group.Total += record.Points
		group.Records = append(group.Records, record)
	}
	return groups
}

// GroupByAspect groups records by aspect id in first-seen order. Level and
// observation come from the first record: callers pass one judge's records of
// one rubric, where each aspect has a single row.
func GroupByAspect(records []*repository.ScoreRow) []*AspectGroup {
	groups := make([]*AspectGroup, 0)
	byId := make(map[int]*AspectGroup)
	for _, record := range records {
		group, ok := byId[record.AspectId]
		if !ok {
			group = &AspectGroup{
				AspectId:      record.AspectId,
				Name:          record.AspectName,
				SelectedLevel: record.SelectedLevel,
				Observation:   record.AspectObservation,
			}
			byId[record.AspectId] = group
			groups = append(groups, group)
		}
		group.Total += record.Points
		group.Records = append(group.Records, record)
	}
	return groups
}

// TeamTotal sums the points of every record, across all judges and rubrics.
func TeamTotal(records []*repository.ScoreRow) int {
	total := 0
	for _, record := range records {
		total += record.Points
	}
	return total
}

type TeamStanding struct {
	TeamId     int
	TeamName   string
	Total      int
	ScoreCount int
	// 1-based position after ranking.
	Position int
}

// RankTeams orders standings by descending total. The sort is stable: teams
// with equal totals keep their input order.
func RankTeams(standings []*TeamStanding) []*TeamStanding {
	ranked := make([]*TeamStanding, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	for i, standing := range ranked {
		standing.Position = i + 1
	}
	return ranked
}

// RankLabel renders a 1-based position as its display marker: medals for the
// podium, "#n" below it.
func RankLabel(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return fmt.Sprintf("#%d", position)
}
