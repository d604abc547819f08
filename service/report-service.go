package service

import (
	"fll/app_error"
	"fll/repository"
	"fll/scoring"
	"fll/utils"

	"gorm.io/gorm"
)

type ReportService struct {
	eventRepository *repository.EventRepository
	teamRepository  *repository.TeamRepository
	scoreRepository *repository.ScoreRepository
	teamService     *TeamService
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		eventRepository: repository.NewEventRepository(db),
		teamRepository:  repository.NewTeamRepository(db),
		scoreRepository: repository.NewScoreRepository(db),
		teamService:     NewTeamService(db),
	}
}

// GetEventReport aggregates the whole event into the ranked nested report.
// One round trip for the rows, the aggregation itself is in-memory.
func (e *ReportService) GetEventReport(eventId int) (*scoring.EventReport, error) {
	event, err := e.eventRepository.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	teams, err := e.teamRepository.GetTeamsForEvent(eventId)
	if err != nil {
		return nil, &app_error.StoreError{Err: err}
	}
	teamIds := utils.Map(teams, func(team *repository.Team) int { return team.Id })
	rows, err := e.scoreRepository.GetAnnotatedRowsForTeams(teamIds)
	if err != nil {
		return nil, &app_error.StoreError{Err: err}
	}
	return scoring.BuildEventReport(event, teams, rows), nil
}

// GetTeamReport aggregates one team for the admin detail view.
func (e *ReportService) GetTeamReport(teamId int) (*scoring.TeamReport, error) {
	team, err := e.teamRepository.GetTeamById(teamId)
	if err != nil {
		return nil, err
	}
	rows, err := e.scoreRepository.GetAnnotatedRowsForTeams([]int{team.Id})
	if err != nil {
		return nil, &app_error.StoreError{Err: err}
	}
	return scoring.BuildTeamReport(team, rows), nil
}

// GetTeamReportByCode is the team-facing results path: the 4-digit code is
// the only credential, and the report only ever covers the matched team.
func (e *ReportService) GetTeamReportByCode(code string) (*scoring.TeamReport, error) {
	team, err := e.teamService.CheckTeamCode(code)
	if err != nil {
		return nil, err
	}
	rows, err := e.scoreRepository.GetAnnotatedRowsForTeams([]int{team.Id})
	if err != nil {
		return nil, &app_error.StoreError{Err: err}
	}
	return scoring.BuildTeamReport(team, rows), nil
}
