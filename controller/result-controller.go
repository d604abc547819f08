package controller

import (
	"strconv"
	"time"

	"fll/app_error"
	"fll/repository"
	"fll/scoring"
	"fll/service"
	"fll/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResultController struct {
	reportService *service.ReportService
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{
		reportService: service.NewReportService(db),
	}
}

func setupResultController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewResultController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/results", HandlerFunc: cache.CachePage(cacheStore, 30*time.Second, e.getEventResultsHandler()), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "GET", Path: "/teams/:team_id/results", HandlerFunc: e.getTeamResultsHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "POST", Path: "/results/team", HandlerFunc: e.getTeamResultsByCodeHandler()},
	}
	return routes
}

// @id GetEventResults
// @Description Builds the ranked score report of an event
// @Tags result
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} EventReportResponse
// @Router /events/{event_id}/results [get]
func (e *ResultController) getEventResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.reportService.GetEventReport(eventId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				app_error.Render(c, err)
			}
			return
		}
		c.JSON(200, toEventReportResponse(report))
	}
}

// @id GetTeamResults
// @Description Builds the score report of one team
// @Tags result
// @Produce json
// @Param team_id path int true "Team Id"
// @Success 200 {object} TeamReportResponse
// @Router /teams/{team_id}/results [get]
func (e *ResultController) getTeamResultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.reportService.GetTeamReport(teamId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				app_error.Render(c, err)
			}
			return
		}
		c.JSON(200, toTeamReportResponse(report))
	}
}

// @id GetTeamResultsByCode
// @Description Builds the score report of the team matching an access code
// @Tags result
// @Accept json
// @Produce json
// @Param access body TeamAccess true "Access code"
// @Success 200 {object} TeamReportResponse
// @Router /results/team [post]
func (e *ResultController) getTeamResultsByCodeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var access TeamAccess
		if err := c.BindJSON(&access); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.reportService.GetTeamReportByCode(access.Code)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		c.JSON(200, toTeamReportResponse(report))
	}
}

type EventReportResponse struct {
	EventId     int                  `json:"event_id"`
	EventName   string               `json:"event_name"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	GeneratedAt time.Time            `json:"generated_at"`
	Teams       []TeamReportResponse `json:"teams"`
}

type TeamReportResponse struct {
	TeamId     int                    `json:"team_id"`
	TeamName   string                 `json:"team_name"`
	Total      int                    `json:"total"`
	ScoreCount int                    `json:"score_count"`
	Position   int                    `json:"position"`
	RankLabel  string                 `json:"rank_label,omitempty"`
	Judges     []JudgeReportResponse  `json:"judges"`
	Rubrics    []RubricReportResponse `json:"rubrics"`
}

type JudgeReportResponse struct {
	JudgeId int                    `json:"judge_id"`
	Name    string                 `json:"name"`
	Rubrics []RubricReportResponse `json:"rubrics"`
}

type RubricReportResponse struct {
	RubricId           int                    `json:"rubric_id"`
	Name               string                 `json:"name"`
	Total              int                    `json:"total"`
	GeneralObservation string                 `json:"general_observation"`
	ScoreCount         int                    `json:"score_count"`
	Aspects            []AspectReportResponse `json:"aspects"`
}

type AspectReportResponse struct {
	AspectId      int    `json:"aspect_id"`
	Name          string `json:"name"`
	SelectedLevel int    `json:"selected_level"`
	Observation   string `json:"observation"`
	Total         int    `json:"total"`
	ScoreCount    int    `json:"score_count"`
}

func toEventReportResponse(report *scoring.EventReport) EventReportResponse {
	return EventReportResponse{
		EventId:     report.EventId,
		EventName:   report.EventName,
		Description: report.Description,
		StartDate:   report.StartDate,
		EndDate:     report.EndDate,
		GeneratedAt: report.GeneratedAt,
		Teams:       utils.Map(report.Teams, toTeamReportResponse),
	}
}

func toTeamReportResponse(report *scoring.TeamReport) TeamReportResponse {
	label := ""
	if report.Position > 0 {
		label = scoring.RankLabel(report.Position)
	}
	return TeamReportResponse{
		TeamId:     report.TeamId,
		TeamName:   report.TeamName,
		Total:      report.Total,
		ScoreCount: report.ScoreCount,
		Position:   report.Position,
		RankLabel:  label,
		Judges:     utils.Map(report.Judges, toJudgeReportResponse),
		Rubrics:    utils.Map(report.Rubrics, toRubricReportResponse),
	}
}

func toJudgeReportResponse(report *scoring.JudgeReport) JudgeReportResponse {
	return JudgeReportResponse{
		JudgeId: report.JudgeId,
		Name:    report.Name,
		Rubrics: utils.Map(report.Rubrics, toRubricReportResponse),
	}
}

func toRubricReportResponse(report *scoring.RubricReport) RubricReportResponse {
	return RubricReportResponse{
		RubricId:           report.RubricId,
		Name:               report.Name,
		Total:              report.Total,
		GeneralObservation: report.GeneralObservation,
		ScoreCount:         report.ScoreCount,
		Aspects:            utils.Map(report.Aspects, toAspectReportResponse),
	}
}

func toAspectReportResponse(report *scoring.AspectReport) AspectReportResponse {
	return AspectReportResponse{
		AspectId:      report.AspectId,
		Name:          report.Name,
		SelectedLevel: report.SelectedLevel,
		Observation:   report.Observation,
		Total:         report.Total,
		ScoreCount:    report.ScoreCount,
	}
}
