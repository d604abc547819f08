package controller

import (
	"strconv"

	"fll/app_error"
	"fll/repository"
	"fll/service"
	"fll/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreController struct {
	scoreService *service.ScoreService
	judgeService *service.JudgeService
	userService  *service.UserService
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		scoreService: service.NewScoreService(db),
		judgeService: service.NewJudgeService(db),
		userService:  service.NewUserService(db),
	}
}

func setupScoreController(db *gorm.DB) []RouteInfo {
	e := NewScoreController(db)
	basePath := "/events/:event_id/teams/:team_id/rubrics/:rubric_id/scores"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getScoresHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.submitScoresHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// currentJudge maps the authenticated user to their judge assignment in the
// event. Judges never pass a judge id themselves.
func (e *ScoreController) currentJudge(c *gin.Context, eventId int) (*repository.Judge, bool) {
	user, err := e.userService.GetUserFromAuthCookie(c)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthenticated"})
		return nil, false
	}
	judge, err := e.judgeService.GetJudgeForUser(eventId, user.Id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(403, gin.H{"error": "Not a judge of this event"})
		} else {
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return judge, true
}

// @id GetScores
// @Description Fetches the authenticated judge's scores for a team and rubric
// @Tags score
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Param rubric_id path int true "Rubric Id"
// @Success 200 {array} ScoreResponse
// @Router /events/{event_id}/teams/{team_id}/rubrics/{rubric_id}/scores [get]
func (e *ScoreController) getScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rubricId, err := strconv.Atoi(c.Param("rubric_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judge, ok := e.currentJudge(c, eventId)
		if !ok {
			return
		}
		scores, err := e.scoreService.GetScoresForJudge(judge.Id, teamId, rubricId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id SubmitScores
// @Description Records the authenticated judge's pass over a rubric for a team
// @Tags score
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team_id path int true "Team Id"
// @Param rubric_id path int true "Rubric Id"
// @Param submission body ScoreSubmission true "Scores to record"
// @Success 200 {array} ScoreResponse
// @Router /events/{event_id}/teams/{team_id}/rubrics/{rubric_id}/scores [put]
func (e *ScoreController) submitScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rubricId, err := strconv.Atoi(c.Param("rubric_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var submission ScoreSubmission
		if err := c.BindJSON(&submission); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judge, ok := e.currentJudge(c, eventId)
		if !ok {
			return
		}
		selections := utils.Map(submission.Selections, func(s ScoreSelection) *service.AspectSelection {
			return &service.AspectSelection{
				AspectId:      s.AspectId,
				SelectedLevel: s.SelectedLevel,
				Observation:   s.Observation,
			}
		})
		err = e.scoreService.SubmitScores(judge.Id, teamId, rubricId, submission.GeneralObservation, selections)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		scores, err := e.scoreService.GetScoresForJudge(judge.Id, teamId, rubricId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

type ScoreSelection struct {
	AspectId      int    `json:"aspect_id" binding:"required"`
	SelectedLevel int    `json:"selected_level" binding:"required"`
	Observation   string `json:"observation"`
}

type ScoreSubmission struct {
	GeneralObservation string           `json:"general_observation"`
	Selections         []ScoreSelection `json:"selections" binding:"required"`
}

type ScoreResponse struct {
	Id                 int    `json:"id"`
	JudgeId            int    `json:"judge_id"`
	TeamId             int    `json:"team_id"`
	RubricId           int    `json:"rubric_id"`
	AspectId           int    `json:"aspect_id"`
	SelectedLevel      int    `json:"selected_level"`
	Points             int    `json:"points"`
	AspectObservation  string `json:"aspect_observation"`
	GeneralObservation string `json:"general_observation"`
}

func toScoreResponse(score *repository.Score) ScoreResponse {
	return ScoreResponse{
		Id:                 score.Id,
		JudgeId:            score.JudgeId,
		TeamId:             score.TeamId,
		RubricId:           score.RubricId,
		AspectId:           score.AspectId,
		SelectedLevel:      score.SelectedLevel,
		Points:             score.Points,
		AspectObservation:  score.AspectObservation,
		GeneralObservation: score.GeneralObservation,
	}
}
