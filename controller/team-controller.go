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

type TeamController struct {
	teamService *service.TeamService
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{
		teamService: service.NewTeamService(db),
	}
}

func setupTeamController(db *gorm.DB) []RouteInfo {
	e := NewTeamController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/teams", HandlerFunc: e.getTeamsHandler(), Authenticated: true},
		{Method: "POST", Path: "/events/:event_id/teams", HandlerFunc: e.createTeamHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "GET", Path: "/teams/:team_id", HandlerFunc: e.getTeamHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/teams/:team_id", HandlerFunc: e.updateTeamHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "DELETE", Path: "/teams/:team_id", HandlerFunc: e.deleteTeamHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "POST", Path: "/teams/access", HandlerFunc: e.teamAccessHandler()},
	}
	return routes
}

// @id GetTeams
// @Description Fetches the active teams of an event
// @Tags team
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} TeamResponse
// @Router /events/{event_id}/teams [get]
func (e *TeamController) getTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		teams, err := e.teamService.GetTeamsForEvent(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(teams, toTeamResponse))
	}
}

// @id CreateTeam
// @Description Creates a team and generates its access code
// @Tags team
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param team body TeamCreate true "Team to create"
// @Success 201 {object} TeamResponse
// @Router /events/{event_id}/teams [post]
func (e *TeamController) createTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var teamCreate TeamCreate
		if err := c.BindJSON(&teamCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team := teamCreate.toModel()
		team.EventId = eventId
		dbteam, err := e.teamService.CreateTeam(team)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toTeamResponse(dbteam))
	}
}

// @id GetTeam
// @Description Gets a team by id
// @Tags team
// @Produce json
// @Param team_id path int true "Team Id"
// @Success 200 {object} TeamResponse
// @Router /teams/{team_id} [get]
func (e *TeamController) getTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.GetTeamById(teamId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

// @id UpdateTeam
// @Description Updates a team
// @Tags team
// @Accept json
// @Produce json
// @Param team_id path int true "Team Id"
// @Param team body TeamUpdate true "Team to update"
// @Success 200 {object} TeamResponse
// @Router /teams/{team_id} [patch]
func (e *TeamController) updateTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var teamUpdate TeamUpdate
		if err := c.BindJSON(&teamUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbteam, err := e.teamService.UpdateTeam(teamId, teamUpdate.toModel())
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toTeamResponse(dbteam))
	}
}

// @id DeleteTeam
// @Description Deactivates a team
// @Tags team
// @Param team_id path int true "Team Id"
// @Success 204
// @Router /teams/{team_id} [delete]
func (e *TeamController) deleteTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamId, err := strconv.Atoi(c.Param("team_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.teamService.DeleteTeam(teamId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @id TeamAccess
// @Description Checks a team access code and returns the matched team
// @Tags team
// @Accept json
// @Produce json
// @Param access body TeamAccess true "Access code"
// @Success 200 {object} TeamAccessResponse
// @Router /teams/access [post]
func (e *TeamController) teamAccessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var access TeamAccess
		if err := c.BindJSON(&access); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		team, err := e.teamService.CheckTeamCode(access.Code)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		c.JSON(200, TeamAccessResponse{Id: team.Id, Name: team.Name, EventId: team.EventId})
	}
}

type TeamCreate struct {
	Name string `json:"name" binding:"required"`
}

type TeamUpdate struct {
	Name string `json:"name"`
}

type TeamAccess struct {
	Code string `json:"code" binding:"required"`
}

type TeamResponse struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	EventId int    `json:"event_id"`
	Code    string `json:"code"`
}

// TeamAccessResponse omits the code: echoing the credential back to the
// public endpoint would defeat the point of it.
type TeamAccessResponse struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	EventId int    `json:"event_id"`
}

func (e *TeamCreate) toModel() *repository.Team {
	return &repository.Team{Name: e.Name}
}

func (e *TeamUpdate) toModel() *repository.Team {
	return &repository.Team{Name: e.Name}
}

func toTeamResponse(team *repository.Team) TeamResponse {
	return TeamResponse{
		Id:      team.Id,
		Name:    team.Name,
		EventId: team.EventId,
		Code:    team.Code,
	}
}
