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

type JudgeController struct {
	judgeService *service.JudgeService
	userService  *service.UserService
}

func NewJudgeController(db *gorm.DB) *JudgeController {
	return &JudgeController{
		judgeService: service.NewJudgeService(db),
		userService:  service.NewUserService(db),
	}
}

func setupJudgeController(db *gorm.DB) []RouteInfo {
	e := NewJudgeController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/judges", HandlerFunc: e.getJudgesHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "POST", Path: "/events/:event_id/judges", HandlerFunc: e.createJudgeHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "PATCH", Path: "/judges/:judge_id", HandlerFunc: e.updateJudgeHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "DELETE", Path: "/judges/:judge_id", HandlerFunc: e.deleteJudgeHandler(), Authenticated: true, RequiredRoles: []repository.UserRole{repository.RoleAdmin}},
		{Method: "GET", Path: "/judges/my-events", HandlerFunc: e.getMyEventsHandler(), Authenticated: true},
	}
	return routes
}

// @id GetJudges
// @Description Fetches the active judge assignments of an event
// @Tags judge
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} JudgeResponse
// @Router /events/{event_id}/judges [get]
func (e *JudgeController) getJudgesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judges, err := e.judgeService.GetJudgesForEvent(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(judges, toJudgeResponse))
	}
}

// @id CreateJudge
// @Description Assigns a user as judge of an event
// @Tags judge
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param judge body JudgeCreate true "Judge to assign"
// @Success 201 {object} JudgeResponse
// @Router /events/{event_id}/judges [post]
func (e *JudgeController) createJudgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var judgeCreate JudgeCreate
		if err := c.BindJSON(&judgeCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		judge := judgeCreate.toModel()
		judge.EventId = eventId
		dbjudge, err := e.judgeService.CreateJudge(judge)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		c.JSON(201, toJudgeResponse(dbjudge))
	}
}

// @id UpdateJudge
// @Description Updates a judge assignment
// @Tags judge
// @Accept json
// @Produce json
// @Param judge_id path int true "Judge Id"
// @Param judge body JudgeUpdate true "Judge to update"
// @Success 200 {object} JudgeResponse
// @Router /judges/{judge_id} [patch]
func (e *JudgeController) updateJudgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, err := strconv.Atoi(c.Param("judge_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var judgeUpdate JudgeUpdate
		if err := c.BindJSON(&judgeUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbjudge, err := e.judgeService.UpdateJudge(judgeId, judgeUpdate.toModel())
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Judge not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toJudgeResponse(dbjudge))
	}
}

// @id DeleteJudge
// @Description Deactivates a judge assignment
// @Tags judge
// @Param judge_id path int true "Judge Id"
// @Success 204
// @Router /judges/{judge_id} [delete]
func (e *JudgeController) deleteJudgeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		judgeId, err := strconv.Atoi(c.Param("judge_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.judgeService.DeleteJudge(judgeId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Judge not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetMyEvents
// @Description Fetches the events the authenticated user judges
// @Tags judge
// @Produce json
// @Success 200 {array} EventResponse
// @Router /judges/my-events [get]
func (e *JudgeController) getMyEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		events, err := e.judgeService.GetEventsForUser(user.Id)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

type JudgeCreate struct {
	UserId        int    `json:"user_id" binding:"required"`
	ReferenceName string `json:"reference_name"`
}

type JudgeUpdate struct {
	ReferenceName string `json:"reference_name"`
}

type JudgeResponse struct {
	Id            int    `json:"id"`
	UserId        int    `json:"user_id"`
	EventId       int    `json:"event_id"`
	ReferenceName string `json:"reference_name"`
}

func (e *JudgeCreate) toModel() *repository.Judge {
	return &repository.Judge{
		UserId:        e.UserId,
		ReferenceName: e.ReferenceName,
	}
}

func (e *JudgeUpdate) toModel() *repository.Judge {
	return &repository.Judge{ReferenceName: e.ReferenceName}
}

func toJudgeResponse(judge *repository.Judge) JudgeResponse {
	return JudgeResponse{
		Id:            judge.Id,
		UserId:        judge.UserId,
		EventId:       judge.EventId,
		ReferenceName: judge.ReferenceName,
	}
}
