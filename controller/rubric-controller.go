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

type RubricController struct {
	rubricService *service.RubricService
}

func NewRubricController(db *gorm.DB) *RubricController {
	return &RubricController{
		rubricService: service.NewRubricService(db),
	}
}

func setupRubricController(db *gorm.DB) []RouteInfo {
	e := NewRubricController(db)
	admin := []repository.UserRole{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/rubrics", HandlerFunc: e.getRubricsHandler(), Authenticated: true},
		{Method: "POST", Path: "/events/:event_id/rubrics", HandlerFunc: e.createRubricHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PATCH", Path: "/rubrics/:rubric_id", HandlerFunc: e.updateRubricHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/rubrics/:rubric_id", HandlerFunc: e.deleteRubricHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/rubrics/:rubric_id/aspects", HandlerFunc: e.getAspectsHandler(), Authenticated: true},
		{Method: "POST", Path: "/rubrics/:rubric_id/aspects", HandlerFunc: e.createAspectHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PATCH", Path: "/aspects/:aspect_id", HandlerFunc: e.updateAspectHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/aspects/:aspect_id", HandlerFunc: e.deleteAspectHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/aspects/:aspect_id/levels", HandlerFunc: e.getLevelsHandler(), Authenticated: true},
		{Method: "PUT", Path: "/aspects/:aspect_id/levels", HandlerFunc: e.replaceLevelsHandler(), Authenticated: true, RequiredRoles: admin},
	}
	return routes
}

// @id GetRubrics
// @Description Fetches the active rubrics of an event
// @Tags rubric
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} RubricResponse
// @Router /events/{event_id}/rubrics [get]
func (e *RubricController) getRubricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rubrics, err := e.rubricService.GetRubricsForEvent(eventId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(rubrics, toRubricResponse))
	}
}

// @id CreateRubric
// @Description Creates a rubric
// @Tags rubric
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param rubric body RubricCreate true "Rubric to create"
// @Success 201 {object} RubricResponse
// @Router /events/{event_id}/rubrics [post]
func (e *RubricController) createRubricHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var rubricCreate RubricCreate
		if err := c.BindJSON(&rubricCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		rubric := rubricCreate.toModel()
		rubric.EventId = eventId
		dbrubric, err := e.rubricService.CreateRubric(rubric)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toRubricResponse(dbrubric))
	}
}

// @id UpdateRubric
// @Description Updates a rubric
// @Tags rubric
// @Accept json
// @Produce json
// @Param rubric_id path int true "Rubric Id"
// @Param rubric body RubricUpdate true "Rubric to update"
// @Success 200 {object} RubricResponse
// @Router /rubrics/{rubric_id} [patch]
func (e *RubricController) updateRubricHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rubricId, err := strconv.Atoi(c.Param("rubric_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var rubricUpdate RubricUpdate
		if err := c.BindJSON(&rubricUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbrubric, err := e.rubricService.UpdateRubric(rubricId, rubricUpdate.toModel())
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Rubric not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toRubricResponse(dbrubric))
	}
}

// @id DeleteRubric
// @Description Deactivates a rubric
// @Tags rubric
// @Param rubric_id path int true "Rubric Id"
// @Success 204
// @Router /rubrics/{rubric_id} [delete]
func (e *RubricController) deleteRubricHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rubricId, err := strconv.Atoi(c.Param("rubric_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.rubricService.DeleteRubric(rubricId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Rubric not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetAspects
// @Description Fetches the aspects of a rubric with their levels
// @Tags rubric
// @Produce json
// @Param rubric_id path int true "Rubric Id"
// @Success 200 {array} AspectResponse
// @Router /rubrics/{rubric_id}/aspects [get]
func (e *RubricController) getAspectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rubricId, err := strconv.Atoi(c.Param("rubric_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		aspects, err := e.rubricService.GetAspectsForRubric(rubricId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(aspects, toAspectResponse))
	}
}

// @id CreateAspect
// @Description Creates an aspect with its level set
// @Tags rubric
// @Accept json
// @Produce json
// @Param rubric_id path int true "Rubric Id"
// @Param aspect body AspectCreate true "Aspect to create"
// @Success 201 {object} AspectResponse
// @Router /rubrics/{rubric_id}/aspects [post]
func (e *RubricController) createAspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rubricId, err := strconv.Atoi(c.Param("rubric_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var aspectCreate AspectCreate
		if err := c.BindJSON(&aspectCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		aspect := &repository.Aspect{
			Name:        aspectCreate.Name,
			Description: aspectCreate.Description,
			RubricId:    rubricId,
		}
		levels := utils.Map(aspectCreate.Levels, func(level LevelCreate) *repository.Level { return level.toModel() })
		dbaspect, err := e.rubricService.CreateAspect(aspect, levels)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		c.JSON(201, toAspectResponse(dbaspect))
	}
}

// @id UpdateAspect
// @Description Updates an aspect
// @Tags rubric
// @Accept json
// @Produce json
// @Param aspect_id path int true "Aspect Id"
// @Param aspect body AspectUpdate true "Aspect to update"
// @Success 200 {object} AspectResponse
// @Router /aspects/{aspect_id} [patch]
func (e *RubricController) updateAspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		aspectId, err := strconv.Atoi(c.Param("aspect_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var aspectUpdate AspectUpdate
		if err := c.BindJSON(&aspectUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbaspect, err := e.rubricService.UpdateAspect(aspectId, &repository.Aspect{
			Name:        aspectUpdate.Name,
			Description: aspectUpdate.Description,
			Order:       aspectUpdate.Order,
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Aspect not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toAspectResponse(dbaspect))
	}
}

// @id DeleteAspect
// @Description Deactivates an aspect
// @Tags rubric
// @Param aspect_id path int true "Aspect Id"
// @Success 204
// @Router /aspects/{aspect_id} [delete]
func (e *RubricController) deleteAspectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		aspectId, err := strconv.Atoi(c.Param("aspect_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.rubricService.DeleteAspect(aspectId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Aspect not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @id GetLevels
// @Description Fetches the levels of an aspect, substituting the default scale when none are configured
// @Tags rubric
// @Produce json
// @Param aspect_id path int true "Aspect Id"
// @Success 200 {array} LevelResponse
// @Router /aspects/{aspect_id}/levels [get]
func (e *RubricController) getLevelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		aspectId, err := strconv.Atoi(c.Param("aspect_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		levels, err := e.rubricService.GetLevelsForAspect(aspectId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(levels, toLevelResponse))
	}
}

// @id ReplaceLevels
// @Description Replaces the whole level set of an aspect
// @Tags rubric
// @Accept json
// @Produce json
// @Param aspect_id path int true "Aspect Id"
// @Param levels body []LevelCreate true "New level set"
// @Success 200 {array} LevelResponse
// @Router /aspects/{aspect_id}/levels [put]
func (e *RubricController) replaceLevelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		aspectId, err := strconv.Atoi(c.Param("aspect_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var levelCreates []LevelCreate
		if err := c.BindJSON(&levelCreates); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		levels := utils.Map(levelCreates, func(level LevelCreate) *repository.Level { return level.toModel() })
		dblevels, err := e.rubricService.ReplaceAspectLevels(aspectId, levels)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Aspect not found"})
			} else {
				app_error.Render(c, err)
			}
			return
		}
		c.JSON(200, utils.Map(dblevels, toLevelResponse))
	}
}

type RubricCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type RubricUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RubricResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EventId     int    `json:"event_id"`
}

type AspectCreate struct {
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Levels      []LevelCreate `json:"levels"`
}

type AspectUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type AspectResponse struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	RubricId    int             `json:"rubric_id"`
	Order       int             `json:"order"`
	MaxValue    int             `json:"max_value"`
	Levels      []LevelResponse `json:"levels"`
}

type LevelCreate struct {
	Number      int    `json:"number" binding:"required"`
	Description string `json:"description" binding:"required"`
	Points      int    `json:"points"`
}

type LevelResponse struct {
	Id          int    `json:"id"`
	Number      int    `json:"number"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

func (e *RubricCreate) toModel() *repository.Rubric {
	return &repository.Rubric{Name: e.Name, Description: e.Description}
}

func (e *RubricUpdate) toModel() *repository.Rubric {
	return &repository.Rubric{Name: e.Name, Description: e.Description}
}

func (e *LevelCreate) toModel() *repository.Level {
	return &repository.Level{
		Number:      e.Number,
		Description: e.Description,
		Points:      e.Points,
		Order:       e.Number,
		Active:      true,
	}
}

func toRubricResponse(rubric *repository.Rubric) RubricResponse {
	return RubricResponse{
		Id:          rubric.Id,
		Name:        rubric.Name,
		Description: rubric.Description,
		EventId:     rubric.EventId,
	}
}

func toAspectResponse(aspect *repository.Aspect) AspectResponse {
	return AspectResponse{
		Id:          aspect.Id,
		Name:        aspect.Name,
		Description: aspect.Description,
		RubricId:    aspect.RubricId,
		Order:       aspect.Order,
		MaxValue:    aspect.MaxValue,
		Levels:      utils.Map(aspect.Levels, toLevelResponse),
	}
}

func toLevelResponse(level *repository.Level) LevelResponse {
	return LevelResponse{
		Id:          level.Id,
		Number:      level.Number,
		Description: level.Description,
		Points:      level.Points,
	}
}
