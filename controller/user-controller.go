package controller

import (
	"strconv"

	"fll/app_error"
	"fll/auth"
	"fll/repository"
	"fll/service"
	"fll/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	admin := []repository.UserRole{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "POST", Path: "/auth/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/auth/logout", HandlerFunc: e.logoutHandler()},
		{Method: "POST", Path: "/users", HandlerFunc: e.registerHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/users", HandlerFunc: e.getUsersHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/users/self", HandlerFunc: e.getSelfHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/users/:user_id", HandlerFunc: e.deleteUserHandler(), Authenticated: true, RequiredRoles: admin},
	}
	return routes
}

// @id Login
// @Description Verifies credentials and sets the auth cookie
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body Login true "Credentials"
// @Success 200 {object} UserResponse
// @Router /auth/login [post]
func (e *UserController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login Login
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.Login(login.Email, login.Password)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		authToken, err := auth.CreateToken(user)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetCookie("auth", authToken, 60*60*24*7, "/", "", false, true)
		c.JSON(200, toUserResponse(user))
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags user
// @Success 204
// @Router /auth/logout [post]
func (e *UserController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", false, true)
		c.JSON(204, nil)
	}
}

// @id Register
// @Description Registers a user account
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserCreate true "User to register"
// @Success 201 {object} UserResponse
// @Router /users [post]
func (e *UserController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCreate UserCreate
		if err := c.BindJSON(&userCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		role := repository.UserRole(userCreate.Role)
		if role != repository.RoleAdmin && role != repository.RoleJudge {
			c.JSON(400, gin.H{"error": "unknown role"})
			return
		}
		user, err := e.userService.Register(userCreate.Name, userCreate.Email, userCreate.Password, role)
		if err != nil {
			app_error.Render(c, err)
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

// @id GetUsers
// @Description Fetches all active users
// @Tags user
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func (e *UserController) getUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetActiveUsers()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id GetSelf
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} UserResponse
// @Router /users/self [get]
func (e *UserController) getSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthCookie(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id DeleteUser
// @Description Deactivates a user account
// @Tags user
// @Param user_id path int true "User Id"
// @Success 204
// @Router /users/{user_id} [delete]
func (e *UserController) deleteUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.userService.DeleteUser(userId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "User not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

type Login struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserCreate struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type UserResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(user *repository.User) UserResponse {
	return UserResponse{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
