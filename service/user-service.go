package service

import (
	"errors"

	"fll/app_error"
	"fll/auth"
	"fll/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (e *UserService) GetUserById(userId int) (*repository.User, error) {
	return e.userRepository.GetUserById(userId)
}

func (e *UserService) GetActiveUsers() ([]*repository.User, error) {
	return e.userRepository.GetActiveUsers()
}

func (e *UserService) Register(name string, email string, password string, role repository.UserRole) (*repository.User, error) {
	if len(password) < 8 {
		return nil, app_error.NewValidationError("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &repository.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	saved, err := e.userRepository.Save(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, app_error.NewValidationError("email %s is already registered", email)
		}
		return nil, err
	}
	return saved, nil
}

// Login verifies the credentials and returns the user. Unknown email and
// wrong password are indistinguishable to the caller.
func (e *UserService) Login(email string, password string) (*repository.User, error) {
	user, err := e.userRepository.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &app_error.AccessError{}
		}
		return nil, err
	}
	if !user.Active || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, &app_error.AccessError{}
	}
	return user, nil
}

func (e *UserService) GetUserFromAuthCookie(c *gin.Context) (*repository.User, error) {
	authCookie, err := c.Cookie("auth")
	if err != nil {
		return nil, err
	}
	return e.GetUserFromToken(authCookie)
}

func (e *UserService) GetUserFromToken(tokenString string) (*repository.User, error) {
	token, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims := &auth.Claims{}
	if token.Valid {
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			return nil, err
		}
		return e.GetUserById(claims.UserId)
	}
	return nil, jwt.ErrInvalidKey
}

func (e *UserService) DeleteUser(userId int) error {
	return e.userRepository.SoftDelete(userId)
}
