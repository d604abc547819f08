package repository

import (
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleJudge UserRole = "jurado"
)

type User struct {
	Id           int      `gorm:"primaryKey"`
	Name         string   `gorm:"column:nombre;not null"`
	Email        string   `gorm:"column:correo;not null;uniqueIndex"`
	PasswordHash string   `gorm:"column:contrasena_hash;not null"`
	Role         UserRole `gorm:"column:rol;not null;default:jurado"`
	Active       bool     `gorm:"column:activo;not null;default:true"`
}

func (User) TableName() string {
	return "usuarios"
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.First(&user, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*User, error) {
	var user User
	result := r.DB.Where("correo = ? AND activo = ?", email, true).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) GetActiveUsers() ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Where("activo = ?", true).Order("nombre ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) Save(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

func (r *UserRepository) SoftDelete(userId int) error {
	result := r.DB.Model(&User{}).Where("id = ?", userId).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
