package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User represents an author on the platform.
type User struct {
	Model
	Fullname       string    `json:"fullname" binding:"required,min=2"`
	Username       string    `json:"username" gorm:"unique;not null" binding:"required,min=2" conform:"trim"`
	Email          string    `json:"email" gorm:"unique;not null" binding:"required,email" conform:"email"`
	Password       string    `json:"password,omitempty" gorm:"-" binding:"required"`
	HashedPassword string    `json:"-"`
	Bio            string    `json:"bio,omitempty"`
	Posts          []Post    `json:"-" gorm:"foreignKey:AuthorID"`
	Comments       []Comment `json:"-" gorm:"foreignKey:AuthorID"`
	Following      []Follow  `json:"-" gorm:"foreignKey:UserID"`
}

// Blacklist holds revoked access tokens until they expire on their own.
type Blacklist struct {
	Model
	Token string `gorm:"not null;index"`
}

type SignupRequest struct {
	Fullname string `json:"fullname" binding:"required,min=2"`
	Username string `json:"username" binding:"required,min=2" conform:"trim"`
	Email    string `json:"email" binding:"required,email" conform:"email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserResponse
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Fullname: u.Fullname,
		Username: u.Username,
		Email:    u.Email,
	}
}

// VerifyPassword compares the supplied password with the stored hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(64, errors.New("password cant be more than 64 characters")))
	return passwordValidator.Validate(password)
}

// ConformInput trims and normalises tagged string fields in place.
func ConformInput(data interface{}) error {
	return conform.Strings(data)
}
