package models

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsernameLength is the exact length of every username.
const UsernameLength = 10

// User is a member of staff that signs in with a role.
type User struct {
	DefaultModel
	FullName     string
	Username     string    `gorm:"uniqueIndex:user_username"`
	PasswordHash string    `json:"-"`
	RoleID       uuid.UUID `gorm:"type:uuid"`
	Role         Role      `json:"-"`
}

func (User) Self() string {
	return "User"
}

// SetPassword stores the bcrypt hash of the password.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Reason: "must not be empty"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ValidationError{Field: "password", Reason: err.Error()}
	}

	u.PasswordHash = string(hash)
	return nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.FullName = cleanName(u.FullName)
	u.Username = cleanName(u.Username)

	if u.FullName == "" {
		return ValidationError{Field: "fullName", Reason: "must not be blank"}
	}

	if utf8.RuneCountInString(u.Username) != UsernameLength {
		return ValidationError{Field: "username", Reason: "must be exactly 10 characters long"}
	}

	if u.PasswordHash == "" {
		return ValidationError{Field: "password", Reason: "must be set"}
	}

	if u.RoleID == uuid.Nil {
		return ValidationError{Field: "role", Reason: "must be set"}
	}

	return nil
}
