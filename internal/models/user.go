package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// User is an authentication identity. Display data lives on the Profile row
// that shares the user's ID.
type User struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // Never send password in JSON

	// Relations (not always preloaded)
	Roles         []UserRole     `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// UserRole assigns a role to a user. A user may hold more than one role; the
// doctor portal is gated on holding RoleDoctor.
type UserRole struct {
	BaseModel
	UserID string `gorm:"size:36;index;not null" json:"userId"`
	Role   Role   `gorm:"size:20;not null" json:"role"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized is the identity data safe to send in API responses.
type UserSanitized struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize builds the response form of a user with the role resolved at login.
func (u *User) Sanitize(role Role) UserSanitized {
	return UserSanitized{
		ID:    u.ID,
		Email: u.Email,
		Role:  role,
	}
}
