package models

import "time"

// Profile holds the display data for an identity. Its primary key is the
// owning user's ID, one row per user.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FullName  string    `gorm:"size:255" json:"fullName"`
	Phone     string    `gorm:"size:30" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
