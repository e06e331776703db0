// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered account.
//
// Email is persisted lowercase so the unique index enforces case-insensitive
// uniqueness; the BeforeSave hook guarantees the normalization even for writes
// that bypass the service layer. Salt and EncryptedPassword are never exposed
// over the API.
type User struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Name              string      `gorm:"size:50;not null" json:"name"`
	Email             string      `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Salt              string      `gorm:"size:64;not null" json:"-"`
	EncryptedPassword string      `gorm:"size:128;not null" json:"-"`
	Admin             bool        `gorm:"not null;default:false" json:"admin"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	Microposts        []Micropost `gorm:"foreignKey:UserID" json:"microposts,omitempty"`
}

// BeforeSave normalizes the email to lowercase before any insert or update.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}
