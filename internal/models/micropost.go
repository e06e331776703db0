package models

import "time"

// MaxMicropostLength is the upper bound on micropost content length.
const MaxMicropostLength = 140

// Micropost is a short post owned by exactly one user. Microposts are removed
// together with their owner.
type Micropost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:140;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
