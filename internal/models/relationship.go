package models

import "time"

// Relationship is a directed follow edge: the follower follows the followed
// user. The composite unique index keeps the edge idempotent.
type Relationship struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_relationships_edge;index" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_relationships_edge;index" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followed User `gorm:"foreignKey:FollowedID" json:"followed,omitempty"`
}

// TableName specifies the table name for GORM
func (Relationship) TableName() string {
	return "relationships"
}
