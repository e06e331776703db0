package repository

import (
	"context"

	"github.com/FletchFFletchGT/sample-app/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository defines the interface for follow-edge data operations
type RelationshipRepository interface {
	Follow(ctx context.Context, followerID, followedID uint) error
	Unfollow(ctx context.Context, followerID, followedID uint) error
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
	FollowedIDs(ctx context.Context, followerID uint) ([]uint, error)
	Following(ctx context.Context, followerID uint) ([]models.User, error)
	Followers(ctx context.Context, followedID uint) ([]models.User, error)
}

// relationshipRepository implements RelationshipRepository
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) Follow(ctx context.Context, followerID, followedID uint) error {
	// INSERT ... ON CONFLICT DO NOTHING keeps a double-follow race idempotent
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO relationships (follower_id, followed_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (follower_id, followed_id) DO NOTHING`,
		followerID, followedID,
	)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	return nil
}

func (r *relationshipRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Relationship{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *relationshipRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *relationshipRepository) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *relationshipRepository) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN relationships r ON users.id = r.followed_id").
		Where("r.follower_id = ?", followerID).
		Order("users.name ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *relationshipRepository) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN relationships r ON users.id = r.follower_id").
		Where("r.followed_id = ?", followedID).
		Order("users.name ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
