package repository

import (
	"context"
	"errors"

	"github.com/FletchFFletchGT/sample-app/internal/models"

	"gorm.io/gorm"
)

// MicropostRepository defines the interface for micropost data operations
type MicropostRepository interface {
	Create(ctx context.Context, post *models.Micropost) error
	GetByID(ctx context.Context, id uint) (*models.Micropost, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error)
	Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error)
	Delete(ctx context.Context, id uint) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// micropostRepository implements MicropostRepository
type micropostRepository struct {
	db *gorm.DB
}

// NewMicropostRepository creates a new micropost repository
func NewMicropostRepository(db *gorm.DB) MicropostRepository {
	return &micropostRepository{db: db}
}

func (r *micropostRepository) Create(ctx context.Context, post *models.Micropost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *micropostRepository) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	var post models.Micropost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Micropost", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *micropostRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error) {
	var posts []*models.Micropost
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Feed returns the user's own microposts merged with those of every followed
// user, newest first with id as the tie-breaker. The followed set is resolved
// by a subquery inside the same statement so ordering and pagination happen in
// the store, not in memory.
func (r *micropostRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error) {
	var posts []*models.Micropost

	followedIDs := r.db.Model(&models.Relationship{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? OR user_id IN (?)", userID, followedIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *micropostRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Micropost{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Micropost", id)
	}
	return nil
}

func (r *micropostRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Micropost{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
