package service

import (
	"context"
	"testing"

	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a function-field stub for the user repository. Fields left
// nil behave as "not found" or no-op so each test only wires what it needs.
type userRepoStub struct {
	getByIDFn               func(ctx context.Context, id uint) (*models.User, error)
	getByIDWithMicropostsFn func(ctx context.Context, id uint, limit int) (*models.User, error)
	getByEmailFn            func(ctx context.Context, email string) (*models.User, error)
	createFn                func(ctx context.Context, user *models.User) error
	updateFn                func(ctx context.Context, user *models.User) error
	deleteFn                func(ctx context.Context, id uint) error
	listFn                  func(ctx context.Context, limit, offset int) ([]models.User, error)
	countFn                 func(ctx context.Context) (int64, error)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByIDWithMicroposts(ctx context.Context, id uint, limit int) (*models.User, error) {
	if s.getByIDWithMicropostsFn != nil {
		return s.getByIDWithMicropostsFn(ctx, id, limit)
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

// micropostRepoStub mirrors userRepoStub for micropost persistence.
type micropostRepoStub struct {
	createFn        func(ctx context.Context, post *models.Micropost) error
	getByIDFn       func(ctx context.Context, id uint) (*models.Micropost, error)
	getByUserIDFn   func(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error)
	feedFn          func(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error)
	deleteFn        func(ctx context.Context, id uint) error
	countByUserIDFn func(ctx context.Context, userID uint) (int64, error)
}

func (s *micropostRepoStub) Create(ctx context.Context, post *models.Micropost) error {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	post.ID = 1
	return nil
}

func (s *micropostRepoStub) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Micropost", id)
}

func (s *micropostRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (s *micropostRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error) {
	if s.feedFn != nil {
		return s.feedFn(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (s *micropostRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *micropostRepoStub) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	if s.countByUserIDFn != nil {
		return s.countByUserIDFn(ctx, userID)
	}
	return 0, nil
}

// relationshipRepoStub mirrors userRepoStub for the follow graph.
type relationshipRepoStub struct {
	followFn      func(ctx context.Context, followerID, followedID uint) error
	unfollowFn    func(ctx context.Context, followerID, followedID uint) error
	isFollowingFn func(ctx context.Context, followerID, followedID uint) (bool, error)
	followedIDsFn func(ctx context.Context, followerID uint) ([]uint, error)
	followingFn   func(ctx context.Context, followerID uint) ([]models.User, error)
	followersFn   func(ctx context.Context, followedID uint) ([]models.User, error)
}

func (s *relationshipRepoStub) Follow(ctx context.Context, followerID, followedID uint) error {
	if s.followFn != nil {
		return s.followFn(ctx, followerID, followedID)
	}
	return nil
}

func (s *relationshipRepoStub) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if s.unfollowFn != nil {
		return s.unfollowFn(ctx, followerID, followedID)
	}
	return nil
}

func (s *relationshipRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	if s.isFollowingFn != nil {
		return s.isFollowingFn(ctx, followerID, followedID)
	}
	return false, nil
}

func (s *relationshipRepoStub) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	if s.followedIDsFn != nil {
		return s.followedIDsFn(ctx, followerID)
	}
	return nil, nil
}

func (s *relationshipRepoStub) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	if s.followingFn != nil {
		return s.followingFn(ctx, followerID)
	}
	return nil, nil
}

func (s *relationshipRepoStub) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	if s.followersFn != nil {
		return s.followersFn(ctx, followedID)
	}
	return nil, nil
}

func assertValidationError(t *testing.T, err error, violations ...string) {
	t.Helper()
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	for _, v := range violations {
		assert.Contains(t, appErr.Violations, v)
	}
}
