package service

import (
	"context"
	"strings"

	"github.com/FletchFFletchGT/sample-app/internal/models"
	"github.com/FletchFFletchGT/sample-app/internal/repository"
)

// MicropostService owns micropost creation rules and the home feed.
type MicropostService struct {
	micropostRepo repository.MicropostRepository
	userRepo      repository.UserRepository
}

// NewMicropostService creates a MicropostService.
func NewMicropostService(micropostRepo repository.MicropostRepository, userRepo repository.UserRepository) *MicropostService {
	return &MicropostService{micropostRepo: micropostRepo, userRepo: userRepo}
}

// Create posts a new micropost for the author. Content must be non-blank and
// at most 140 characters.
func (s *MicropostService) Create(ctx context.Context, authorID uint, content string) (*models.Micropost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewInvalidInputError("Content can't be blank",
			[]string{"content_blank"})
	}
	if len(content) > models.MaxMicropostLength {
		return nil, models.NewInvalidInputError("Content is too long",
			[]string{"content_too_long"})
	}

	// The author must still exist; a stale token after an admin destroy
	// should not be able to post orphaned content.
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	post := &models.Micropost{Content: content, UserID: authorID}
	if err := s.micropostRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Feed returns a page of the user's home feed: their own microposts plus those
// of every user they follow, newest first.
func (s *MicropostService) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error) {
	return s.micropostRepo.Feed(ctx, userID, limit, offset)
}

// UserMicroposts returns a page of the given user's own microposts.
func (s *MicropostService) UserMicroposts(ctx context.Context, userID uint, limit, offset int) ([]*models.Micropost, error) {
	return s.micropostRepo.GetByUserID(ctx, userID, limit, offset)
}

// CountByUser returns how many microposts the user has posted.
func (s *MicropostService) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.micropostRepo.CountByUserID(ctx, userID)
}

// Delete removes a micropost. Only the author may delete their own posts.
func (s *MicropostService) Delete(ctx context.Context, actorID, postID uint) error {
	post, err := s.micropostRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return models.NewForbiddenError("cannot delete another user's micropost")
	}
	return s.micropostRepo.Delete(ctx, postID)
}
