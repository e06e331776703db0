package service

import (
	"context"

	"github.com/FletchFFletchGT/sample-app/internal/models"
	"github.com/FletchFFletchGT/sample-app/internal/repository"
)

// RelationshipService owns the follow graph.
type RelationshipService struct {
	relationshipRepo repository.RelationshipRepository
	userRepo         repository.UserRepository
}

// NewRelationshipService creates a RelationshipService.
func NewRelationshipService(relationshipRepo repository.RelationshipRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{relationshipRepo: relationshipRepo, userRepo: userRepo}
}

// Follow creates a follow edge from the actor to the target. Following
// yourself is rejected; following someone twice is a no-op.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return models.NewValidationError("cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}
	return s.relationshipRepo.Follow(ctx, followerID, followedID)
}

// Unfollow removes the follow edge if present.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	return s.relationshipRepo.Unfollow(ctx, followerID, followedID)
}

// IsFollowing reports whether the follow edge exists.
func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.relationshipRepo.IsFollowing(ctx, followerID, followedID)
}

// Following returns the users the given user follows, ordered by name.
func (s *RelationshipService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relationshipRepo.Following(ctx, userID)
}

// Followers returns the users following the given user, ordered by name.
func (s *RelationshipService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relationshipRepo.Followers(ctx, userID)
}
