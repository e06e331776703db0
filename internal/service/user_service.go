// Package service contains the application's business logic, sitting between
// HTTP handlers and repositories.
package service

import (
	"context"
	"errors"

	"github.com/FletchFFletchGT/sample-app/internal/auth"
	"github.com/FletchFFletchGT/sample-app/internal/models"
	"github.com/FletchFFletchGT/sample-app/internal/repository"
	"github.com/FletchFFletchGT/sample-app/internal/validation"
)

// UserService owns user lifecycle rules: validation, registration,
// authentication, profile updates, the admin flag, and destruction.
type UserService struct {
	userRepo repository.UserRepository
	pepper   string
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// UpdateProfileInput is the profile edit payload. Password fields may be left
// empty to keep the current password.
type UpdateProfileInput struct {
	UserID               uint
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// NewUserService creates a UserService. The pepper is the application-wide
// secret mixed into every password digest.
func NewUserService(userRepo repository.UserRepository, pepper string) *UserService {
	return &UserService{userRepo: userRepo, pepper: pepper}
}

// Validate aggregates every rule violation for the candidate: the pure format
// rules plus the case-insensitive email uniqueness check against the store.
// selfID excludes the user's own row on update (0 on create).
func (s *UserService) Validate(ctx context.Context, c validation.Candidate, selfID uint) (validation.Result, error) {
	res := validation.ValidateUser(c)

	// Only consult the store when the email at least parses; a malformed
	// address can never collide.
	if !res.Has(validation.EmailInvalid) {
		existing, err := s.userRepo.GetByEmail(ctx, c.Email)
		if err != nil {
			return res, err
		}
		if existing != nil && existing.ID != selfID {
			res.Violations = append(res.Violations, validation.EmailTaken)
		}
	}

	return res, nil
}

// Register validates the candidate and creates the user with a fresh salt and
// digest. A uniqueness race at write time surfaces as the email-taken
// violation, exactly like the pre-flight check.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	candidate := validation.Candidate{
		Name:                 in.Name,
		Email:                in.Email,
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
		RequirePassword:      true,
	}

	res, err := s.Validate(ctx, candidate, 0)
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return nil, models.NewInvalidInputError("Validation failed", res.Strings())
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:              in.Name,
		Email:             in.Email,
		Salt:              salt,
		EncryptedPassword: auth.Digest(in.Password, salt, s.pepper),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, models.NewInvalidInputError("Validation failed",
				[]string{string(validation.EmailTaken)})
		}
		return nil, err
	}
	return user, nil
}

// Authenticate looks up the user case-insensitively by email and verifies the
// password against the stored digest. It returns (nil, nil) for an unknown
// email or a wrong password; the two cases are indistinguishable to callers.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !auth.VerifyPassword(password, user.Salt, s.pepper, user.EncryptedPassword) {
		return nil, nil
	}
	return user, nil
}

// UpdateProfile applies a profile edit. The salt is kept unless the password
// itself changes.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	candidate := validation.Candidate{
		Name:                 in.Name,
		Email:                in.Email,
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
	}

	res, err := s.Validate(ctx, candidate, user.ID)
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return nil, models.NewInvalidInputError("Validation failed", res.Strings())
	}

	user.Name = in.Name
	user.Email = in.Email
	if candidate.PasswordSupplied() {
		salt, saltErr := auth.NewSalt()
		if saltErr != nil {
			return nil, models.NewInternalError(saltErr)
		}
		user.Salt = salt
		user.EncryptedPassword = auth.Digest(in.Password, salt, s.pepper)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, models.NewInvalidInputError("Validation failed",
				[]string{string(validation.EmailTaken)})
		}
		return nil, err
	}
	return user, nil
}

// SetAdmin flips the admin flag on the target user.
func (s *UserService) SetAdmin(ctx context.Context, targetID uint, admin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Admin = admin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Destroy removes the user and everything they own in one transaction.
// Authorization (admin-only) is decided by the caller via auth.Authorize.
func (s *UserService) Destroy(ctx context.Context, targetID uint) error {
	return s.userRepo.Delete(ctx, targetID)
}

// GetUserByID returns a single user.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserWithMicroposts returns a user with their most recent microposts preloaded.
func (s *UserService) GetUserWithMicroposts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMicroposts(ctx, id, limit)
}

// ListUsers returns a page of users ordered by name.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// CountUsers returns the total number of users.
func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
