// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"log"
	"math/rand"
	"time"

	"github.com/FletchFFletchGT/sample-app/internal/auth"
	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the password every generated user gets.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db     *gorm.DB
	pepper string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, pepper string) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, pepper: pepper}
}

// CreateUser constructs and persists a sample user with a real digest for
// DefaultPassword. Optional override functions may modify the generated user
// before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	salt, err := auth.NewSalt()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:              gofakeit.Name(),
		Email:             gofakeit.Email(),
		Salt:              salt,
		EncryptedPassword: auth.Digest(DefaultPassword, salt, f.pepper),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMicropost persists a micropost for the user with a realistic
// created_at spread over the past maxDays days.
func (f *Factory) CreateMicropost(user *models.User, maxDays int, overrides ...func(*models.Micropost)) (*models.Micropost, error) {
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Micropost{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
	}

	daysBack := rand.Intn(maxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Follow creates a follow edge between two seeded users.
func (f *Factory) Follow(follower, followed *models.User) error {
	rel := &models.Relationship{FollowerID: follower.ID, FollowedID: followed.ID}
	if err := f.db.Create(rel).Error; err != nil {
		log.Printf("seed: follow %d -> %d failed: %v", follower.ID, followed.ID, err)
		return err
	}
	return nil
}
