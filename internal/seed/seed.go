package seed

import (
	"fmt"
	"log"

	"github.com/FletchFFletchGT/sample-app/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	PostsPerUser int
	ShouldClean  bool
}

// Seeder populates the database with a small social graph for development.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder.
func NewSeeder(db *gorm.DB, pepper string) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, pepper)}
}

// ClearAll removes all seeded data. Child tables go first so foreign keys
// never dangle mid-wipe.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"relationships", "microposts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds an admin, a batch of regular users, microposts for the most
// recent posters, and a follow mesh centered on the admin.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Name = "Example User"
		u.Email = "example@sample-app.dev"
		u.Admin = true
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	users := []*models.User{admin}
	for i := 1; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("seed: %d users created", len(users))

	// Only the first handful of users post; a realistic graph is lopsided.
	posters := users
	if len(posters) > 6 {
		posters = posters[:6]
	}
	postCount := 0
	for _, user := range posters {
		for i := 0; i < opts.PostsPerUser; i++ {
			if _, err := s.factory.CreateMicropost(user, 90); err != nil {
				return fmt.Errorf("failed to create micropost: %w", err)
			}
			postCount++
		}
	}
	log.Printf("seed: %d microposts created", postCount)

	// Admin follows a slice of users and most users follow the admin back.
	edges := 0
	for i, user := range users {
		if i == 0 {
			continue
		}
		if i <= len(users)/2 {
			if err := s.factory.Follow(admin, user); err == nil {
				edges++
			}
		}
		if err := s.factory.Follow(user, admin); err == nil {
			edges++
		}
	}
	log.Printf("seed: %d follow edges created", edges)

	return nil
}
