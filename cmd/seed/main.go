// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"github.com/FletchFFletchGT/sample-app/internal/config"
	"github.com/FletchFFletchGT/sample-app/internal/database"
	"github.com/FletchFFletchGT/sample-app/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 100, "Number of users to create")
	postsPerUser := flag.Int("posts", 50, "Microposts per posting user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts per poster, clean=%v\n", *numUsers, *postsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, cfg.PasswordPepper)
	if err := s.Run(seed.Options{
		NumUsers:     *numUsers,
		PostsPerUser: *postsPerUser,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done. Every seeded user has the password %q.", seed.DefaultPassword)
}
