// Package bootstrap establishes runtime dependencies before the server starts.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/FletchFFletchGT/sample-app/internal/auth"
	"github.com/FletchFFletchGT/sample-app/internal/cache"
	"github.com/FletchFFletchGT/sample-app/internal/config"
	"github.com/FletchFFletchGT/sample-app/internal/database"
	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to DB and Redis and optionally ensures a development
// admin account exists. The Redis client may be nil when unreachable; the app
// degrades to uncached operation.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
	}

	return db, r, nil
}

// ensureDevAdmin creates or repairs a known admin account in development so a
// fresh database is immediately usable.
func ensureDevAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapAdmin {
		return nil
	}

	email := strings.TrimSpace(strings.ToLower(cfg.DevAdminEmail))
	if email == "" {
		email = "admin@sample-app.local"
	}
	password := cfg.DevAdminPassword
	if password == "" {
		return fmt.Errorf("DEV_ADMIN_PASSWORD must be set when DEV_BOOTSTRAP_ADMIN is enabled")
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return fmt.Errorf("generate admin salt: %w", err)
	}
	digest := auth.Digest(password, salt, cfg.PasswordPepper)

	if err := db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Where("email = ?", email).First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Name:              "Administrator",
				Email:             email,
				Salt:              salt,
				EncryptedPassword: digest,
				Admin:             true,
			}
			return tx.Create(&admin).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&admin).Updates(map[string]any{
				"admin":              true,
				"salt":               salt,
				"encrypted_password": digest,
			}).Error
		}
	}); err != nil {
		return err
	}

	log.Printf("development admin bootstrap ensured (%s)", email)
	return nil
}
