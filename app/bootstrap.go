// app/bootstrap.go
package app

import (
	"context"
	"log"

	"Gin_postgres_rental_backoffice/db"
	"Gin_postgres_rental_backoffice/models"

	"golang.org/x/crypto/bcrypt"
)

// BootstrapFirstUser seeds a sign-in capable user when the table is empty.
// User management lives elsewhere in the back office; this only unlocks a
// fresh deployment.
func BootstrapFirstUser(ctx context.Context, cfg Config, repo *db.Repo) {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return
	}
	n, err := repo.CountUsers(ctx)
	if err != nil || n > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("bootstrap user failed: %v", err)
		return
	}
	u := &models.User{
		Username:     cfg.BootstrapUsername,
		PasswordHash: string(hash),
		DisplayName:  cfg.BootstrapUsername,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		log.Printf("bootstrap user failed: %v", err)
		return
	}
	log.Printf("[BOOTSTRAP] No users found, created first user %s", cfg.BootstrapUsername)
}
