// Package seed populates the user store at startup from a JSON document,
// falling back to a single default admin account when no file is present.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

const (
	defaultAdminEmail    = "admin@directory.local"
	defaultAdminPassword = "test123"
)

// record is one entry of the seed document. Passwords are plaintext in the
// seed file and hashed during loading.
type record struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      int    `json:"role"`
}

// Users loads the seed document at path into repo. When the file does not
// exist, a single default admin account is inserted instead. Any other read
// or parse failure is returned to the caller.
func Users(ctx context.Context, path string, repo ports.UserRepository, hasher ports.PasswordHasher) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultAdmin(ctx, repo, hasher)
	}
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, rec := range records {
		hash, err := hasher.Hash(rec.Password)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", rec.Email, err)
		}
		user := &domain.SystemUser{
			ID:           rec.ID,
			FirstName:    rec.FirstName,
			LastName:     rec.LastName,
			Email:        rec.Email,
			PasswordHash: hash,
			Role:         rec.Role,
			Created:      time.Now().UTC(),
		}
		if _, err := repo.Add(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", rec.Email, err)
		}
	}
	return nil
}

func defaultAdmin(ctx context.Context, repo ports.UserRepository, hasher ports.PasswordHasher) error {
	hash, err := hasher.Hash(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}
	admin := &domain.SystemUser{
		FirstName:    "Default",
		LastName:     "Admin",
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Created:      time.Now().UTC(),
	}
	if _, err := repo.Add(ctx, admin); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}
	return nil
}
