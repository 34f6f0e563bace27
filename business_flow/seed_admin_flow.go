package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
	"github.com/opencampus/college-cms/utils"
)

// SeedSuperAdmin provisions the initial super-admin account. It is invoked
// from the CLI seed mode, never over HTTP. Seeding an existing username is a
// no-op so the command stays idempotent.
func SeedSuperAdmin(ctx context.Context, adminRepo repository.AdminRepository, username, email, password string) error {
	if username == "" || email == "" {
		return fmt.Errorf("seed admin: username and email are required")
	}
	if len(password) < 8 {
		return fmt.Errorf("seed admin: password must be at least 8 characters")
	}

	existing, err := adminRepo.ByUsernameOrEmail(ctx, username)
	if err != nil {
		return fmt.Errorf("seed admin: lookup failed: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash failed: %w", err)
	}

	now := utils.UTCNow()
	admin := models.Admin{
		UUID:         uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		IsActive:     utils.ToPtr(true),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := adminRepo.Save(ctx, &admin); err != nil {
		return fmt.Errorf("seed admin: save failed: %w", err)
	}
	return nil
}
