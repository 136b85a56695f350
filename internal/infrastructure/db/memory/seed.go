package memory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

// SeedDemo loads the demo fixtures the memory backend ships with: an admin
// account (admin / admin123) and a handful of catalog entries.
func SeedDemo(ctx context.Context, users *UserRepository, products *ProductRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}

	now := time.Now().UTC()
	if _, err := users.Insert(ctx, &domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
	}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	demo := []*domain.Product{
		{
			Name:        "Mechanical Keyboard",
			Price:       1590,
			Stock:       50,
			Description: "Gaming mechanical keyboard with RGB lighting",
			Category:    "Electronics",
		},
		{
			Name:        "Gaming Mouse",
			Price:       890,
			Stock:       8,
			Description: "High precision gaming mouse",
			Category:    "Electronics",
		},
		{
			Name:        "Monitor 24 inch",
			Price:       5500,
			Stock:       15,
			Description: "1080p IPS monitor for gaming",
			Category:    "Electronics",
		},
	}
	for _, p := range demo {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := products.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}
