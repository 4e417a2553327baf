package repository

import (
	"context"

	"github.com/shophub/shophub-api/internal/domain/entity"
)

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail matches case-insensitively (emails are stored lowercased).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
