package repository

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByRole(ctx context.Context, roleID int) ([]entity.User, error)
	CountByRole(ctx context.Context, roleID int) (int64, error)
	Count(ctx context.Context) (int64, error)
}
