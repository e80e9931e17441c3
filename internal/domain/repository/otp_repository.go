package repository

import (
	"context"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
)

type OtpRepository interface {
	Create(ctx context.Context, otp *entity.Otp) error
}
