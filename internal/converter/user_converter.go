package converter

import (
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Role falls back to the role id mapping when the relation is not loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleName(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Role:      role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
