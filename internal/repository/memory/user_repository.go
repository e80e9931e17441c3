package memory

import (
	"context"
	"sort"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	domainRepo "github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) domainRepo.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	for _, u := range r.store.users {
		if u.Username == user.Username {
			return duplicateKey("users_username_key")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = stamp(user.CreatedAt)
	user.UpdatedAt = user.CreatedAt

	row := *user
	row.Role = entity.Role{}
	r.store.users[row.ID] = row
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	for _, u := range r.store.users {
		if u.Username == username {
			return r.withRole(u), nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return r.withRole(u), nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return r.find(ctx, func(entity.User) bool { return true })
}

func (r *userRepository) FindByRole(ctx context.Context, roleID int) ([]entity.User, error) {
	return r.find(ctx, func(u entity.User) bool { return u.RoleID == roleID })
}

func (r *userRepository) CountByRole(ctx context.Context, roleID int) (int64, error) {
	users, err := r.FindByRole(ctx, roleID)
	return int64(len(users)), err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	return int64(len(r.store.users)), nil
}

func (r *userRepository) find(ctx context.Context, match func(entity.User) bool) ([]entity.User, error) {
	r.store.rlock(ctx)
	defer r.store.runlock(ctx)
	users := make([]entity.User, 0)
	for _, u := range r.store.users {
		if match(u) {
			users = append(users, *r.withRole(u))
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].Username < users[j].Username
	})
	return users, nil
}

func (r *userRepository) withRole(u entity.User) *entity.User {
	u.Role = r.store.roles[u.RoleID]
	return &u
}

type otpRepository struct {
	store *Store
}

func NewOtpRepository(store *Store) domainRepo.OtpRepository {
	return &otpRepository{store: store}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.Otp) error {
	r.store.wlock(ctx)
	defer r.store.wunlock(ctx)
	for _, o := range r.store.otps {
		if o.Token == otp.Token {
			return duplicateKey("otps_token_key")
		}
	}
	r.store.nextOtpID++
	otp.ID = r.store.nextOtpID
	otp.CreatedAt = stamp(otp.CreatedAt)
	r.store.otps[otp.ID] = *otp
	return nil
}

// Otps returns the stored one-time tokens of a user.
func (s *Store) Otps(userID uuid.UUID) []entity.Otp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	otps := make([]entity.Otp, 0)
	for _, o := range s.otps {
		if o.UserID == userID {
			otps = append(otps, o)
		}
	}
	return otps
}
