package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/converter"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/entity"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/domain/repository"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameExists   = errors.New("username already exists")
	ErrInvalidUserName  = errors.New("name is required")
	ErrInvalidUsername  = errors.New("username is required")
	ErrInvalidSecurityQ = errors.New("security question and answer are required")
)

type UserUsecase interface {
	CreateSalesAgent(ctx context.Context, adminID uuid.UUID, req *dto.CreateSalesAgentRequest) (*dto.UserResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*dto.UserProfileResponse, error)
	ListSalesAgents(ctx context.Context) (*dto.UserListResponse, error)
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
}

type userUsecase struct {
	log             *logrus.Logger
	txManager       repository.TxManager
	userRepo        repository.UserRepository
	otpRepo         repository.OtpRepository
	saleRepo        repository.SaleRepository
	auditService    service.AuditService
	defaultPassword string
}

func NewUserUsecase(
	log *logrus.Logger,
	txManager repository.TxManager,
	userRepo repository.UserRepository,
	otpRepo repository.OtpRepository,
	saleRepo repository.SaleRepository,
	auditService service.AuditService,
	defaultPassword string,
) UserUsecase {
	return &userUsecase{
		log:             log,
		txManager:       txManager,
		userRepo:        userRepo,
		otpRepo:         otpRepo,
		saleRepo:        saleRepo,
		auditService:    auditService,
		defaultPassword: defaultPassword,
	}
}

// CreateSalesAgent creates a sales-role user together with its one-time
// token record.
func (u *userUsecase) CreateSalesAgent(ctx context.Context, adminID uuid.UUID, req *dto.CreateSalesAgentRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	username := strings.TrimSpace(req.Username)
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if name == "" {
		return nil, ErrInvalidUserName
	}
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if question == "" || answer == "" {
		return nil, ErrInvalidSecurityQ
	}

	existing, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	password := req.Password
	if password == "" {
		password = u.defaultPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:     name,
		Username: username,
		Password: string(hashedPassword),
		RoleID:   entity.RoleIDSales,
		IsActive: true,
	}

	err = u.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}

		otp := &entity.Otp{
			UserID:   user.ID,
			Question: question,
			Answer:   answer,
			Token:    uuid.New().String(),
		}
		if err := u.otpRepo.Create(ctx, otp); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, adminID, entity.AuditActionSalesAgentCreate, "user",
			user.ID.String(), entity.JSON{"name": user.Name, "username": user.Username})
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		u.log.Warnf("Failed to create sales agent: %+v", err)
		return nil, err
	}

	user.Role = entity.Role{ID: entity.RoleIDSales, RoleName: entity.RoleSales}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Profile(ctx context.Context, userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := u.saleRepo.StatsByUser(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to aggregate sales of user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.UserProfileResponse{
		TotalSales: stats.TotalSales,
		TotalPrice: stats.TotalAmount,
		Name:       user.Name,
		Username:   user.Username,
	}, nil
}

func (u *userUsecase) ListSalesAgents(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindByRole(ctx, entity.RoleIDSales)
	if err != nil {
		u.log.Warnf("Failed to find sales agents: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}
