package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/internal/data/entity"
	"github.com/BackamDavid/ecommerce-app/internal/data/repository"
	"github.com/BackamDavid/ecommerce-app/internal/dto/request"
	"github.com/BackamDavid/ecommerce-app/internal/dto/response"
	"github.com/BackamDavid/ecommerce-app/pkg/token"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   token.Manager
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens token.Manager,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role := req.Role
	if role == "" {
		role = string(entity.RoleUser)
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	tokenString, err := s.tokens.Generate(utils.Identity{Email: user.Email, Role: string(user.Role)})
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{Token: tokenString, Role: string(user.Role)}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	tokenString, err := s.tokens.Generate(utils.Identity{Email: user.Email, Role: string(user.Role)})
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{Token: tokenString, Role: string(user.Role)}, nil
}

// EnsureAdmin creates the configured bootstrap admin account if no user
// with its email exists yet.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	adminCfg := s.config.Admin
	if adminCfg.Email == "" || adminCfg.Password == "" {
		s.log.Warn("Admin seed skipped: ADMIN_EMAIL or ADMIN_PASS not configured")
		return nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, adminCfg.Email)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if existing != nil {
		s.log.Info("Admin account already exists", zap.String("email", adminCfg.Email))
		return nil
	}

	hashedPassword, err := utils.HashPassword(adminCfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         adminCfg.Name,
		Email:        adminCfg.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	s.log.Info("Admin account created", zap.String("email", adminCfg.Email))
	return nil
}
