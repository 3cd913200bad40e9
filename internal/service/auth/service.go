package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/UA-BookingService/internal/domain"
	userRepo "github.com/m04kA/UA-BookingService/internal/infra/storage/user"
	"github.com/m04kA/UA-BookingService/internal/service/auth/models"
)

// Service сервис аутентификации операторов
// Учетные записи лежат в листе пользователей внешнего хранилища,
// пароли хранятся bcrypt-хешами, сессия - HS256 JWT
type Service struct {
	userRepo  UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register регистрирует нового оператора
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) error {
	s.logger.Info("Register: registering user %q", req.Username)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed for %q: %v", req.Username, err)
		return err
	}

	// Проверяем, что имя пользователя свободно
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		s.logger.Warn("Register: username %q already taken", req.Username)
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error for %q: %v", req.Username, err)
		return fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Email:        strings.TrimSpace(req.Email),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		RegisteredAt: time.Now(),
	}

	if err := s.userRepo.Append(ctx, user); err != nil {
		s.logger.Error("Register: failed to store user %q: %v", req.Username, err)
		return fmt.Errorf("%w: Register - store user: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user %q registered", req.Username)
	return nil
}

// Login проверяет учетные данные и выдает токен доступа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	s.logger.Info("Login: user %q", req.Username)

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user %q not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for %q", req.Username)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub": user.Username,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user %q authenticated", req.Username)
	return &models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Username:  user.Username,
	}, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Surname) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Username) == "" ||
		req.Password == "" ||
		req.ConfirmPassword == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return nil
}
