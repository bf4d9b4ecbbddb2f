package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bilimly/bilimly-api/internal/models"
	"github.com/bilimly/bilimly-api/internal/repository"
	"github.com/bilimly/bilimly-api/internal/security"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
)

type authUserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthService provides the registration and login use cases.
type AuthService struct {
	repo      authUserRepository
	tokens    *security.TokenManager
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, tokens *security.TokenManager, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, tokens: tokens, validator: validate, logger: logger}
}

// Register creates a new user account and issues a token bound to it.
//
// The email existence check and the insert are deliberately not wrapped
// in a transaction, matching the legacy service; the UNIQUE constraint
// on users.email backstops concurrent duplicate registrations.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing user")
	}
	if exists {
		return nil, appErrors.ErrEmailTaken
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		ClassLevel:   req.ClassLevel,
		PasswordHash: hash,
		IsActive:     true,
		TrialUsed:    false,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.ErrEmailTaken
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue token")
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))

	return &models.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      *user,
	}, nil
}

// Login authenticates a user by email and password and issues a token.
//
// Unknown emails, inactive accounts, and wrong passwords all map to the
// same generic error to prevent account enumeration.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}

	user, err := s.repo.FindActiveByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if !security.CheckPassword(user.PasswordHash, req.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue token")
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
		User:      *user,
	}, nil
}

// validationMessage turns the first validator failure into a client-facing
// "field required" style message.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fieldName(fe.Field()))
		case "email":
			return "email must be a valid email address"
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", fieldName(fe.Field()), fe.Param())
		}
	}
	return "invalid request payload"
}

func fieldName(name string) string {
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}
