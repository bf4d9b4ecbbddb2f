package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bilimly/bilimly-api/internal/models"
	appErrors "github.com/bilimly/bilimly-api/pkg/errors"
	"github.com/bilimly/bilimly-api/pkg/export"
)

type userRepository interface {
	FindActiveByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, int, error)
}

// UserService serves profile lookups and the admin roster.
type UserService struct {
	repo   userRepository
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(repo userRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		repo:   repo,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// Profile returns the active user behind the given identifier.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// List returns every user ordered by registration time descending.
func (s *UserService) List(ctx context.Context) (*models.UserList, error) {
	users, total, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	if users == nil {
		users = []models.User{}
	}
	return &models.UserList{Users: users, Total: total}, nil
}

// Export renders the user roster in the requested format and returns the
// file bytes together with their MIME type.
func (s *UserService) Export(ctx context.Context, format string) ([]byte, string, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	table := export.Table{
		Headers: []string{"ID", "Full Name", "Email", "Phone", "Class Level", "Active", "Trial Used", "Registered At"},
	}
	for _, u := range list.Users {
		table.Rows = append(table.Rows, []string{
			u.ID,
			u.FullName,
			u.Email,
			u.Phone,
			u.ClassLevel,
			fmt.Sprintf("%t", u.IsActive),
			fmt.Sprintf("%t", u.TrialUsed),
			u.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}

	switch format {
	case "csv":
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return data, s.csv.ContentType(), nil
	case "pdf":
		data, err := s.pdf.Render(table, "User Roster")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return data, s.pdf.ContentType(), nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
