package employee

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-directory/internal"
)

// Repository defines the data access methods for employee records.
// GetByEmail returns the full record including the password hash; every
// other read is projected through EmployeeResponse before leaving the
// service layer.
type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	GetAll(ctx context.Context) ([]*Employee, error)
	Search(ctx context.Context, query string) ([]*Employee, error)
}

// Service handles registration and directory queries.
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register runs the registration workflow. The step order is part of the
// contract: presence and confirmation checks, duplicate-email lookup,
// date parsing, then derivation (employee code before hash) and the
// single persisted write. The unique indexes on email and employee_code
// are the safety net for races between the pre-check and the insert.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByEmail(ctx, dto.Email)
	if err == nil {
		return nil, internal.ErrEmailRegistered
	}
	if !errors.Is(err, ErrNotFound) {
		s.logger.Error("register: email lookup failed", "error", err)
		return nil, internal.NewInternalError("Server error during registration", err)
	}

	dob, err := dto.ParseDateOfBirth()
	if err != nil {
		return nil, internal.NewValidationError("Invalid date of birth format", internal.ErrCodeInvalidDate)
	}

	code, err := NewEmployeeCode()
	if err != nil {
		s.logger.Error("register: employee code generation failed", "error", err)
		return nil, internal.NewInternalError("Server error during registration", err)
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("register: password hashing failed", "error", err)
		return nil, internal.NewInternalError("Server error during registration", err)
	}

	emp := &Employee{
		EmployeeCode: code,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		DateOfBirth:  dob,
		Email:        dto.Email,
		PhoneNumber:  dto.PhoneNumber,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return nil, internal.ErrEmailRegistered
		case errors.Is(err, ErrDuplicateCode):
			return nil, internal.ErrEmployeeCodeTaken
		default:
			s.logger.Error("register: insert failed", "error", err, "email", dto.Email)
			return nil, internal.NewInternalError("Server error during registration", err)
		}
	}

	s.logger.Info("employee registered",
		"employee_id", emp.ID,
		"employee_code", emp.EmployeeCode)

	return emp, nil
}

// GetAll returns every record. An empty directory is reported as not
// found, matching the documented endpoint behavior.
func (s *Service) GetAll(ctx context.Context) ([]*Employee, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("directory: list failed", "error", err)
		return nil, internal.NewInternalError("Server error", err)
	}
	if len(employees) == 0 {
		return nil, internal.ErrNoEmployees
	}
	return employees, nil
}

// GetByID validates the identifier shape before touching storage.
func (s *Service) GetByID(ctx context.Context, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, internal.NewValidationError("Invalid employee id", internal.ErrCodeInvalidID)
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		s.logger.Error("directory: get by id failed", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("Server error", err)
	}
	return emp, nil
}

// Search performs a case-insensitive literal substring match over first
// name, last name and email. An empty result set is not an error here,
// unlike GetAll.
func (s *Service) Search(ctx context.Context, query string) ([]*Employee, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, internal.NewValidationError("Query param 'q' is required", internal.ErrCodeMissingQuery)
	}

	employees, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("directory: search failed", "error", err, "query", query)
		return nil, internal.NewInternalError("Server error", err)
	}
	return employees, nil
}
