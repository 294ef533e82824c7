package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/frahmantamala/employee-directory/internal/employee"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

// Create assigns the storage id and persists the record. A unique-index
// violation on email or employee_code is translated into the matching
// domain error so the workflow can report which field collided.
func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(emp).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// GetByID retrieves an employee by its storage id
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// GetByEmail retrieves the full record for an email, password hash
// included. Matching is literal, so email equality is case-sensitive.
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// GetAll retrieves every employee record
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

// Search matches the query as a literal, case-insensitive substring
// against first name, last name and email. LIKE wildcards in the query
// are escaped so they do not act as patterns.
func (r *EmployeeRepository) Search(ctx context.Context, query string) ([]*employee.Employee, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	var employees []*employee.Employee
	err := r.db.WithContext(ctx).
		Where(
			`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

// escapeLike escapes the LIKE metacharacters so query text matches
// literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// translateUniqueViolation maps a storage uniqueness failure to the
// domain error for the colliding column. Postgres reports SQLSTATE 23505
// with the constraint name; the sqlite driver used in tests only reports
// message text, so that form is matched as a fallback.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "employee_code") {
			return employee.ErrDuplicateCode
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return employee.ErrDuplicateEmail
		}
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key") {
		if strings.Contains(msg, "employee_code") {
			return employee.ErrDuplicateCode
		}
		if strings.Contains(msg, "email") {
			return employee.ErrDuplicateEmail
		}
	}
	return err
}
