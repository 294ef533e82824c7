package auth

import (
	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (d LoginDTO) Validate() *internal.AppError {
	if d.Email == "" || d.Password == "" {
		return internal.NewValidationError("Email and password required", internal.ErrCodeMissingCredentials)
	}
	return nil
}

// LoginResult carries the issued token and the record projection
// returned on successful authentication.
type LoginResult struct {
	Token    string
	Employee *employee.Employee
}
