package employee

import (
	"time"

	"github.com/frahmantamala/employee-directory/internal"
)

// RegisterDTO is the transport shape for registration requests.
// ConfirmPassword is workflow input only and is never persisted.
type RegisterDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate checks field presence first, then the password confirmation.
// Date parsing is deliberately not done here: the workflow parses the
// date only after the duplicate-email check.
func (d RegisterDTO) Validate() *internal.AppError {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"dateOfBirth", d.DateOfBirth},
		{"email", d.Email},
		{"phoneNumber", d.PhoneNumber},
		{"password", d.Password},
		{"confirmPassword", d.ConfirmPassword},
	}

	var missing []internal.ValidationError
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, internal.ValidationError{
				Field:   f.name,
				Message: f.name + " is required",
			})
		}
	}
	if len(missing) > 0 {
		return internal.NewValidationError("All fields are required", internal.ErrCodeMissingFields).
			WithDetails(internal.ValidationErrors{Errors: missing})
	}

	if d.Password != d.ConfirmPassword {
		return internal.NewValidationError("Passwords do not match", internal.ErrCodePasswordMismatch)
	}

	return nil
}

// ParseDateOfBirth accepts the documented YYYY-MM-DD form and, for
// clients that send full timestamps, RFC 3339.
func (d RegisterDTO) ParseDateOfBirth() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", d.DateOfBirth); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, d.DateOfBirth)
}

// EmployeeResponse is the read-shape projection returned to API callers.
// It is the only consumer-facing view of a record and carries no
// password material.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employeeCode"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	DateOfBirth  string    `json:"dateOfBirth"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		DateOfBirth:  e.DateOfBirth.Format("2006-01-02"),
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToResponseList(employees []*Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = ToResponse(e)
	}
	return out
}
