package employee

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Employee is the persisted identity record. PasswordHash is never
// serialized; read projections go through EmployeeResponse.
type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	EmployeeCode string    `json:"employeeCode" gorm:"column:employee_code;uniqueIndex;not null"`
	FirstName    string    `json:"firstName" gorm:"column:first_name;not null"`
	LastName     string    `json:"lastName" gorm:"column:last_name;not null"`
	DateOfBirth  time.Time `json:"dateOfBirth" gorm:"column:date_of_birth;type:date;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"column:phone_number;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// Domain errors. The postgres repository translates storage-level
// conditions (missing row, unique-index violation) into these.
var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateCode  = errors.New("employee code already exists")
)

// NewEmployeeCode derives a human-readable secondary identifier of the
// form EMP-YYYYMMDD-NNNN with a uniform 4-digit suffix. The 9000-value
// suffix space makes collisions possible under load; the unique index on
// employee_code is the authoritative guard and a collision surfaces as
// ErrDuplicateCode at insert time.
func NewEmployeeCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generate employee code: %w", err)
	}
	datePart := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("EMP-%s-%d", datePart, n.Int64()+1000), nil
}

// HashPassword derives the stored credential from a plaintext password.
// bcrypt salts each hash individually. An empty plaintext fails the
// operation rather than silently producing a hash of "".
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
