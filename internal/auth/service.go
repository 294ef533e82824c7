package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

// EmployeeReader is the slice of the employee repository the
// authentication workflow needs: a by-email lookup that includes the
// stored password hash.
type EmployeeReader interface {
	GetByEmail(ctx context.Context, email string) (*employee.Employee, error)
}

// TokenGenerator creates signed session tokens.
type TokenGenerator interface {
	GenerateToken(employeeID, email string) (string, error)
}

// Claims are the session token claims: the record's id and email.
type Claims struct {
	EmployeeID string `json:"id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// JWTTokenGenerator signs HS256 tokens with a server-held secret. The
// secret and lifetime come from configuration; there is no built-in
// fallback secret.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// GenerateToken creates a signed, time-limited session token.
func (j *JWTTokenGenerator) GenerateToken(employeeID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		EmployeeID: employeeID,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   employeeID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ParseToken verifies a token's signature and expiry and returns its claims.
func (j *JWTTokenGenerator) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// Service is the authentication workflow.
type Service struct {
	employees EmployeeReader
	tokens    TokenGenerator
	logger    *slog.Logger
}

func NewService(employees EmployeeReader, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		tokens:    tokens,
		logger:    logger,
	}
}

// Authenticate validates credentials and issues a session token. An
// unknown email is reported as not found; a wrong password as
// unauthorized. A registered record with no stored hash should not
// exist, and is reported as invalid state instructing re-registration.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		s.logger.Error("login: lookup failed", "error", err)
		return nil, internal.NewInternalError("Server error during login", err)
	}

	if emp.PasswordHash == "" {
		s.logger.Error("login: stored password hash missing", "employee_id", emp.ID)
		return nil, internal.ErrStoredHashMissing
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(emp.ID, emp.Email)
	if err != nil {
		s.logger.Error("login: token generation failed", "error", err, "employee_id", emp.ID)
		return nil, internal.NewInternalError("Server error during login", err)
	}

	s.logger.Info("login successful", "employee_id", emp.ID)

	return &LoginResult{Token: token, Employee: emp}, nil
}
