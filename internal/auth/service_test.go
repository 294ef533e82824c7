package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/auth"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockEmployeeReader struct {
	records map[string]*employee.Employee
}

func (m *mockEmployeeReader) GetByEmail(_ context.Context, email string) (*employee.Employee, error) {
	if emp, ok := m.records[email]; ok {
		return emp, nil
	}
	return nil, employee.ErrNotFound
}

var _ = ginkgo.Describe("AuthService", func() {
	const (
		secret   = "test-secret-test-secret-test-secret!"
		tokenTTL = time.Hour
	)

	var (
		service *auth.Service
		reader  *mockEmployeeReader
		tokens  *auth.JWTTokenGenerator
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.MinCost)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		reader = &mockEmployeeReader{
			records: map[string]*employee.Employee{
				"ann@x.com": {
					ID:           "0f8fad5b-d9cb-469f-a165-70867728950e",
					EmployeeCode: "EMP-20260830-1234",
					FirstName:    "Ann",
					LastName:     "Lee",
					Email:        "ann@x.com",
					PasswordHash: string(hash),
				},
				"broken@x.com": {
					ID:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
					Email: "broken@x.com",
				},
			},
		}
		tokens = auth.NewJWTTokenGenerator(secret, tokenTTL)
		service = auth.NewService(reader, tokens, slog.Default())
		ctx = context.Background()
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("issues a signed token carrying id and email claims", func() {
			result, err := service.Authenticate(ctx, auth.LoginDTO{Email: "ann@x.com", Password: "Secret123"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(result.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(result.Employee.Email).To(gomega.Equal("ann@x.com"))

			claims, err := tokens.ParseToken(result.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.EmployeeID).To(gomega.Equal("0f8fad5b-d9cb-469f-a165-70867728950e"))
			gomega.Expect(claims.Email).To(gomega.Equal("ann@x.com"))
			gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", time.Now().Add(tokenTTL), time.Minute))
		})

		ginkgo.It("rejects missing credentials", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "ann@x.com"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeMissingCredentials))
		})

		ginkgo.It("reports an unregistered email as not found", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "nobody@x.com", Password: "Secret123"})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmployeeNotFound))
			appErr, _ := internal.IsAppError(err)
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(404))
		})

		ginkgo.It("rejects a wrong password as unauthorized", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "ann@x.com", Password: "wrong"})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
			appErr, _ := internal.IsAppError(err)
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(401))
		})

		ginkgo.It("flags a record with no stored hash as invalid state", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "broken@x.com", Password: "Secret123"})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrStoredHashMissing))
			appErr, _ := internal.IsAppError(err)
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
		})
	})

	ginkgo.Describe("JWTTokenGenerator", func() {
		ginkgo.It("rejects a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-another-secret-pad!", tokenTTL)
			token, err := other.GenerateToken("id", "ann@x.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = tokens.ParseToken(token)
			gomega.Expect(err).To(gomega.MatchError(auth.ErrInvalidToken))
		})

		ginkgo.It("rejects an expired token", func() {
			expired := auth.NewJWTTokenGenerator(secret, -time.Minute)
			token, err := expired.GenerateToken("id", "ann@x.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = tokens.ParseToken(token)
			gomega.Expect(err).To(gomega.MatchError(auth.ErrTokenExpired))
		})
	})
})
