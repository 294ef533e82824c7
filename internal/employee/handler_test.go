package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
)

type mockService struct {
	registerResult *employee.Employee
	registerErr    error
	allResult      []*employee.Employee
	allErr         error
	byIDResult     *employee.Employee
	byIDErr        error
	searchResult   []*employee.Employee
	searchErr      error
}

func (m *mockService) Register(_ context.Context, _ employee.RegisterDTO) (*employee.Employee, error) {
	return m.registerResult, m.registerErr
}

func (m *mockService) GetAll(_ context.Context) ([]*employee.Employee, error) {
	return m.allResult, m.allErr
}

func (m *mockService) GetByID(_ context.Context, _ string) (*employee.Employee, error) {
	return m.byIDResult, m.byIDErr
}

func (m *mockService) Search(_ context.Context, _ string) ([]*employee.Employee, error) {
	return m.searchResult, m.searchErr
}

func sampleEmployee() *employee.Employee {
	return &employee.Employee{
		ID:           "0f8fad5b-d9cb-469f-a165-70867728950e",
		EmployeeCode: "EMP-20260830-1234",
		FirstName:    "Ann",
		LastName:     "Lee",
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:        "ann@x.com",
		PhoneNumber:  "555-0100",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

var _ = ginkgo.Describe("EmployeeHandler", func() {
	var (
		svc    *mockService
		router *chi.Mux
	)

	ginkgo.BeforeEach(func() {
		svc = &mockService{}
		handler := employee.NewHandler(svc)

		router = chi.NewRouter()
		router.Post("/api/auth/register", handler.Register)
		router.Get("/api/auth/all", handler.GetAll)
		router.Get("/api/auth/search", handler.Search)
		router.Get("/api/auth/{id}", handler.GetByID)
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("returns 201 with the record subset and no password material", func() {
			svc.registerResult = sampleEmployee()

			body, _ := json.Marshal(map[string]string{"firstName": "Ann"})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(strings.ToLower(rec.Body.String())).ToNot(gomega.ContainSubstring("password"))

			var resp struct {
				Msg      string                    `json:"msg"`
				Employee employee.EmployeeResponse `json:"employee"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Msg).To(gomega.Equal("Employee registered successfully"))
			gomega.Expect(resp.Employee.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(resp.Employee.EmployeeCode).To(gomega.Equal("EMP-20260830-1234"))
			gomega.Expect(resp.Employee.DateOfBirth).To(gomega.Equal("1990-01-01"))
		})

		ginkgo.It("returns 400 on a malformed body", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("maps a conflict to 409 with its message", func() {
			svc.registerErr = internal.ErrEmailRegistered

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{}"))

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusConflict))

			var resp map[string]string
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp["msg"]).To(gomega.Equal("Email already registered"))
		})

		ginkgo.It("hides internal error detail behind a generic message", func() {
			svc.registerErr = internal.NewInternalError("Server error during registration", context.DeadlineExceeded)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{}"))

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))
			gomega.Expect(rec.Body.String()).ToNot(gomega.ContainSubstring("deadline"))
		})
	})

	ginkgo.Describe("GetAll", func() {
		ginkgo.It("returns the list with a count", func() {
			svc.allResult = []*employee.Employee{sampleEmployee()}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/all", nil)

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var resp struct {
				Msg       string                      `json:"msg"`
				Count     int                         `json:"count"`
				Employees []employee.EmployeeResponse `json:"employees"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Count).To(gomega.Equal(1))
			gomega.Expect(resp.Employees).To(gomega.HaveLen(1))
		})

		ginkgo.It("maps an empty directory to 404", func() {
			svc.allErr = internal.ErrNoEmployees

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/all", nil)

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.It("maps an invalid id to 400", func() {
			svc.byIDErr = internal.NewValidationError("Invalid employee id", internal.ErrCodeInvalidID)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/nope", nil)

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Search", func() {
		ginkgo.It("returns a zero count for an empty result set", func() {
			svc.searchResult = nil

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/search?q=zz", nil)

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var resp struct {
				Count     int                         `json:"count"`
				Employees []employee.EmployeeResponse `json:"employees"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Count).To(gomega.Equal(0))
		})

		ginkgo.It("maps a missing query to 400", func() {
			svc.searchErr = internal.NewValidationError("Query param 'q' is required", internal.ErrCodeMissingQuery)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/auth/search", nil)

			router.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})
})
