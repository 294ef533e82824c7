package employee

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/frahmantamala/employee-directory/pkg/logger"
)

type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterDTO) (*Employee, error)
	GetAll(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Search(ctx context.Context, query string) ([]*Employee, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

type registerResponse struct {
	Msg      string           `json:"msg"`
	Employee EmployeeResponse `json:"employee"`
}

type employeeResponse struct {
	Msg      string           `json:"msg"`
	Employee EmployeeResponse `json:"employee"`
}

type employeeListResponse struct {
	Msg       string             `json:"msg"`
	Count     int                `json:"count"`
	Employees []EmployeeResponse `json:"employees"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Register(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, registerResponse{
		Msg:      "Employee registered successfully",
		Employee: ToResponse(emp),
	})
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employeeListResponse{
		Msg:       "Employees fetched successfully",
		Count:     len(employees),
		Employees: ToResponseList(employees),
	})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employeeResponse{
		Msg:      "Employee fetched successfully",
		Employee: ToResponse(emp),
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employeeListResponse{
		Msg:       "Search results",
		Count:     len(employees),
		Employees: ToResponseList(employees),
	})
}
