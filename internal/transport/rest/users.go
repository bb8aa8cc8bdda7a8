package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/internal/service/user"
)

type userAdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]user.Account, int, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*user.Account, error)
	UpdateUser(ctx context.Context, targetID uuid.UUID, input user.UpdateUserInput) (*user.Account, error)
	ToggleActive(ctx context.Context, targetID uuid.UUID) (*user.Account, error)
	ResetPassword(ctx context.Context, targetID uuid.UUID) (string, error)
}

// UserAdminHandler serves account management for administrators.
type UserAdminHandler struct {
	svc userAdminService
	log *slog.Logger
}

// NewUserAdminHandler creates a UserAdminHandler.
func NewUserAdminHandler(svc userAdminService, logger *slog.Logger) *UserAdminHandler {
	return &UserAdminHandler{svc: svc, log: logger.With("handler", "admin_users")}
}

type createUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	IsActive  *bool  `json:"is_active"`
}

type updateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsActive  *bool   `json:"is_active"`
	Role      *string `json:"role"`
}

type resetPasswordResponse struct {
	Password string `json:"password"`
}

// List handles GET /api/admin/users.
func (h *UserAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, total, err := h.svc.ListUsers(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]userResponse, len(accounts))
	for i := range accounts {
		items[i] = toUserResponse(&accounts[i].User, accounts[i].Role)
	}
	writeJSON(w, http.StatusOK, pageResponse[userResponse]{Items: items, Total: total})
}

// Create handles POST /api/admin/users.
func (h *UserAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	acc, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
		Inactive:  req.IsActive != nil && !*req.IsActive,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(&acc.User, acc.Role))
}

// Update handles PUT /api/admin/users/{id}.
func (h *UserAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	acc, err := h.svc.UpdateUser(r.Context(), id, user.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
		Role:      req.Role,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(&acc.User, acc.Role))
}

// ToggleActive handles POST /api/admin/users/{id}/toggle-active.
func (h *UserAdminHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	acc, err := h.svc.ToggleActive(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(&acc.User, acc.Role))
}

// ResetPassword handles POST /api/admin/users/{id}/reset-password. The
// generated password is returned once.
func (h *UserAdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	password, err := h.svc.ResetPassword(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resetPasswordResponse{Password: password})
}

func (h *UserAdminHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
