package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	RestoreCredits(ctx context.Context) error
	RestoreQuota(ctx context.Context) error
}

// UserHandler serves the profile and balance-restore endpoints.
type UserHandler struct {
	service userService
	logger  *slog.Logger
}

func NewUserHandler(service userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger}
}

type restoreResponse struct {
	Success bool `json:"success"`
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role.String(),
		Credits:    user.Credits,
		Quota:      user.Quota,
		TotalUsage: user.TotalUsage,
		CreatedAt:  user.CreatedAt,
	})
}

func (h *UserHandler) RestoreCredits(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RestoreCredits(r.Context()); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, restoreResponse{Success: true})
}

func (h *UserHandler) RestoreQuota(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RestoreQuota(r.Context()); err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, restoreResponse{Success: true})
}
