package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

type reconnector interface {
	Reconnect(ctx context.Context) error
}

// AdminHandler exposes operator-only recovery endpoints.
type AdminHandler struct {
	db     reconnector
	logger *slog.Logger
}

func NewAdminHandler(db reconnector, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{db: db, logger: logger}
}

type reconnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Reconnect forcibly tears down the database pool and re-establishes it.
// On failure the pool stays closed; subsequent health checks report the
// degraded state until a retry succeeds.
func (h *AdminHandler) Reconnect(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	h.logger.InfoContext(r.Context(), "forcing database reconnect")

	if err := h.db.Reconnect(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "database reconnect failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, reconnectResponse{
			Success: false,
			Error:   "reconnect failed",
		})
		return
	}

	h.logger.InfoContext(r.Context(), "database reconnected")
	writeJSON(w, http.StatusOK, reconnectResponse{
		Success: true,
		Message: "database reconnected",
	})
}
