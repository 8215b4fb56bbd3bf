package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	authsvc "github.com/amoura-app/amoura-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*authsvc.AuthResult, error)
	Login(ctx context.Context, in authsvc.LoginInput) (*authsvc.AuthResult, error)
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	service authService
	logger  *slog.Logger
}

func NewAuthHandler(service authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Credits    int       `json:"credits"`
	Quota      int       `json:"quota"`
	TotalUsage int       `json:"totalUsage"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Register(r.Context(), authsvc.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), authsvc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(result *authsvc.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		User: userResponse{
			ID:         result.User.ID.String(),
			Email:      result.User.Email,
			Name:       result.User.Name,
			Role:       result.User.Role.String(),
			Credits:    result.User.Credits,
			Quota:      result.User.Quota,
			TotalUsage: result.User.TotalUsage,
			CreatedAt:  result.User.CreatedAt,
		},
	}
}
