package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/config"
	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token into a user identity and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error)
}

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Config      *config.Config
	Logger      *slog.Logger
	Auth        *AuthHandler
	User        *UserHandler
	Letter      *LetterHandler
	Billing     *BillingHandler
	Health      *HealthHandler
	Admin       *AdminHandler
	Validator   TokenValidator
	RateLimiter *middleware.RateLimiter
}

// NewRouter wires all handlers behind the shared middleware chain.
// The auth middleware only resolves identity; the service layer enforces
// the gate, so unauthenticated calls reach it and come back 401.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", deps.Health.Check)
	mux.HandleFunc("POST /auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	// Authenticated
	mux.HandleFunc("GET /me", deps.User.Me)
	mux.HandleFunc("POST /credits/restore", deps.User.RestoreCredits)
	mux.HandleFunc("POST /quota/restore", deps.User.RestoreQuota)
	mux.HandleFunc("POST /letters", deps.Letter.Save)
	mux.HandleFunc("GET /letters", deps.Letter.List)
	mux.HandleFunc("GET /letters/{id}", deps.Letter.Get)
	mux.HandleFunc("GET /transactions", deps.Billing.ListTransactions)

	// Operator-only
	mux.HandleFunc("POST /db/reconnect", deps.Admin.Reconnect)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.Config.CORS),
	}
	if deps.Config.RateLimit.Enabled && deps.RateLimiter != nil {
		mws = append(mws, deps.RateLimiter.Limit(deps.Config.RateLimit.PerMinute))
	}
	mws = append(mws, middleware.Auth(deps.Validator))

	return middleware.Chain(mws...)(mux)
}
