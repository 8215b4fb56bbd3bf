package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

type billingService interface {
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
}

// BillingHandler serves the payment history endpoint.
type BillingHandler struct {
	service billingService
	logger  *slog.Logger
}

func NewBillingHandler(service billingService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{service: service, logger: logger}
}

type transactionResponse struct {
	ID              string    `json:"id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	Type            string    `json:"type"`
	ExternalOrderID string    `json:"externalOrderId,omitempty"`
	PointsAdded     int       `json:"pointsAdded"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListTransactions returns the caller's payment history as a flat array,
// newest first. A user with no transactions gets an empty array, not an
// error.
func (h *BillingHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.ListTransactions(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	resp := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, transactionResponse{
			ID:              t.ID.String(),
			Amount:          t.Amount,
			Currency:        t.Currency,
			Status:          string(t.Status),
			Type:            t.Type,
			ExternalOrderID: t.ExternalOrderID,
			PointsAdded:     t.PointsAdded,
			CreatedAt:       t.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
