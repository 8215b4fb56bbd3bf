package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the settlement state of a payment transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// Transaction is an immutable payment record. Rows are written by the
// payment webhook outside this service; here they are only read back for
// the owning user.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Amount          int64 // minor currency units
	Currency        string
	Status          TransactionStatus
	Type            string
	ExternalOrderID string
	PointsAdded     int
	CreatedAt       time.Time
}
