package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed || s == OrderStatusCancelled
}

// Order is the persistent record of one checkout attempt. Amount is a snapshot
// of the package price taken at creation time and never changes afterwards.
type Order struct {
	ID                   string
	UserID               string
	PackageID            string
	Amount               decimal.Decimal
	Status               OrderStatus
	GatewaySessionToken  string
	GatewayTransactionID string
	FailureReason        string
	CompletedAt          *time.Time
	CreatedAt            time.Time
}

// CheckoutSession is what the caller needs to send the buyer to the gateway.
type CheckoutSession struct {
	OrderID             string
	Token               string
	CheckoutFormContent string
	PaymentPageURL      string
}

type ReconcileOutcome string

const (
	ReconcileOutcomeSuccess ReconcileOutcome = "success"
	ReconcileOutcomeFailure ReconcileOutcome = "failure"
)

// ReconcileResult reports what a callback reconciliation did. Duplicate is set
// when the order was already in the matching terminal state and this call
// changed nothing.
type ReconcileResult struct {
	Order     *Order
	Outcome   ReconcileOutcome
	Message   string
	PaymentID string
	Duplicate bool
}
