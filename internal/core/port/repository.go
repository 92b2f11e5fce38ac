package port

import (
	"context"
	"time"

	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
)

// TerminalFields carries the columns written together with a terminal status.
// CompletedAt and GatewayTransactionID are set only on COMPLETED,
// FailureReason only on FAILED.
type TerminalFields struct {
	GatewayTransactionID string
	FailureReason        string
	CompletedAt          *time.Time
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ReadOrderByToken(ctx context.Context, token string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	ReadLatestCompletedByUser(ctx context.Context, userID string) (*domain.Order, error)

	// AttachSessionToken sets the gateway session token on a PENDING order
	// that does not have one yet. Single conditional update.
	AttachSessionToken(ctx context.Context, orderID string, token string) error

	// ApplyTerminalTransition atomically moves an order from `from` to `to`
	// and writes the terminal fields. It returns false, with no error, when
	// the order is no longer in `from` — the caller decides whether that is a
	// duplicate delivery or a conflict. No other write path may touch status.
	ApplyTerminalTransition(ctx context.Context, orderID string,
		from domain.OrderStatus, to domain.OrderStatus, fields TerminalFields) (bool, error)
}
