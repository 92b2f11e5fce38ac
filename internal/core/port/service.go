package port

import (
	"context"

	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	// InitializeCheckout creates a PENDING order for the package and opens a
	// gateway session for it.
	InitializeCheckout(ctx context.Context, userID string, packageID string) (*domain.CheckoutSession, error)

	// ReconcileCallback resolves a session token against the gateway and
	// applies the terminal transition exactly once. Safe to call any number
	// of times with the same token.
	ReconcileCallback(ctx context.Context, token string) (*domain.ReconcileResult, error)

	GetOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	GetCurrentCompletedOrder(ctx context.Context, userID string) (*domain.Order, error)
}
