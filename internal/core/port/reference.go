package port

import (
	"context"

	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
)

// PackageCatalog and UserDirectory are the read-only external collaborators.
// The payment subsystem never writes through them.

//go:generate mockgen -source=reference.go -destination=mock/reference.go -package=mock
type PackageCatalog interface {
	ReadPackage(ctx context.Context, packageID string) (*domain.Package, error)
}

type UserDirectory interface {
	ReadUser(ctx context.Context, userID string) (*domain.User, error)
}
