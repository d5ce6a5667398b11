package ports

import (
	"context"

	"courierops/internal/core/domain/model/account"
	"courierops/internal/core/domain/model/kernel"
)

// UserRepository defines the slice of the user account store the marketplace
// engine needs: resolving and flipping account roles. Account management
// itself lives elsewhere.
type UserRepository interface {
	// GetRole returns the role of the given user account.
	// Returns an object-not-found error when the user does not exist.
	GetRole(ctx context.Context, userID kernel.UUID) (account.Role, error)

	// SetRole updates the role of the given user account.
	// Returns an object-not-found error when the user does not exist.
	SetRole(ctx context.Context, userID kernel.UUID, role account.Role) error
}
