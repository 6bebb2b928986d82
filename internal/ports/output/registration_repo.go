package output

import (
	"context"

	"regportal/internal/domain/entities"
)

// RegistrationRepository is the durable registration store. Registrations are
// append-only: there is no update or delete.
type RegistrationRepository interface {
	// List returns every registration ordered by created_at descending.
	List(ctx context.Context) ([]entities.Registration, error)

	// FindByEmail returns the registration with that exact email,
	// or nil when none exists.
	FindByEmail(ctx context.Context, email string) (*entities.Registration, error)

	// CreateWithinCapacity inserts reg only while the number of existing
	// registrations across categoryEvents is below ceiling, atomically with
	// the count. It fills in the store-assigned ID and CreatedAt on success.
	// Returns domain.ErrDuplicateEmail on a unique-email conflict and
	// domain.ErrCapacityExceeded when the ceiling has been reached.
	CreateWithinCapacity(ctx context.Context, reg *entities.Registration, categoryEvents []string, ceiling int) error

	// CountByEvent returns the number of registrations per event name.
	CountByEvent(ctx context.Context) (map[string]int64, error)
}
