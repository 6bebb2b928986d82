package input

import (
	"context"

	"regportal/internal/domain"
	"regportal/internal/domain/entities"
)

// RegistrationUseCase is the Ledger surface consumed by the presentation
// layer. Every write to the registration store goes through Submit.
type RegistrationUseCase interface {
	// LoadAll returns every registration, newest first. On store failure it
	// returns an empty slice together with domain.ErrStoreUnavailable so the
	// caller can render a degraded view instead of crashing.
	LoadAll(ctx context.Context) ([]entities.Registration, error)

	// AggregateCounts is a pure function over regs.
	AggregateCounts(regs []entities.Registration) domain.Aggregate

	// IsEventOpen reports whether event can still accept a registration
	// under the active capacity policy.
	IsEventOpen(ctx context.Context, event string) (bool, error)

	// EmailRegistered reports whether a registration with email exists.
	EmailRegistered(ctx context.Context, email string) (bool, error)

	// Submit validates, capacity-checks and stores a registration.
	Submit(ctx context.Context, reg entities.Registration) (*entities.Registration, error)
}
