package output

import (
	"context"

	"regportal/internal/domain/entities"
)

// Notifier receives the post-commit registration event. Delivery is
// best-effort: a failure is logged by the caller and never rolls back
// or fails the registration itself.
type Notifier interface {
	RegistrationCreated(ctx context.Context, reg entities.Registration) error
}
