// Package notify carries the post-commit registration event from the Ledger
// to its consumers (mailer, organizer announcements). Delivery is best-effort
// by design: a lost notification never invalidates a stored registration.
package notify

import (
	"time"

	"regportal/internal/domain/entities"
)

// Subject for registration events on the bus.
const SubjectRegistrationCreated = "registration.created"

// RegistrationCreated is the wire format published after a successful insert.
type RegistrationCreated struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	StudentName string    `json:"student_name"`
	CollegeName string    `json:"college_name"`
	EventName   string    `json:"event_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func fromRegistration(reg entities.Registration) RegistrationCreated {
	return RegistrationCreated{
		ID:          reg.ID,
		Email:       reg.Email,
		StudentName: reg.StudentName,
		CollegeName: reg.CollegeName,
		EventName:   reg.EventName,
		CreatedAt:   reg.CreatedAt,
	}
}
