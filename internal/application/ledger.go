package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"regexp"
	"strings"
	"sync"

	"regportal/internal/domain"
	"regportal/internal/domain/entities"
	"regportal/internal/ports/output"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Ledger is the single authority through which registrations are created and
// counted. It keeps a derived aggregate of the store as a read-side cache;
// the store itself re-enforces uniqueness and capacity on insert, so a stale
// snapshot can reject early but never over-admit.
type Ledger struct {
	repo     output.RegistrationRepository
	notifier output.Notifier
	catalog  entities.Catalog
	ceiling  int

	mu     sync.RWMutex
	agg    domain.Aggregate
	loaded bool
}

// NewLedger wires the Ledger. ceiling is the per-category capacity.
func NewLedger(repo output.RegistrationRepository, notifier output.Notifier, catalog entities.Catalog, ceiling int) *Ledger {
	return &Ledger{
		repo:     repo,
		notifier: notifier,
		catalog:  catalog,
		ceiling:  ceiling,
	}
}

// Catalog returns the static event catalog the Ledger enforces against.
func (l *Ledger) Catalog() entities.Catalog {
	return l.catalog
}

// Ceiling returns the per-category capacity.
func (l *Ledger) Ceiling() int {
	return l.ceiling
}

// LoadAll fetches every registration ordered newest first and refreshes the
// cached aggregate. On store failure it returns an empty slice together with
// domain.ErrStoreUnavailable so callers degrade to an empty view.
func (l *Ledger) LoadAll(ctx context.Context) ([]entities.Registration, error) {
	regs, err := l.repo.List(ctx)
	if err != nil {
		log.Printf("ledger: load registrations: %v", err)
		return []entities.Registration{}, fmt.Errorf("list registrations: %w", domain.ErrStoreUnavailable)
	}
	l.setAggregate(domain.CountRegistrations(l.catalog, regs))
	return regs, nil
}

// AggregateCounts computes total, per-category and per-event counts over
// regs. Pure function, no side effects.
func (l *Ledger) AggregateCounts(regs []entities.Registration) domain.Aggregate {
	return domain.CountRegistrations(l.catalog, regs)
}

// IsEventOpen reports whether event's category ceiling has not been reached,
// given the current aggregate.
func (l *Ledger) IsEventOpen(ctx context.Context, event string) (bool, error) {
	cfg := l.catalog.Get(event)
	if cfg == nil {
		return false, domain.ErrUnknownEvent
	}
	agg, err := l.currentAggregate(ctx)
	if err != nil {
		return false, err
	}
	return agg.PerCategory[cfg.Category] < l.ceiling, nil
}

// EmailRegistered reports whether a registration with that exact email
// already exists. A pre-check only; the store's unique index is what
// actually enforces it.
func (l *Ledger) EmailRegistered(ctx context.Context, email string) (bool, error) {
	existing, err := l.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return false, fmt.Errorf("find by email: %w", domain.ErrStoreUnavailable)
	}
	return existing != nil, nil
}

// Submit runs the validate -> check -> write -> refresh sequence. The write
// is an atomic conditional insert, so concurrent submitters cannot both slip
// past a stale snapshot. The post-commit notification is detached: its
// failure is logged and does not change the outcome.
func (l *Ledger) Submit(ctx context.Context, reg entities.Registration) (*entities.Registration, error) {
	normalize(&reg)

	cfg := l.catalog.Get(reg.EventName)
	if fieldErrs := validate(reg, cfg); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	taken, err := l.EmailRegistered(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}

	// Re-check capacity against a fresh snapshot before writing.
	regs, err := l.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", domain.ErrStoreUnavailable)
	}
	agg := domain.CountRegistrations(l.catalog, regs)
	if agg.PerCategory[cfg.Category] >= l.ceiling {
		return nil, domain.ErrCapacityExceeded
	}

	err = l.repo.CreateWithinCapacity(ctx, &reg, l.catalog.NamesIn(cfg.Category), l.ceiling)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrCapacityExceeded):
		return nil, err
	default:
		return nil, fmt.Errorf("create registration: %w", domain.ErrStoreWrite)
	}

	// Refresh from a fresh load rather than a local increment, to stay
	// consistent with concurrent writers.
	if _, err := l.LoadAll(ctx); err != nil {
		log.Printf("ledger: refresh after insert: %v", err)
	}

	go func(stored entities.Registration) {
		if err := l.notifier.RegistrationCreated(context.WithoutCancel(ctx), stored); err != nil {
			log.Printf("ledger: notify registration %d: %v", stored.ID, err)
		}
	}(reg)

	return &reg, nil
}

func (l *Ledger) currentAggregate(ctx context.Context) (domain.Aggregate, error) {
	l.mu.RLock()
	loaded, agg := l.loaded, l.agg
	l.mu.RUnlock()
	if loaded {
		return agg, nil
	}
	if _, err := l.LoadAll(ctx); err != nil {
		return domain.Aggregate{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.agg, nil
}

func (l *Ledger) setAggregate(agg domain.Aggregate) {
	l.mu.Lock()
	l.agg = agg
	l.loaded = true
	l.mu.Unlock()
}

// normalize trims whitespace on all text fields and strips non-digits from
// the phone number before validation.
func normalize(reg *entities.Registration) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.StudentName = strings.TrimSpace(reg.StudentName)
	reg.CollegeName = strings.TrimSpace(reg.CollegeName)
	reg.Department = strings.TrimSpace(reg.Department)
	reg.TeamMember1 = strings.TrimSpace(reg.TeamMember1)
	reg.TeamMember2 = strings.TrimSpace(reg.TeamMember2)
	reg.TeamMember3 = strings.TrimSpace(reg.TeamMember3)
	reg.EventName = strings.TrimSpace(reg.EventName)

	var digits strings.Builder
	for _, r := range reg.Phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	reg.Phone = digits.String()
}

func validate(reg entities.Registration, cfg *entities.EventConfig) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if reg.Email == "" {
		errs["email"] = "required"
	} else if _, err := mail.ParseAddress(reg.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if reg.StudentName == "" {
		errs["student_name"] = "required"
	}
	if reg.CollegeName == "" {
		errs["college_name"] = "required"
	}
	if reg.Department == "" {
		errs["department"] = "required"
	}
	if reg.Year < 1 || reg.Year > 4 {
		errs["year"] = "must be between 1 and 4"
	}
	if reg.Phone != "" && !phonePattern.MatchString(reg.Phone) {
		errs["phone"] = "must be exactly 10 digits"
	}
	if reg.TeamMember1 == "" {
		errs["team_member1"] = "required"
	}

	if cfg == nil {
		errs["event_name"] = "unknown event"
		return errs
	}

	if reg.TeamSize() > cfg.MaxTeamMembers {
		errs["team_members"] = fmt.Sprintf("%s allows at most %d team members", cfg.Name, cfg.MaxTeamMembers)
	}
	if cfg.MaxTeamMembers < 3 && reg.TeamMember3 != "" {
		errs["team_member3"] = fmt.Sprintf("%s allows at most %d team members", cfg.Name, cfg.MaxTeamMembers)
	}
	if cfg.RequiresFile && reg.UploadedFilePath == "" {
		errs["uploaded_file_path"] = "presentation upload required"
	}
	if !cfg.RequiresFile && reg.UploadedFilePath != "" {
		errs["uploaded_file_path"] = "file upload not accepted for this event"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
