package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"regportal/internal/domain"
	"regportal/internal/domain/entities"
	"regportal/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

const uniqueViolation = "23505"

// RegistrationRepository implements output.RegistrationRepository using pgx.
type RegistrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository creates a RegistrationRepository.
func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

func (r *RegistrationRepository) List(ctx context.Context) ([]entities.Registration, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []entities.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

func (r *RegistrationRepository) FindByEmail(ctx context.Context, email string) (*entities.Registration, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE email = $1`, email)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration by email: %w", err)
	}
	return &reg, nil
}

// CreateWithinCapacity inserts reg while the category count is below ceiling.
// Count and insert run in one transaction serialized by an advisory lock on
// the category, so two concurrent submitters cannot both pass the count.
// The unique index on email turns duplicate submissions into
// domain.ErrDuplicateEmail.
func (r *RegistrationRepository) CreateWithinCapacity(ctx context.Context, reg *entities.Registration, categoryEvents []string, ceiling int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	lockKey := strings.Join(categoryEvents, "|")
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return fmt.Errorf("category lock: %w", err)
	}

	var count int64
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_name = ANY($1)`, categoryEvents).Scan(&count); err != nil {
		return fmt.Errorf("count category registrations: %w", err)
	}
	if count >= int64(ceiling) {
		return domain.ErrCapacityExceeded
	}

	var (
		id        int64
		createdAt time.Time
	)
	err = tx.QueryRow(ctx,
		`INSERT INTO registrations
			(email, student_name, college_name, department, year, phone,
			 team_member1, team_member2, team_member3, event_name, uploaded_file_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		reg.Email, reg.StudentName, reg.CollegeName, reg.Department, reg.Year, reg.Phone,
		reg.TeamMember1, reg.TeamMember2, reg.TeamMember3, reg.EventName, reg.UploadedFilePath,
	).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	reg.ID = uint(id)
	reg.CreatedAt = createdAt
	return nil
}

func (r *RegistrationRepository) CountByEvent(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT event_name, COUNT(*) FROM registrations GROUP BY event_name`)
	if err != nil {
		return nil, fmt.Errorf("count by event: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			name string
			n    int64
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by event: %w", err)
	}
	return counts, nil
}
