package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regportal/internal/domain"
	"regportal/internal/domain/entities"
)

// These tests need a real PostgreSQL instance and are skipped unless
// TEST_DATABASE_URL is set, e.g.
//
//	TEST_DATABASE_URL=postgres://localhost:5432/regportal_test?sslmode=disable go test ./...
func testRepo(t *testing.T) *RegistrationRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, RunMigrations(dsn, "../../../migrations"))

	pool, err := NewPool(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE registrations RESTART IDENTITY`)
	require.NoError(t, err)

	return NewRegistrationRepository(pool)
}

func testRegistration(i int, event string) entities.Registration {
	return entities.Registration{
		Email:       fmt.Sprintf("student%d@college.edu", i),
		StudentName: fmt.Sprintf("Student %d", i),
		CollegeName: "S.A. Engineering College",
		Department:  "CSE",
		Year:        2,
		Phone:       "9876543210",
		TeamMember1: fmt.Sprintf("Student %d", i),
		EventName:   event,
	}
}

func TestCreateAndList(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	events := entities.DefaultCatalog().NamesIn(entities.CategoryNonTechnical)

	reg := testRegistration(1, "e-sports")
	require.NoError(t, repo.CreateWithinCapacity(ctx, &reg, events, 50))
	assert.NotZero(t, reg.ID)
	assert.False(t, reg.CreatedAt.IsZero())

	regs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, reg.Email, regs[0].Email)
	assert.Equal(t, reg.ID, regs[0].ID)
}

func TestFindByEmail(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	events := entities.DefaultCatalog().NamesIn(entities.CategoryNonTechnical)

	reg := testRegistration(1, "Cinephile")
	require.NoError(t, repo.CreateWithinCapacity(ctx, &reg, events, 50))

	found, err := repo.FindByEmail(ctx, reg.Email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, reg.ID, found.ID)

	missing, err := repo.FindByEmail(ctx, "nobody@college.edu")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateEmailRejected(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	events := entities.DefaultCatalog().NamesIn(entities.CategoryNonTechnical)

	first := testRegistration(1, "e-sports")
	require.NoError(t, repo.CreateWithinCapacity(ctx, &first, events, 50))

	second := testRegistration(1, "Cinephile")
	err := repo.CreateWithinCapacity(ctx, &second, events, 50)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestCeilingCountsWholeCategory(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	events := entities.DefaultCatalog().NamesIn(entities.CategoryNonTechnical)

	a := testRegistration(1, "e-sports")
	require.NoError(t, repo.CreateWithinCapacity(ctx, &a, events, 2))
	b := testRegistration(2, "Cinephile")
	require.NoError(t, repo.CreateWithinCapacity(ctx, &b, events, 2))

	c := testRegistration(3, "e-sports")
	err := repo.CreateWithinCapacity(ctx, &c, events, 2)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

// Concurrent submitters racing for the last seats must never exceed the
// ceiling; the advisory lock serializes the count-then-insert.
func TestConcurrentSubmitsHonorCeiling(t *testing.T) {
	repo := testRepo(t)
	events := entities.DefaultCatalog().NamesIn(entities.CategoryNonTechnical)

	const (
		ceiling = 5
		racers  = 20
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		wg       sync.WaitGroup
		accepted atomic.Int64
		rejected atomic.Int64
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg := testRegistration(i, "e-sports")
			switch err := repo.CreateWithinCapacity(ctx, &reg, events, ceiling); {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, domain.ErrCapacityExceeded):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, ceiling, accepted.Load())
	assert.EqualValues(t, racers-ceiling, rejected.Load())

	counts, err := repo.CountByEvent(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, ceiling, counts["e-sports"])
}
