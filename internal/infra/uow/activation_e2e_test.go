//go:build e2e

package uow_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"skipass-api/internal/infra/metrics"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/infra/uow"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/testutil/dbtest"
	"skipass-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertCustomer(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(t.Context(),
		"INSERT INTO users (id, name, email, password_hash) VALUES ($1, 'Ana Pop', $2, 'x')",
		id, "ana."+id.String()[:8]+"@gmail.com")
	require.NoError(t, err)
	return id
}

func TestActivate_ConcurrentRequests(t *testing.T) {
	pool, _ := dbtest.NewDatabase(t)
	reg := prometheus.NewRegistry()
	cmds := commands.NewPassCommands(uow.NewPostgresUoW(pool, sqlc.New()), clock.NewRealClock(), metrics.NewCollector(reg))
	ctx := context.Background()

	t.Run("success: exactly one of many concurrent activations wins", func(t *testing.T) {
		owner := insertCustomer(t, pool)
		p, err := cmds.Buy(ctx, owner, "Straja", "130.00")
		require.NoError(t, err)

		const workers = 16
		var (
			wg       sync.WaitGroup
			start    = make(chan struct{})
			mu       sync.Mutex
			wins     int
			conflict int
			other    []error
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, err := cmds.Activate(ctx, p.ID(), owner)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					wins++
				case errs.Is(err, errs.ErrAlreadyActivated):
					conflict++
				default:
					other = append(other, err)
				}
			}()
		}
		close(start)
		wg.Wait()

		require.Empty(t, other)
		assert.Equal(t, 1, wins)
		assert.Equal(t, workers-1, conflict)

		var activations int
		require.NoError(t, pool.QueryRow(ctx,
			"SELECT count(*) FROM purchases WHERE id = $1 AND activated_at IS NOT NULL", p.ID()).Scan(&activations))
		assert.Equal(t, 1, activations)

		expected := `
# HELP skipass_pass_activations_total Pass activation attempts by result.
# TYPE skipass_pass_activations_total counter
skipass_pass_activations_total{result="activated"} 1
skipass_pass_activations_total{result="already_activated"} 15
`
		assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "skipass_pass_activations_total"))
	})

	t.Run("error: activation by a non-owner leaves the pass pending", func(t *testing.T) {
		owner := insertCustomer(t, pool)
		stranger := insertCustomer(t, pool)
		p, err := cmds.Buy(ctx, owner, "Borșa", "130.00")
		require.NoError(t, err)

		_, err = cmds.Activate(ctx, p.ID(), stranger)
		assert.ErrorIs(t, err, errs.ErrPassNotFound)

		activated, err := cmds.Activate(ctx, p.ID(), owner)
		require.NoError(t, err)
		assert.NotNil(t, activated.ActivatedAt())
	})
}
