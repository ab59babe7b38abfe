//go:build integration

package repository_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/tracts/internal/models"
	"github.com/UnknownOlympus/tracts/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestFetchCentroids_Postgres(t *testing.T) {
	ctx := t.Context()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("tracts"),
		postgres.WithUsername("tracts"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if errTerm := ctr.Terminate(context.Background()); errTerm != nil {
			t.Logf("failed to terminate postgres container: %v", errTerm)
		}
	})

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := repository.NewDatabase(ctx, host, port.Port(), "tracts", "secret", "tracts")
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		CREATE TABLE public.tract_centroids (
			geo_id    text PRIMARY KEY,
			latitude  double precision,
			longitude double precision
		);
		INSERT INTO public.tract_centroids VALUES
			('06075010100', 37.8, -122.4),
			('06075010200', NULL, -122.5);
	`)
	require.NoError(t, err)

	repo := repository.NewRepository(pool, slog.Default())
	table, err := repo.FetchCentroids(ctx)

	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, models.Centroid{Latitude: "37.8", Longitude: "-122.4"}, table["06075010100"])
}
