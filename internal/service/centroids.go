package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/tracts/internal/coords"
	"github.com/UnknownOlympus/tracts/internal/repository"
)

// LoadCentroids builds the centroid table from the reference files and, when repo is
// not nil, layers the database centroids over them.
func LoadCentroids(
	ctx context.Context,
	log *slog.Logger,
	paths []string,
	repo repository.Interface,
) (coords.Table, error) {
	table, err := coords.Load(log, paths)
	if err != nil {
		return nil, err
	}

	if repo != nil {
		dbTable, errDB := repo.FetchCentroids(ctx)
		if errDB != nil {
			return nil, fmt.Errorf("failed to load centroids from database: %w", errDB)
		}
		table.Merge(dbTable)
	}

	log.InfoContext(ctx, "Centroids loaded", "entries", len(table))

	return table, nil
}
