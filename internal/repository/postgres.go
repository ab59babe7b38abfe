package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/tracts/internal/coords"
	"github.com/UnknownOlympus/tracts/internal/models"
)

// FetchCentroids reads every tract centroid stored in the tract_centroids table.
// Rows with a NULL coordinate are left out by the query, matching the malformed-line
// tolerance of the file loader.
func (r *Repository) FetchCentroids(ctx context.Context) (coords.Table, error) {
	query := `
		SELECT geo_id, latitude::text, longitude::text
		FROM public.tract_centroids
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY geo_id ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tract centroids: %w", err)
	}
	defer rows.Close()

	table := make(coords.Table)
	for rows.Next() {
		var geoID string
		var centroid models.Centroid
		if errScan := rows.Scan(&geoID, &centroid.Latitude, &centroid.Longitude); errScan != nil {
			return nil, fmt.Errorf("failed to scan tract centroid: %w", errScan)
		}
		table[geoID] = centroid
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Centroids fetched from database", "entries", len(table))

	return table, nil
}
