package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/tracts/internal/census"
	"github.com/UnknownOlympus/tracts/internal/metrics"
	"github.com/UnknownOlympus/tracts/internal/models"
	"github.com/UnknownOlympus/tracts/internal/retry"
	"github.com/UnknownOlympus/tracts/internal/tract"
)

// ExtractionService fetches every configured variable for every county of every area
// and joins the results into one record per tract.
type ExtractionService struct {
	log       *slog.Logger      // Logger for logging service activities
	provider  census.Provider   // Provider for the census data API
	dataset   string            // Dataset name for metrics labeling
	metrics   *metrics.Metrics  // Metrics for tracking service performance
	policy    retry.Policy      // Retry policy for empty responses
	sleep     retry.SleepFunc   // Sleep used between retries
	year      int               // Estimate year
	areas     []models.Area     // Areas to extract, in order
	variables []models.Variable // Variables to fetch, in column order
}

// NewExtractionService creates a new instance of ExtractionService.
// A nil sleep uses retry.Sleep.
func NewExtractionService(
	log *slog.Logger,
	provider census.Provider,
	dataset string,
	metrics *metrics.Metrics,
	policy retry.Policy,
	sleep retry.SleepFunc,
	year int,
	areas []models.Area,
	variables []models.Variable,
) *ExtractionService {
	return &ExtractionService{
		log:       log,
		provider:  provider,
		dataset:   dataset,
		metrics:   metrics,
		policy:    policy,
		sleep:     sleep,
		year:      year,
		areas:     areas,
		variables: variables,
	}
}

// Run performs the whole extraction sequentially and returns the collected table.
// The first failed fetch aborts the run; the table built so far is returned alongside
// the error.
func (es *ExtractionService) Run(ctx context.Context) (*tract.Table, error) {
	table := tract.NewTable()

	for _, area := range es.areas {
		es.log.InfoContext(ctx, "Working on area", "area", area.Name, "counties", len(area.Counties))

		for _, county := range area.Counties {
			if err := es.processCounty(ctx, table, area.Name, county); err != nil {
				return table, err
			}
		}
	}

	es.log.InfoContext(ctx, "Extraction finished", "tracts", table.Len())

	return table, nil
}

func (es *ExtractionService) processCounty(
	ctx context.Context,
	table *tract.Table,
	area string,
	county models.County,
) error {
	es.log.DebugContext(ctx, "Processing county", "area", area, "state", county.State, "county", county.County)

	for _, variable := range es.variables {
		query := models.Query{
			Variable: variable.Code,
			State:    county.State,
			County:   county.County,
			Year:     es.year,
		}

		rows, err := es.fetch(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to fetch %s for state %s county %s: %w",
				variable.Code, county.State, county.County, err)
		}

		if skipped := table.Merge(area, county, variable, rows); len(skipped) > 0 {
			es.log.WarnContext(ctx, "Skipped rows with invalid tract codes",
				"code", variable.Code, "state", county.State, "county", county.County, "tracts", skipped)
		}
		es.metrics.TractsCollected.Set(float64(table.Len()))
	}

	return nil
}

// fetch runs the query through a fresh retry machine.
func (es *ExtractionService) fetch(ctx context.Context, query models.Query) ([]models.Row, error) {
	log := es.log.With("code", query.Variable, "state", query.State, "county", query.County, "year", query.Year)
	machine := retry.NewMachine[models.Row](es.policy, es.sleep, log)

	return machine.Run(ctx, func(ctx context.Context) ([]models.Row, error) {
		if machine.Attempts() > 1 {
			es.metrics.Retries.Inc()
		}

		startTime := time.Now()
		rows, err := es.provider.Fetch(ctx, query)
		es.metrics.RequestSeconds.WithLabelValues(es.dataset).Observe(time.Since(startTime).Seconds())

		switch {
		case err != nil:
			es.metrics.Requests.WithLabelValues("failure").Inc()
		case len(rows) == 0:
			es.metrics.Requests.WithLabelValues("empty").Inc()
			es.metrics.EmptyResults.Inc()
		default:
			es.metrics.Requests.WithLabelValues("success").Inc()
		}

		return rows, err
	})
}
