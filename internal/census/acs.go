package census

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/tracts/internal/models"
	"golang.org/x/time/rate"
)

// DefaultBaseURL -- census data API base URL.
const DefaultBaseURL = "https://api.census.gov/data"

const defaultTimeout = 30 * time.Second

// ACSProvider fetches American Community Survey estimates from the census data API.
type ACSProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the data API
	dataset string        // Dataset name under /acs, e.g. acs5
	apiKey  string        // API key
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// Common errors for the ACS provider.
var (
	ErrUnauthorized    = errors.New("census API unauthorized (invalid API key)")
	ErrInvalidResponse = errors.New("census API returned malformed table")
)

// NewACSProvider creates a new ACS provider for the given dataset.
func NewACSProvider(dataset, apiKey string, rateLimit int, timeout time.Duration, log *slog.Logger) *ACSProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ACSProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: DefaultBaseURL,
		dataset: dataset,
		apiKey:  apiKey,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewACSProviderWithClient allows injecting custom HTTP client and base URL.
func NewACSProviderWithClient(
	client HTTPClient,
	baseURL string,
	dataset string,
	apiKey string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *ACSProvider {
	return &ACSProvider{
		client:  client,
		baseURL: baseURL,
		dataset: dataset,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// Fetch requests the variable for all tracts of a county.
//
// The API answers with a JSON table whose first row is the header, e.g.
//
//	[["NAME","B01003_001E","state","county","tract"],
//	 ["Census Tract 101, San Francisco County, California","3500","06","075","010100"]]
//
// Each data row is returned keyed by header name. JSON nulls become empty strings.
// A 204 status or an empty body yields no rows and no error.
func (p *ACSProvider) Fetch(ctx context.Context, query models.Query) ([]models.Row, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := p.requestURL(query)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "Census request", "variable", query.Variable,
		"state", query.State, "county", query.County, "year", query.Year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute census request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusNoContent:
		return nil, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		p.log.ErrorContext(ctx, "Census API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("census API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	rows, err := decodeTable(body)
	if err != nil {
		p.log.ErrorContext(ctx, "Failed to parse census response", "error", err, "body", string(body))
		return nil, err
	}

	p.log.DebugContext(ctx, "Census rows received", "variable", query.Variable, "rows", len(rows))

	return rows, nil
}

func (p *ACSProvider) requestURL(query models.Query) (string, error) {
	reqURL, err := url.Parse(p.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	reqURL = reqURL.JoinPath(strconv.Itoa(query.Year), "acs", p.dataset)

	params := reqURL.Query()
	params.Set("get", "NAME,"+query.Variable)
	params.Set("for", "tract:*")
	params.Set("in", "state:"+query.State+" county:"+query.County)
	params.Set("key", p.apiKey)
	reqURL.RawQuery = params.Encode()

	return reqURL.String(), nil
}

func decodeTable(body []byte) ([]models.Row, error) {
	var table [][]any

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode census response: %w", err)
	}

	if len(table) == 0 {
		return nil, nil
	}

	header := make([]string, len(table[0]))
	for i, cell := range table[0] {
		header[i] = cellString(cell)
	}

	rows := make([]models.Row, 0, len(table)-1)
	for idx, cells := range table[1:] {
		if len(cells) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrInvalidResponse, idx+1, len(cells), len(header))
		}

		row := make(models.Row, len(header))
		for i, cell := range cells {
			row[header[i]] = cellString(cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
