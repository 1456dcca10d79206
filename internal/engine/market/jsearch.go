package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// jsearchClient queries a JSearch-style job posting API over RapidAPI.
type jsearchClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func newJSearchClient(apiKey, baseURL string) *jsearchClient {
	return &jsearchClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    engine.Cfg.HTTPClient,
		// RapidAPI free tier tolerates about one request per second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type jobPosting struct {
	Title       string   `json:"job_title"`
	Description string   `json:"job_description"`
	MinSalary   *float64 `json:"job_min_salary"`
	MaxSalary   *float64 `json:"job_max_salary"`
}

type searchResponse struct {
	Data []jobPosting `json:"data"`
}

// lookup tries role-derived query variants in order and keeps the first
// result with enough postings, or the best one seen. Returns nil when no
// variant produced any postings; the caller falls back to static data.
func (c *jsearchClient) lookup(ctx context.Context, targetRole string) *engine.MarketIntelligence {
	var best []jobPosting
	for _, query := range searchQueries(targetRole) {
		postings, err := c.search(ctx, query)
		if err != nil {
			slog.Warn("job search query failed", slog.String("query", query), slog.Any("error", err))
			continue
		}
		if len(postings) > len(best) {
			best = postings
			slog.Info("job search results", slog.String("query", query), slog.Int("postings", len(postings)))
		}
		if len(best) >= engine.Cfg.MinPostingsKeep {
			break
		}
	}
	if len(best) == 0 {
		return nil
	}
	return parsePostings(best)
}

func (c *jsearchClient) search(ctx context.Context, query string) ([]jobPosting, error) {
	engine.IncrJSearchRequests()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	operation := func() (*http.Response, error) {
		q := url.Values{
			"query":       {query},
			"page":        {"1"},
			"num_pages":   {"1"},
			"date_posted": {"month"},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
		req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if engine.IsRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(3),
		backoff.WithMaxElapsedTime(30*time.Second))
	if err != nil {
		engine.IncrJSearchErrors()
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		engine.IncrJSearchErrors()
		return nil, fmt.Errorf("read response: %w", err)
	}
	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		engine.IncrJSearchErrors()
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return parsed.Data, nil
}
