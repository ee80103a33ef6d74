package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"cookit/internal/domain"
)

const SourceID = "catalog"

// Config holds catalog source configuration.
type Config struct {
	URL            string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// MaxBytes caps the size of the bundle body.
	MaxBytes int64
}

// errPermanent marks failures that retrying will not fix.
var errPermanent = errors.New("permanent failure")

// Source fetches a recipe bundle over HTTP.
type Source struct {
	httpClient     *http.Client
	url            string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	maxBytes       int64
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 32 << 20
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:            cfg.URL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		maxBytes:       cfg.MaxBytes,
		logger:         logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

// FetchRecipes downloads the bundle, retrying transient failures with
// exponential backoff.
func (s *Source) FetchRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var bundle *Bundle
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		bundle, err = s.doRequest(ctx)
		if err == nil {
			s.logger.Debug("fetched catalog", "recipes", len(bundle.Recipes))
			return bundle.Recipes, nil
		}

		if errors.Is(err, errPermanent) || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("fetch catalog after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context) (*Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w: %w", errPermanent, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CookIt/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status: %d: %w", resp.StatusCode, errPermanent)
	}

	var bundle Bundle
	if err := json.NewDecoder(io.LimitReader(resp.Body, s.maxBytes)).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("decode bundle: %w: %w", domain.ErrNoData, err)
	}

	return &bundle, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
