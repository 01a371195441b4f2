package resume

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/YongjaeKwon0629/first-deploy/internal/models"
)

var (
	ErrGeneralFetch   = errors.New("Failed to fetch data (general)")
	ErrPortfolioFetch = errors.New("Failed to fetch data (portfolio)")
)

type Source interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	GetPortfolio(ctx context.Context) ([]models.Project, error)
}

type source struct {
	client       *http.Client
	generalURL   string
	portfolioURL string
}

// NewSource returns a Source that reads both documents from the given URLs
// on every call. A zero timeout leaves requests bounded only by their context.
func NewSource(generalURL string, portfolioURL string, timeout time.Duration) (Source, error) {
	for _, raw := range []string{generalURL, portfolioURL} {
		if err := validateURL(raw); err != nil {
			return nil, err
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 4

	return &source{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		generalURL:   generalURL,
		portfolioURL: portfolioURL,
	}, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse source URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source URL %q must be an absolute http(s) URL", raw)
	}
	return nil
}

func (s *source) GetProfile(ctx context.Context) (models.Profile, error) {
	body, err := s.fetch(ctx, s.generalURL, ErrGeneralFetch)
	if err != nil {
		return models.Profile{}, err
	}
	return DecodeProfile(body)
}

func (s *source) GetPortfolio(ctx context.Context) ([]models.Project, error) {
	body, err := s.fetch(ctx, s.portfolioURL, ErrPortfolioFetch)
	if err != nil {
		return nil, err
	}
	return DecodePortfolio(body)
}

// fetch always goes to the origin; a non-2xx status is reported as failure.
func (s *source) fetch(ctx context.Context, target string, failure error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", failure, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", target, err)
	}
	return body, nil
}
