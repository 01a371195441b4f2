package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultGeneralURL   = "https://raw.githubusercontent.com/YongjaeKwon0629/first-deploy/main/service/resume_general_info_service.json"
	DefaultPortfolioURL = "https://raw.githubusercontent.com/YongjaeKwon0629/first-deploy/main/service/resume_portfolio_service.json"
)

// Variant selects which page layout is rendered.
type Variant string

const (
	VariantFull    Variant = "full"
	VariantMinimal Variant = "minimal"
)

// Template returns the template file that renders the variant.
func (v Variant) Template() string {
	if v == VariantMinimal {
		return "minimal.html"
	}
	return "index.html"
}

// Config holds all application configuration
type Config struct {
	Port         string
	GeneralURL   string
	PortfolioURL string
	Variant      Variant
	FetchTimeout time.Duration
}

// Load reads configuration from the environment. Values from the given env
// files (default ".env") are applied first without overriding variables that
// are already set; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		GeneralURL:   getenv("GENERAL_URL", DefaultGeneralURL),
		PortfolioURL: getenv("PORTFOLIO_URL", DefaultPortfolioURL),
		Variant:      Variant(getenv("PAGE_VARIANT", string(VariantFull))),
	}

	switch cfg.Variant {
	case VariantFull, VariantMinimal:
	default:
		return nil, fmt.Errorf("invalid PAGE_VARIANT %q: must be %q or %q", cfg.Variant, VariantFull, VariantMinimal)
	}

	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q: must not be negative", raw)
		}
		cfg.FetchTimeout = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
