package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var knownFormats = []string{"xlsx", "pdf", "csv"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Auth.PasswordMinLen < 1 {
		return fmt.Errorf("auth.password_min_len must be >= 1 (got %d)", c.Auth.PasswordMinLen)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within [1, 65535] (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func (r *ReportConfig) validate() error {
	if r.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", r.MaxRows)
	}
	if r.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", r.PageSize)
	}
	for _, f := range r.Formats() {
		if !slices.Contains(knownFormats, f) {
			return fmt.Errorf("unknown export format %q", f)
		}
	}
	if r.PDFFontPath != "" {
		if _, err := os.Stat(r.PDFFontPath); err != nil {
			return fmt.Errorf("pdf_font_path: %w", err)
		}
	}
	return nil
}
