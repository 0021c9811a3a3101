package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Storage.Endpoint != "" && c.Storage.MaxAvatarBytes <= 0 {
		return fmt.Errorf("storage.max_avatar_bytes must be > 0 (got %d)", c.Storage.MaxAvatarBytes)
	}

	if c.RateLimit.ReimaginePerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("ratelimit: per-minute limits must be > 0")
	}

	return nil
}

// Enabled reports whether the language model is configured.
func (a AIConfig) Enabled() bool {
	return a.APIKey != ""
}

func (a *AIConfig) validate() error {
	if !a.Enabled() {
		return nil
	}
	if strings.TrimSpace(a.Model) == "" {
		return fmt.Errorf("model is required when api_key is set")
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	if a.MaxContentChars <= 0 {
		return fmt.Errorf("max_content_chars must be > 0 (got %d)", a.MaxContentChars)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}
