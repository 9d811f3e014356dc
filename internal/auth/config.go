package auth

import (
	"fmt"
	"time"

	"balloon-flights-backend/internal/config"
)

const defaultIssuer = "balloon-flights-backend"

// AuthConfig holds the token settings used by the authentication service
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig derives the authentication settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ttl := time.Duration(cfg.JWTTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  ttl,
		Issuer:    defaultIssuer,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
