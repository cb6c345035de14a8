package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vishesh-baghel/portfolio-sub000/internal/assemble"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App         ApplicationConfig `yaml:"app"`
	Content     ContentConfig     `yaml:"content"`
	Attribution AttributionConfig `yaml:"attribution"`
	Auth        AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if err := c.Attribution.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ContentConfig holds the path to the experiments content directory.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// AttributionConfig holds the external URLs and tracking identity appended to
// every served document. The URLs are treated as opaque strings.
type AttributionConfig struct {
	SiteURL     string `yaml:"site_url"`
	BookingURL  string `yaml:"booking_url"`
	GitHubURL   string `yaml:"github_url"`
	LinkedInURL string `yaml:"linkedin_url"`
	Source      string `yaml:"source"`
	Medium      string `yaml:"medium"`
}

// Validate validates the attribution configuration.
func (c *AttributionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SiteURL, validation.Required),
		validation.Field(&c.BookingURL, validation.Required),
		validation.Field(&c.GitHubURL, validation.Required),
		validation.Field(&c.LinkedInURL, validation.Required),
		validation.Field(&c.Source, validation.Required),
		validation.Field(&c.Medium, validation.Required),
	)
}

// Links converts the attribution configuration to the assembler's link set.
func (c *AttributionConfig) Links() assemble.Links {
	return assemble.Links{
		SiteURL:     c.SiteURL,
		BookingURL:  c.BookingURL,
		GitHubURL:   c.GitHubURL,
		LinkedInURL: c.LinkedInURL,
		Source:      c.Source,
		Medium:      c.Medium,
	}
}

// AuthConfig holds authentication configuration for the HTTP API.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Content: ContentConfig{
			Dir: "./content/experiments",
		},
		Attribution: AttributionConfig{
			SiteURL:     "https://visheshbaghel.com",
			BookingURL:  "https://cal.com/vishesh-baghel",
			GitHubURL:   "https://github.com/vishesh-baghel",
			LinkedInURL: "https://www.linkedin.com/in/vishesh-baghel",
			Source:      "mcp",
			Medium:      "content-tool",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
