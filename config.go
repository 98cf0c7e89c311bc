package portfolio

import (
	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags
	Author      string // Author name for JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/portfolio.db")
	StoreURL     string // External document store base URL; empty means embedded SQLite
	StaticDir    string // Directory for static assets and uploads (default "public")

	AdminPassword string // Fallback shared secret when the profile stores none
	SessionSecret string // Required: session cookie signing secret
	CookieSecure  bool   // Set true for HTTPS

	MetricsEnabled bool // Expose prometheus metrics at /metrics
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/portfolio.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
}

// LoadConfig builds a SiteConfig from environment variables.
func LoadConfig() (SiteConfig, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SITE_NAME", "Portfolio")
	viper.SetDefault("SITE_URL", "http://localhost:3000")
	viper.SetDefault("LISTEN_ADDR", ":3000")
	viper.SetDefault("DATABASE_PATH", "data/portfolio.db")
	viper.SetDefault("STATIC_DIR", "public")
	viper.SetDefault("METRICS_ENABLED", true)

	cfg := SiteConfig{
		Name:           viper.GetString("SITE_NAME"),
		URL:            viper.GetString("SITE_URL"),
		Description:    viper.GetString("SITE_DESCRIPTION"),
		Author:         viper.GetString("SITE_AUTHOR"),
		Addr:           viper.GetString("LISTEN_ADDR"),
		DatabasePath:   viper.GetString("DATABASE_PATH"),
		StoreURL:       viper.GetString("STORE_URL"),
		StaticDir:      viper.GetString("STATIC_DIR"),
		AdminPassword:  viper.GetString("ADMIN_PASSWORD"),
		SessionSecret:  viper.GetString("ADMIN_SESSION_SECRET"),
		CookieSecure:   viper.GetBool("COOKIE_SECURE"),
		MetricsEnabled: viper.GetBool("METRICS_ENABLED"),
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithStore injects a pre-built document store instead of letting Start open
// one from config. Used by tests and by embedders with their own store.
func WithStore(s Store) Option {
	return func(a *App) {
		a.Store = s
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
