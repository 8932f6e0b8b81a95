package config

import "time"

const (
	DefaultHost            = "0.0.0.0"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTokenIssuer     = "go-api-starter"
	DefaultTokenDuration   = time.Hour
	DefaultVersion         = "dev"
	DefaultDocsRoute       = "/api/docs"
	DefaultDBDriver        = "pgx"
	DefaultLogLevel        = "debug"
	DefaultAuthRateLimit   = 5
	DefaultAuthRateBurst   = 10
)

// applyDefaults fills unset fields. Secrets and the port never get defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.DocsRoute == "" {
		cfg.Server.DocsRoute = DefaultDocsRoute
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = DefaultAuthRateLimit
	}
	if cfg.Server.AuthRateBurst == 0 {
		cfg.Server.AuthRateBurst = DefaultAuthRateBurst
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
