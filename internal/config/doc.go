// Package config manages application configuration.
//
// Configuration is loaded from environment variables with development
// defaults and validated once at startup:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production or test
//	DB_HOST, DB_PORT     - PostgreSQL host and port
//	DB_USER, DB_PASSWORD - database credentials
//	DB_NAME              - database name (default: app_coleta)
//	AUTH_SECRET          - token signing secret (default refused in production)
//	AUTH_TOKEN_TTL_MINS  - bearer token lifetime in minutes (default: 60)
package config
