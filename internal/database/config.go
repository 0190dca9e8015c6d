package database

import "fmt"

// Config holds the connection settings for the persistent order store
type Config struct {
	// Driver selects the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL settings
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite settings; defaults to a shared in-memory database so the
	// process still satisfies the orders-live-in-memory contract unless a
	// file path is configured.
	Path string
}

// String returns a representation with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("database.Config{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		if c.Path == "" {
			return "file::memory:?cache=shared"
		}
		return c.Path
	default:
		return ""
	}
}
