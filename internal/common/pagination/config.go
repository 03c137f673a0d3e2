package pagination

import (
	"fmt"

	"stringlang/pkg/config"
)

// Config bounds the page size clients may request.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig serves 20 items per page and allows up to 100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT. An
// inconsistent pair falls back to DefaultConfig.
func LoadFromEnv() Config {
	def := DefaultConfig()
	c := Config{
		DefaultPage:  def.DefaultPage,
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
	if c.Validate() != nil {
		return def
	}
	return c
}

// Validate checks 1 <= DefaultLimit <= MaxLimit and DefaultPage >= 1.
func (c Config) Validate() error {
	if c.DefaultPage < 1 {
		return fmt.Errorf("default page must be at least 1, got %d", c.DefaultPage)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default limit %d must be between 1 and max limit %d", c.DefaultLimit, c.MaxLimit)
	}
	return nil
}
