// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.TMDB.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.requests_per_second: must not be negative, got %g", c.TMDB.RequestsPerSecond))
	}
	if c.TMDB.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.TMDB.BaseURL); err != nil {
			errs = append(errs, fmt.Sprintf("tmdb.base_url: %v", err))
		}
	}

	errs = append(errs, c.Links.validate()...)

	if c.Drafts.IdleTimeout < 0 {
		errs = append(errs, "drafts.idle_timeout: must not be negative")
	}

	return errs
}

func (l LinksConfig) validate() []string {
	var errs []string

	for _, d := range l.Domains {
		if d != strings.ToLower(d) {
			errs = append(errs, fmt.Sprintf("links.domains: %q must be lower case, hosts are compared after lower-casing", d))
		}
	}
	if _, err := l.Rules(); err != nil {
		errs = append(errs, fmt.Sprintf("links: %v", err))
	}

	if l.DefaultURL == "" {
		errs = append(errs, "links.default_url: required, used for invalid or empty entries")
	} else if u, err := url.Parse(l.DefaultURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("links.default_url: must be an absolute http(s) URL, got %q", l.DefaultURL))
	}

	if l.MovieOptions < 1 || l.MovieOptions > 20 {
		errs = append(errs, fmt.Sprintf("links.movie_options: must be between 1 and 20, got %d", l.MovieOptions))
	}
	return errs
}
