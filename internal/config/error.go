package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")

// ConfigError collects every problem found while loading a config file so
// they can be fixed in one pass.
type ConfigError struct {
	Path    string   // config file path
	Missing []string // unresolved ${VAR} references
	Errors  []string // validation messages, "section.key: problem"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "config %s: %d problem(s)", e.Path, len(e.Missing)+len(e.Errors))
	if len(e.Missing) > 0 {
		b.WriteString("\n  missing environment variables: " + strings.Join(e.Missing, ", "))
	}
	for _, section := range e.Sections() {
		for _, msg := range e.Section(section) {
			b.WriteString("\n  " + msg)
		}
	}
	return b.String()
}

// HasErrors reports whether anything was collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// Sections returns the sorted config sections that have validation errors.
func (e *ConfigError) Sections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, msg := range e.Errors {
		s := sectionOf(msg)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Section returns the validation messages for one section, such as "links".
func (e *ConfigError) Section(name string) []string {
	var out []string
	for _, msg := range e.Errors {
		if sectionOf(msg) == name {
			out = append(out, msg)
		}
	}
	return out
}

// sectionOf extracts "links" from "links.domains: ..." or "links: ...".
func sectionOf(msg string) string {
	end := strings.IndexAny(msg, ".:")
	if end < 0 {
		return msg
	}
	return msg[:end]
}
