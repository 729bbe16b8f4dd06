// Package streamlink normalizes, validates and cross-checks the streaming
// links a user attaches to episodes or movie options.
//
// Checking a link never returns an error or panics on bad input: every
// failure collapses into a Verdict that callers fold into a Report.
package streamlink

import "fmt"

// Mode distinguishes series (season/episode slots) from movies (option slots).
type Mode string

const (
	ModeSeries Mode = "series"
	ModeMovie  Mode = "movie"
)

// ParseMode converts a user-facing string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "series", "serie", "tv":
		return ModeSeries, nil
	case "movie", "pelicula":
		return ModeMovie, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// PositionKey identifies an entry within its collection. Series entries set
// Season and Episode; movie entries set Option. The zero value is invalid.
type PositionKey struct {
	Season  int `json:"season,omitempty" yaml:"season,omitempty"`
	Episode int `json:"episode,omitempty" yaml:"episode,omitempty"`
	Option  int `json:"option,omitempty" yaml:"option,omitempty"`
}

// EpisodeKey returns the key for a series slot.
func EpisodeKey(season, episode int) PositionKey {
	return PositionKey{Season: season, Episode: episode}
}

// OptionKey returns the key for a movie option slot.
func OptionKey(option int) PositionKey {
	return PositionKey{Option: option}
}

// Mode reports which shape the key has.
func (k PositionKey) Mode() Mode {
	if k.Option > 0 {
		return ModeMovie
	}
	return ModeSeries
}

// String renders the key the way the editor labels it: "T1E2" or "Opción 3".
func (k PositionKey) String() string {
	if k.Mode() == ModeMovie {
		return fmt.Sprintf("Opción %d", k.Option)
	}
	return fmt.Sprintf("T%dE%d", k.Season, k.Episode)
}

// Entry is one user-fillable slot for a streaming link.
type Entry struct {
	Raw      string      `json:"url" yaml:"url"`
	Position PositionKey `json:"position" yaml:",inline"`
}

// Verdict classifies a single entry.
type Verdict int

const (
	Valid Verdict = iota
	Invalid
	Empty
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// MarshalText renders the verdict as its name.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a verdict name.
func (v *Verdict) UnmarshalText(text []byte) error {
	switch string(text) {
	case "valid":
		*v = Valid
	case "invalid":
		*v = Invalid
	case "empty":
		*v = Empty
	default:
		return fmt.Errorf("unknown verdict %q", text)
	}
	return nil
}
