package draft

import "github.com/vmunix/streamgen/pkg/streamlink"

// Title is the selected movie or series as the editor sees it.
type Title struct {
	TMDBID     int64           `json:"tmdb_id"`
	Mode       streamlink.Mode `json:"mode"`
	Name       string          `json:"name"`
	Year       int             `json:"year,omitempty"`
	Overview   string          `json:"overview,omitempty"`
	PosterPath string          `json:"poster_path,omitempty"`
	Runtime    int             `json:"runtime,omitempty"` // minutes, movies only
	Genres     []string        `json:"genres,omitempty"`
	Seasons    []Season        `json:"seasons,omitempty"` // series only
}

// Season lists the episodes that get an input.
type Season struct {
	Number   int       `json:"number"`
	Name     string    `json:"name,omitempty"`
	Episodes []Episode `json:"episodes"`
}

// Episode is one episode slot.
type Episode struct {
	Number int    `json:"number"`
	Name   string `json:"name,omitempty"`
}

// Layout is the ordered list of positions that get an input.
type Layout []streamlink.PositionKey

// Layout lists the entry slots for the title in display order: every
// episode of every season for series, options 1..movieOptions for movies.
func (t Title) Layout(movieOptions int) Layout {
	var keys Layout
	if t.Mode == streamlink.ModeMovie {
		for i := 1; i <= movieOptions; i++ {
			keys = append(keys, streamlink.OptionKey(i))
		}
		return keys
	}
	for _, s := range t.Seasons {
		for _, e := range s.Episodes {
			keys = append(keys, streamlink.EpisodeKey(s.Number, e.Number))
		}
	}
	return keys
}
