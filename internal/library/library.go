// Package library persists generated link sets per title.
package library

import (
	"time"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

// Title is a movie or series that has been generated at least once.
type Title struct {
	ID        int64
	TMDBID    int64
	Type      streamlink.Mode
	Title     string
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Link is the URL saved for one position.
type Link struct {
	Position streamlink.PositionKey
	URL      string
}

// LinkMap indexes links by position.
func LinkMap(links []*Link) map[streamlink.PositionKey]string {
	out := make(map[streamlink.PositionKey]string, len(links))
	for _, l := range links {
		out[l.Position] = l.URL
	}
	return out
}
