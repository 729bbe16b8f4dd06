// Package snippet renders the HTML embed snippet for a title.
package snippet

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/vmunix/streamgen/internal/draft"
	"github.com/vmunix/streamgen/internal/tmdb"
	"github.com/vmunix/streamgen/pkg/streamlink"
)

//go:embed snippet.html.tmpl
var snippetTemplate string

var tpl = template.Must(template.New("snippet").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(snippetTemplate))

// PosterSize is the TMDB image size used for the poster.
const PosterSize = "w300"

// Document is everything the template needs.
type Document struct {
	Mode        streamlink.Mode
	Title       string
	Year        int
	Runtime     string // movies
	SeasonLabel string // series, counts rendered seasons only
	Overview    string
	PosterURL   string
	Genres      []string
	Seasons     []SeasonBlock
	Options     []Option
}

// SeasonBlock is one season with its episode links.
type SeasonBlock struct {
	Number   int
	Name     string
	Episodes []EpisodeLink
}

// EpisodeLink points one episode at a player URL.
type EpisodeLink struct {
	Number int
	Label  string
	Name   string
	URL    string
}

// Option is one numbered player for a movie.
type Option struct {
	Number int
	Label  string
	URL    string
}

// IsSeries reports whether the document is laid out as seasons.
func (d Document) IsSeries() bool { return d.Mode == streamlink.ModeSeries }

// Build lays out a document from a title and its resolved links. Positions
// missing from links are left out.
func Build(title draft.Title, links map[streamlink.PositionKey]string) Document {
	doc := Document{
		Mode:      title.Mode,
		Title:     title.Name,
		Year:      title.Year,
		Overview:  title.Overview,
		PosterURL: tmdb.ImageURL(title.PosterPath, PosterSize),
		Genres:    title.Genres,
	}

	if title.Mode == streamlink.ModeMovie {
		if title.Runtime > 0 {
			doc.Runtime = tmdb.FormatRuntime(title.Runtime)
		}
		var opts []streamlink.PositionKey
		for pos := range links {
			if pos.Mode() == streamlink.ModeMovie {
				opts = append(opts, pos)
			}
		}
		sort.Slice(opts, func(i, j int) bool { return opts[i].Option < opts[j].Option })
		for _, pos := range opts {
			doc.Options = append(doc.Options, Option{Number: pos.Option, Label: pos.String(), URL: links[pos]})
		}
		return doc
	}

	for _, s := range title.Seasons {
		block := SeasonBlock{Number: s.Number, Name: s.Name}
		for _, e := range s.Episodes {
			pos := streamlink.EpisodeKey(s.Number, e.Number)
			url, ok := links[pos]
			if !ok {
				continue
			}
			block.Episodes = append(block.Episodes, EpisodeLink{
				Number: e.Number,
				Label:  pos.String(),
				Name:   e.Name,
				URL:    url,
			})
		}
		if len(block.Episodes) > 0 {
			doc.Seasons = append(doc.Seasons, block)
		}
	}
	doc.SeasonLabel = seasonLabel(len(doc.Seasons))
	return doc
}

func seasonLabel(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 Temporada"
	default:
		return fmt.Sprintf("%d Temporadas", n)
	}
}

// Render executes the snippet template.
func Render(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render snippet: %w", err)
	}
	return buf.String(), nil
}
