// Package tmdb provides a client for The Movie Database API.
package tmdb

import (
	"fmt"
	"strconv"
)

const imageBaseURL = "https://image.tmdb.org/t/p/"

// Movie represents TMDB movie metadata.
type Movie struct {
	ID           int64   `json:"id"`
	IMDBID       string  `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"` // "2024-03-01"
	PosterPath   string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	Runtime      int     `json:"runtime"` // minutes
	Genres       []Genre `json:"genres"`
}

// Genre represents a movie or series genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int { return yearOf(m.ReleaseDate) }

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (m *Movie) PosterURL(size string) string { return ImageURL(m.PosterPath, size) }

// Series represents TMDB TV series metadata.
type Series struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Overview     string          `json:"overview"`
	FirstAirDate string          `json:"first_air_date"`
	PosterPath   string          `json:"poster_path"`
	VoteAverage  float64         `json:"vote_average"`
	Genres       []Genre         `json:"genres"`
	Seasons      []SeasonSummary `json:"seasons"`
}

// SeasonSummary is the per-season entry embedded in a Series.
type SeasonSummary struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}

// Year extracts the year from FirstAirDate.
func (s *Series) Year() int { return yearOf(s.FirstAirDate) }

// PosterURL returns the full poster image URL.
func (s *Series) PosterURL(size string) string { return ImageURL(s.PosterPath, size) }

// RegularSeasons drops season 0, which TMDB uses for specials.
func (s *Series) RegularSeasons() []SeasonSummary {
	var out []SeasonSummary
	for _, season := range s.Seasons {
		if season.SeasonNumber > 0 {
			out = append(out, season)
		}
	}
	return out
}

// SeasonLabel renders "1 Temporada" / "N Temporadas".
func (s *Series) SeasonLabel() string {
	n := len(s.RegularSeasons())
	if n == 1 {
		return "1 Temporada"
	}
	return fmt.Sprintf("%d Temporadas", n)
}

// Season is a full season with its episodes.
type Season struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date"`
	Episodes     []Episode `json:"episodes"`
}

// Episode is one episode of a season.
type Episode struct {
	ID            int64  `json:"id"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	AirDate       string `json:"air_date"`
	Runtime       int    `json:"runtime"`
	StillPath     string `json:"still_path"`
}

// SearchResult is one hit of a movie or TV search. Movies fill Title and
// ReleaseDate; series fill Name and FirstAirDate.
type SearchResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	PosterPath   string  `json:"poster_path"`
	Popularity   float64 `json:"popularity"`
}

// DisplayTitle returns the title for movies and the name for series.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Year returns the release or first air year.
func (r SearchResult) Year() int {
	if r.ReleaseDate != "" {
		return yearOf(r.ReleaseDate)
	}
	return yearOf(r.FirstAirDate)
}

// PosterURL returns the full poster image URL.
func (r SearchResult) PosterURL(size string) string { return ImageURL(r.PosterPath, size) }

type searchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// FormatRuntime renders minutes as "45m", "1h" or "2h 5m". Only an exact
// hour drops the minutes; 120 renders as "2h 0m".
func FormatRuntime(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case minutes < 60:
		return fmt.Sprintf("%dm", rest)
	case minutes == 60:
		return "1h"
	default:
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// ImageURL builds a TMDB image URL from a poster or still path.
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}
