package titlematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"The Matrix", "matrix"},
		{"Léon: The Professional", "leon professional"},
		{"Rocky II", "rocky 2"},
		{"Star Wars: Episode IV", "star wars episode 4"},
		{"I, Robot", "i robot"},
		{"El Señor de los Anillos", "senor de los anillos"},
		{"La Casa de Papel", "casa de papel"},
		{"Fast & Furious", "fast and furious"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"  Mr.  Robot ", "mr robot"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanTitle(tt.input))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "Breaking Bad", NormalizeQuery("  Breaking    Bad "))
}

func TestConfidenceString(t *testing.T) {
	tests := []struct {
		conf     Confidence
		expected string
	}{
		{ConfidenceHigh, "high"},
		{ConfidenceMedium, "medium"},
		{ConfidenceLow, "low"},
		{ConfidenceNone, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.conf.String())
		})
	}
}

func TestRank_ExactFirst(t *testing.T) {
	candidates := []string{"Breaking Badly", "Breaking Bad", "El Camino: A Breaking Bad Movie"}
	ranked := Rank("breaking bad", candidates)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Breaking Bad", ranked[0].Title)
	assert.Equal(t, 1, ranked[0].Index)
	assert.Equal(t, ConfidenceHigh, ranked[0].Confidence)
}

func TestRank_SequenceNumbers(t *testing.T) {
	ranked := Rank("Shrek 2", []string{"Shrek", "Shrek 2", "Shrek the Third"})
	require.NotEmpty(t, ranked)
	assert.Equal(t, "Shrek 2", ranked[0].Title)
}

func TestRank_StableTies(t *testing.T) {
	ranked := Rank("Dune", []string{"Dune", "Dune"})
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Index)
	assert.Equal(t, 1, ranked[1].Index)
}

func TestBest_NoMatch(t *testing.T) {
	m := Best("Casablanca", []string{"Zzyzx Road"})
	assert.Equal(t, ConfidenceNone, m.Confidence)
	assert.Empty(t, m.Title)
	assert.Equal(t, -1, m.Index)

	m = Best("Casablanca", nil)
	assert.Equal(t, ConfidenceNone, m.Confidence)
}

func TestBest_Accents(t *testing.T) {
	m := Best("amelie", []string{"Amélie", "Emilie"})
	assert.Equal(t, "Amélie", m.Title)
	assert.Equal(t, ConfidenceHigh, m.Confidence)
}

func TestAdjustForNumbers(t *testing.T) {
	assert.InDelta(t, 0.8, adjustForNumbers(0.8, nil, []string{"2"}), 1e-9)
	assert.InDelta(t, 0.8*0.85, adjustForNumbers(0.8, []string{"2"}, nil), 1e-9)
	assert.InDelta(t, 0.8*1.05, adjustForNumbers(0.8, []string{"2"}, []string{"2"}), 1e-9)
	assert.InDelta(t, 1.0, adjustForNumbers(0.99, []string{"2"}, []string{"2"}), 1e-9)
	assert.InDelta(t, 0.8*0.90, adjustForNumbers(0.8, []string{"2"}, []string{"3"}), 1e-9)
}
