package titlematch

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence is how sure a match is.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MarshalText renders the confidence by name.
func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a confidence name.
func (c *Confidence) UnmarshalText(text []byte) error {
	switch string(text) {
	case "high":
		*c = ConfidenceHigh
	case "medium":
		*c = ConfidenceMedium
	case "low":
		*c = ConfidenceLow
	case "none":
		*c = ConfidenceNone
	default:
		return fmt.Errorf("unknown confidence %q", text)
	}
	return nil
}

// Match is a scored candidate.
type Match struct {
	Index      int        // position in the candidate slice
	Title      string     // candidate as given
	Score      float64    // Jaro-Winkler similarity adjusted for sequence numbers
	Confidence Confidence // bucket derived from Score
}

// Score compares a query with one candidate title.
func Score(query, candidate string) float64 {
	q := CleanTitle(query)
	c := CleanTitle(candidate)
	score := float64(edlib.JaroWinklerSimilarity(q, c))
	return adjustForNumbers(score, numberRegex.FindAllString(q, -1), numberRegex.FindAllString(c, -1))
}

// Best returns the highest scoring candidate. Title is empty when nothing
// reaches ConfidenceLow.
func Best(query string, candidates []string) Match {
	ranked := Rank(query, candidates)
	if len(ranked) == 0 || ranked[0].Confidence == ConfidenceNone {
		return Match{Index: -1, Confidence: ConfidenceNone}
	}
	return ranked[0]
}

// Rank scores every candidate and orders them best first. Ties keep the
// original order, which for TMDB is its own popularity ranking.
func Rank(query string, candidates []string) []Match {
	out := make([]Match, len(candidates))
	for i, c := range candidates {
		s := Score(query, c)
		out[i] = Match{Index: i, Title: c, Score: s, Confidence: confidenceFor(s)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// adjustForNumbers rewards candidates that share a sequence number with the
// query ("Shrek 2") and penalizes those that don't.
func adjustForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	have := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		have[n] = true
	}
	for _, n := range queryNums {
		if have[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
