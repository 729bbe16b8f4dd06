package streamlink

import (
	"net/url"
	"strings"
)

// Outcome is the result class of Normalize.
type Outcome int

const (
	OutcomeOK        Outcome = iota
	OutcomeEmpty             // blank after trimming
	OutcomeMalformed         // could not be parsed as an absolute URL
)

// NormalizedURL is the canonical form of a raw entry.
// URL holds the repaired text for both OutcomeOK and OutcomeMalformed so it
// can be written back to the input; it is empty for OutcomeEmpty.
type NormalizedURL struct {
	URL     string
	Outcome Outcome
}

// OK reports whether normalization produced a parseable absolute URL.
func (n NormalizedURL) OK() bool { return n.Outcome == OutcomeOK }

// Normalize turns user input into a canonical absolute URL candidate.
//
// Input without an http(s) scheme has its leading run of non-alphanumeric
// characters stripped (paste artifacts such as "> " or "**") and gets
// "https://" prepended. Normalizing an already canonical URL is a no-op.
func Normalize(raw string) NormalizedURL {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NormalizedURL{Outcome: OutcomeEmpty}
	}

	if !hasHTTPScheme(s) {
		s = strings.TrimLeftFunc(s, func(r rune) bool { return !isASCIIAlnum(r) })
		// "> https://..." pastes already carry a scheme once the quote is gone.
		if !hasHTTPScheme(s) {
			s = "https://" + s
		}
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" || u.Hostname() == "" {
		return NormalizedURL{URL: s, Outcome: OutcomeMalformed}
	}
	return NormalizedURL{URL: s, Outcome: OutcomeOK}
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
