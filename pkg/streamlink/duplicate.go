package streamlink

import "strings"

// Classify normalizes and validates one entry. The canonical URL is only
// meaningful for Valid entries.
func (r *Rules) Classify(raw string) (Verdict, string) {
	n := Normalize(raw)
	switch {
	case n.Outcome == OutcomeEmpty:
		return Empty, ""
	case !n.OK() || !r.IsValid(n.URL):
		return Invalid, n.URL
	default:
		return Valid, n.URL
	}
}

// dupKey is the comparison key shared by live and bulk duplicate checks.
func dupKey(canonical string) string {
	return strings.ToLower(canonical)
}

// FindDuplicates returns the positions of siblings whose currently valid URL
// equals canonical, ignoring case. The current entry is skipped by position;
// invalid and empty siblings never match. Results keep collection order.
func (r *Rules) FindDuplicates(current PositionKey, canonical string, siblings []Entry) []PositionKey {
	if canonical == "" {
		return nil
	}
	key := dupKey(canonical)

	var matches []PositionKey
	for _, sib := range siblings {
		if sib.Position == current {
			continue
		}
		verdict, url := r.Classify(sib.Raw)
		if verdict == Valid && dupKey(url) == key {
			matches = append(matches, sib.Position)
		}
	}
	return matches
}
