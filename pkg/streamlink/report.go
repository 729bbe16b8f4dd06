package streamlink

// DuplicateGroup is a canonical URL shared by two or more entries.
type DuplicateGroup struct {
	URL       string        `json:"url"`
	Positions []PositionKey `json:"positions"`
}

// Report is the outcome of checking a whole collection before generation.
// It must not be modified after BuildReport returns it.
type Report struct {
	Mode       Mode             `json:"mode"`
	Invalid    []Entry          `json:"invalid"`
	Empty      []Entry          `json:"empty"`
	Duplicates []DuplicateGroup `json:"duplicates"`
	Total      int              `json:"total"`

	canonical map[PositionKey]string
}

// Summary holds the partition sizes of a report.
type Summary struct {
	Total      int `json:"total"`
	Valid      int `json:"valid"`
	Invalid    int `json:"invalid"`
	Empty      int `json:"empty"`
	Duplicates int `json:"duplicates"`
}

// BuildReport classifies every entry and groups valid entries that share a
// URL. Groups appear in the order their first member was seen.
func (r *Rules) BuildReport(entries []Entry, mode Mode) *Report {
	rep := &Report{
		Mode:       mode,
		Invalid:    []Entry{},
		Empty:      []Entry{},
		Duplicates: []DuplicateGroup{},
		Total:      len(entries),
		canonical:  make(map[PositionKey]string, len(entries)),
	}

	groups := make(map[string]*DuplicateGroup)
	var order []string

	for _, e := range entries {
		verdict, url := r.Classify(e.Raw)
		switch verdict {
		case Empty:
			rep.Empty = append(rep.Empty, e)
		case Invalid:
			rep.Invalid = append(rep.Invalid, e)
		case Valid:
			rep.canonical[e.Position] = url
			key := dupKey(url)
			g, ok := groups[key]
			if !ok {
				g = &DuplicateGroup{URL: url}
				groups[key] = g
				order = append(order, key)
			}
			g.Positions = append(g.Positions, e.Position)
		}
	}

	for _, key := range order {
		if g := groups[key]; len(g.Positions) > 1 {
			rep.Duplicates = append(rep.Duplicates, *g)
		}
	}
	return rep
}

// HasProblems reports whether the user must confirm before generating.
func (rep *Report) HasProblems() bool {
	return len(rep.Invalid)+len(rep.Empty)+len(rep.Duplicates) > 0
}

// Summary returns partition sizes.
func (rep *Report) Summary() Summary {
	return Summary{
		Total:      rep.Total,
		Valid:      len(rep.canonical),
		Invalid:    len(rep.Invalid),
		Empty:      len(rep.Empty),
		Duplicates: len(rep.Duplicates),
	}
}

// Resolve returns the URL each position is generated with: its canonical URL
// when valid, defaultURL otherwise. Duplicates are kept as entered.
func (rep *Report) Resolve(entries []Entry, defaultURL string) map[PositionKey]string {
	out := make(map[PositionKey]string, len(entries))
	for _, e := range entries {
		if url, ok := rep.canonical[e.Position]; ok {
			out[e.Position] = url
			continue
		}
		out[e.Position] = defaultURL
	}
	return out
}
