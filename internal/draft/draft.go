// Package draft holds the editable link collection for one selected title and
// gates snippet generation on a validation report.
package draft

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

// State is a step of the generation gate.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateBlocked    State = "blocked"
	StateGenerating State = "generating"
)

// Indicator is the icon shown next to an input.
type Indicator string

const (
	LiveHidden    Indicator = "hidden"
	LiveInvalid   Indicator = "invalid"
	LiveDuplicate Indicator = "duplicate"
	LiveValid     Indicator = "valid"
)

// LiveStatus is the per-keystroke feedback for one entry.
type LiveStatus struct {
	Position   streamlink.PositionKey   `json:"position"`
	URL        string                   `json:"url"`
	Indicator  Indicator                `json:"status"`
	Duplicates []streamlink.PositionKey `json:"duplicates,omitempty"`
}

// Generator produces the snippet from the resolved links.
type Generator interface {
	Generate(ctx context.Context, title Title, links map[streamlink.PositionKey]string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, title Title, links map[streamlink.PositionKey]string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, title Title, links map[streamlink.PositionKey]string) (string, error) {
	return f(ctx, title, links)
}

// Result is the outcome of Generate or Confirm. Exactly one of HTML and
// Report is set.
type Result struct {
	HTML   string             `json:"html,omitempty"`
	Report *streamlink.Report `json:"report,omitempty"`
}

// Blocked reports whether generation stopped on a report.
func (r Result) Blocked() bool { return r.Report != nil }

// Draft is the entry collection for one title. Safe for concurrent use.
type Draft struct {
	mu sync.Mutex

	id         string
	rules      *streamlink.Rules
	gen        Generator
	defaultURL string

	title   *Title
	entries []streamlink.Entry
	index   map[streamlink.PositionKey]int
	state   State
	pending *streamlink.Report
	touched time.Time
	now     func() time.Time
}

// New creates an empty draft.
func New(id string, rules *streamlink.Rules, gen Generator, defaultURL string) *Draft {
	d := &Draft{
		id:         id,
		rules:      rules,
		gen:        gen,
		defaultURL: defaultURL,
		state:      StateIdle,
		now:        time.Now,
	}
	d.touched = d.now()
	return d
}

// ID returns the draft id.
func (d *Draft) ID() string { return d.id }

// Select switches to a new title. All entries and any pending report are
// discarded.
func (d *Draft) Select(title Title, layout Layout) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t := title
	d.title = &t
	d.entries = make([]streamlink.Entry, len(layout))
	d.index = make(map[streamlink.PositionKey]int, len(layout))
	for i, pos := range layout {
		d.entries[i] = streamlink.Entry{Position: pos}
		d.index[pos] = i
	}
	d.state = StateIdle
	d.pending = nil
	d.touched = d.now()
}

// Preload fills entries from previously saved links. Positions outside the
// layout are ignored.
func (d *Draft) Preload(links map[streamlink.PositionKey]string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for pos, url := range links {
		if i, ok := d.index[pos]; ok {
			d.entries[i].Raw = url
		}
	}
}

// Set normalizes raw, stores the normalized text in the entry and returns the
// live status. Editing while a report is pending discards it.
func (d *Draft) Set(pos streamlink.PositionKey, raw string) (LiveStatus, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.title == nil {
		return LiveStatus{}, ErrNoSelection
	}
	i, ok := d.index[pos]
	if !ok {
		return LiveStatus{}, fmt.Errorf("%s: %w", pos, ErrUnknownPosition)
	}
	if d.state == StateGenerating {
		return LiveStatus{}, ErrBusy
	}

	n := streamlink.Normalize(raw)
	d.entries[i].Raw = n.URL
	if d.state == StateBlocked {
		d.state = StateIdle
		d.pending = nil
	}
	d.touched = d.now()
	return d.statusLocked(i), nil
}

// Statuses returns the live status of every entry in layout order.
func (d *Draft) Statuses() []LiveStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]LiveStatus, len(d.entries))
	for i := range d.entries {
		out[i] = d.statusLocked(i)
	}
	return out
}

func (d *Draft) statusLocked(i int) LiveStatus {
	e := d.entries[i]
	st := LiveStatus{Position: e.Position, URL: e.Raw}

	verdict, canonical := d.rules.Classify(e.Raw)
	switch verdict {
	case streamlink.Empty:
		st.Indicator = LiveHidden
	case streamlink.Invalid:
		st.Indicator = LiveInvalid
	default:
		st.Duplicates = d.rules.FindDuplicates(e.Position, canonical, d.entries)
		if len(st.Duplicates) > 0 {
			st.Indicator = LiveDuplicate
		} else {
			st.Indicator = LiveValid
		}
	}
	return st
}

// Generate validates the collection. A clean collection is handed to the
// Generator; otherwise the report is kept and the draft becomes Blocked.
func (d *Draft) Generate(ctx context.Context) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.title == nil {
		return Result{}, ErrNoSelection
	}
	if d.state == StateGenerating {
		return Result{}, ErrBusy
	}
	d.touched = d.now()

	d.state = StateValidating
	rep := d.rules.BuildReport(d.entries, d.title.Mode)
	if rep.HasProblems() {
		d.state = StateBlocked
		d.pending = rep
		return Result{Report: rep}, nil
	}
	return d.generateLocked(ctx, rep)
}

// Confirm generates from the pending report, replacing invalid and empty
// entries with the default URL.
func (d *Draft) Confirm(ctx context.Context) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateBlocked || d.pending == nil {
		return Result{}, ErrNotBlocked
	}
	d.touched = d.now()
	return d.generateLocked(ctx, d.pending)
}

// Cancel drops the pending report.
func (d *Draft) Cancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateBlocked {
		return ErrNotBlocked
	}
	d.state = StateIdle
	d.pending = nil
	d.touched = d.now()
	return nil
}

// generateLocked is called with d.mu held. The lock is released while the
// Generator runs; edits in that window fail with ErrBusy.
func (d *Draft) generateLocked(ctx context.Context, rep *streamlink.Report) (Result, error) {
	d.state = StateGenerating
	d.pending = nil
	defer func() { d.state = StateIdle }()

	title := *d.title
	links := rep.Resolve(d.entries, d.defaultURL)

	d.mu.Unlock()
	html, err := d.gen.Generate(ctx, title, links)
	d.mu.Lock()
	if err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}
	return Result{HTML: html}, nil
}

// State returns the current gate state.
func (d *Draft) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Report returns the pending report, or nil.
func (d *Draft) Report() *streamlink.Report {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Entries returns a copy of the collection in layout order.
func (d *Draft) Entries() []streamlink.Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]streamlink.Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Title returns the selected title.
func (d *Draft) Title() (Title, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.title == nil {
		return Title{}, false
	}
	return *d.title, true
}

// LastTouched is the time of the last mutating call.
func (d *Draft) LastTouched() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.touched
}
