package draft

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

// Registry tracks open drafts by id.
type Registry struct {
	mu     sync.Mutex
	drafts map[string]*Draft

	rules      *streamlink.Rules
	gen        Generator
	defaultURL string
	now        func() time.Time
}

// NewRegistry creates an empty registry. Every draft it creates shares rules,
// generator and default URL.
func NewRegistry(rules *streamlink.Rules, gen Generator, defaultURL string) *Registry {
	return &Registry{
		drafts:     make(map[string]*Draft),
		rules:      rules,
		gen:        gen,
		defaultURL: defaultURL,
		now:        time.Now,
	}
}

// Create opens a new draft with a random id.
func (r *Registry) Create() *Draft {
	d := New(uuid.NewString(), r.rules, r.gen, r.defaultURL)
	d.now = r.now
	d.touched = r.now()

	r.mu.Lock()
	r.drafts[d.id] = d
	r.mu.Unlock()
	return d
}

// Get returns the draft with the given id.
func (r *Registry) Get(id string) (*Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// Delete closes a draft.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[id]; !ok {
		return ErrNotFound
	}
	delete(r.drafts, id)
	return nil
}

// Len returns the number of open drafts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

// Reap closes drafts untouched for longer than idle and returns how many
// were closed. A zero idle disables reaping.
func (r *Registry) Reap(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, d := range r.drafts {
		if d.LastTouched().Before(cutoff) {
			delete(r.drafts, id)
			n++
		}
	}
	return n
}
