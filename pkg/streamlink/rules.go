package streamlink

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// Defaults mirror the hosts and embed paths accepted by the player pages.
var (
	DefaultDomains = []string{"hlswish.com", "streamwish.to", "cdnplaypro.com"}
	DefaultModes   = []string{"e", "d"}
)

const (
	DefaultMinTokenLen = 6

	// maxRepeat is the longest run of one character a URL may contain.
	maxRepeat = 10
)

// Rules is the allow-list a canonical URL is checked against.
// A Rules value is immutable once built and safe for concurrent use.
type Rules struct {
	domains     map[string]struct{}
	domainList  []string
	modes       []string
	minTokenLen int
	path        *regexp.Regexp
}

// NewRules builds a rule set. Domains are matched exactly against the
// lower-cased ASCII host; modes are the literal first path segments.
func NewRules(domains, modes []string, minTokenLen int) (*Rules, error) {
	if len(domains) == 0 {
		return nil, errors.New("at least one domain is required")
	}
	if len(modes) == 0 {
		return nil, errors.New("at least one path mode is required")
	}
	if minTokenLen < 1 {
		return nil, fmt.Errorf("min token length must be positive, got %d", minTokenLen)
	}

	r := &Rules{
		domains:     make(map[string]struct{}, len(domains)),
		minTokenLen: minTokenLen,
	}
	for _, d := range domains {
		if d == "" {
			return nil, errors.New("empty domain in allow-list")
		}
		if _, dup := r.domains[d]; !dup {
			r.domains[d] = struct{}{}
			r.domainList = append(r.domainList, d)
		}
	}

	quoted := make([]string, 0, len(modes))
	for _, m := range modes {
		if m == "" || strings.ContainsAny(m, "/?#") {
			return nil, fmt.Errorf("invalid path mode %q", m)
		}
		quoted = append(quoted, regexp.QuoteMeta(m))
		r.modes = append(r.modes, m)
	}
	r.path = regexp.MustCompile(fmt.Sprintf(`^/(?:%s)/[A-Za-z0-9]{%d,}$`, strings.Join(quoted, "|"), minTokenLen))

	return r, nil
}

// DefaultRules returns the built-in rule set.
func DefaultRules() *Rules {
	r, err := NewRules(DefaultDomains, DefaultModes, DefaultMinTokenLen)
	if err != nil {
		panic(err)
	}
	return r
}

// Domains returns the allow-listed hosts in configuration order.
func (r *Rules) Domains() []string { return append([]string(nil), r.domainList...) }

// Modes returns the accepted path modes.
func (r *Rules) Modes() []string { return append([]string(nil), r.modes...) }

// MinTokenLen returns the minimum token length.
func (r *Rules) MinTokenLen() int { return r.minTokenLen }

// IsValid reports whether canonical points at an accepted host and embed path
// and carries none of the patterns typical of garbage pastes.
func (r *Rules) IsValid(canonical string) bool {
	u, err := url.Parse(canonical)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	// The host must already be in ASCII lookup form. Punycode labels that
	// decode back to plain ASCII ("xn--streamwish-.to") are not the same host.
	host := strings.ToLower(u.Hostname())
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil || ascii != host {
		return false
	}
	if _, ok := r.domains[host]; !ok {
		return false
	}

	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" || strings.Contains(canonical, "#") {
		return false
	}
	if !r.path.MatchString(u.Path) {
		return false
	}

	return !suspicious(canonical)
}

// suspicious reports long character runs, characters outside the URL-safe
// subset, or consecutive dots.
func suspicious(s string) bool {
	run := 0
	var prev rune
	for i, c := range s {
		if !allowedChar(c) {
			return true
		}
		if i > 0 && c == prev {
			run++
		} else {
			run = 1
		}
		if run > maxRepeat {
			return true
		}
		if c == '.' && prev == '.' {
			return true
		}
		prev = c
	}
	return false
}

func allowedChar(c rune) bool {
	return isASCIIAlnum(c) || c == '/' || c == ':' || c == '.' || c == '-'
}
