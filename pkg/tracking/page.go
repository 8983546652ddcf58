package tracking

import (
	"strings"
	"time"
)

// ReferrerInternal marks a referrer from the same site.
const ReferrerInternal = "0"

// Page describes a tracked pageview.
type Page struct {
	Title    string
	Charset  string
	Referrer string

	path        string
	loadTime    int
	hasLoadTime bool
}

// NewPage returns a page for the given request path. See SetPath.
func NewPage(path string) (*Page, error) {
	p := &Page{}
	if err := p.SetPath(path); err != nil {
		return nil, err
	}
	return p, nil
}

// Path returns the page request URI.
func (p *Page) Path() string { return p.path }

// SetPath sets the page request URI. It must be empty or start with a slash.
func (p *Page) SetPath(path string) error {
	if path != "" && !strings.HasPrefix(path, "/") {
		return &ValidationError{Field: "path", Message: `must start with a slash ("/")`}
	}
	p.path = path
	return nil
}

// LoadTime returns the page load time in milliseconds, if set.
func (p *Page) LoadTime() (int, bool) {
	return p.loadTime, p.hasLoadTime
}

// SetLoadTime sets the page load time in whole milliseconds.
func (p *Page) SetLoadTime(ms int) error {
	if ms < 0 {
		return &ValidationError{Field: "load_time", Message: "must not be negative"}
	}
	p.loadTime = ms
	p.hasLoadTime = true
	return nil
}

// SetLoadTimeDuration sets the page load time from a duration, which must be
// a whole number of milliseconds.
func (p *Page) SetLoadTimeDuration(d time.Duration) error {
	if d%time.Millisecond != 0 {
		return &ValidationError{Field: "load_time", Message: "must be specified in integer milliseconds"}
	}
	return p.SetLoadTime(int(d.Milliseconds()))
}

// ClearLoadTime unsets the page load time.
func (p *Page) ClearLoadTime() {
	p.loadTime = 0
	p.hasLoadTime = false
}
