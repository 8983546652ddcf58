package tracking

import "time"

// Session counts the pageviews of a single visit, persisted through the
// __utmb cookie. It holds no reference to its visitor; use Visitor.AddSession
// to fold it in.
type Session struct {
	sessionID  uint32
	trackCount int
	startTime  time.Time
}

// NewSession starts a session now with a random session ID and no tracked pageviews.
func NewSession(opts ...Option) *Session {
	o := applyOptions(opts)
	return &Session{
		sessionID: o.random(),
		startTime: o.now(),
	}
}

// SessionID returns the per-session ID assigned at construction.
func (s *Session) SessionID() uint32 { return s.sessionID }

// TrackCount returns the number of pageviews tracked within the session.
func (s *Session) TrackCount() int { return s.trackCount }

// StartTime returns the time the session began.
func (s *Session) StartTime() time.Time { return s.startTime }

// IncrementTrackCount records one more tracked pageview.
func (s *Session) IncrementTrackCount() {
	s.trackCount++
}
