package tracking

import (
	"strconv"
	"time"
)

// MaxUniqueID is the largest visitor ID that fits the 31-bit utm slot.
const MaxUniqueID = 0x7fffffff

// Visitor is the long-lived identity of an end user, persisted across visits
// through the __utma cookie.
//
// The environment fields are optional; an empty string means unset.
// Use NewVisitor to construct one.
type Visitor struct {
	IPAddress         string
	UserAgent         string
	Locale            string
	FlashVersion      string
	JavaEnabled       string
	ScreenColourDepth string
	ScreenResolution  string

	uniqueID    uint32
	hasUniqueID bool

	firstVisitTime    time.Time
	previousVisitTime time.Time
	currentVisitTime  time.Time
	visitCount        int

	random func() uint32
	hash   func(string) uint32
}

// NewVisitor returns a visitor on its first visit: all visit timestamps are
// the current time and the visit count is 1. The unique ID stays unset until
// it is first read.
func NewVisitor(opts ...Option) *Visitor {
	o := applyOptions(opts)
	now := o.now()

	return &Visitor{
		firstVisitTime:    now,
		previousVisitTime: now,
		currentVisitTime:  now,
		visitCount:        1,
		random:            o.random,
		hash:              o.hash,
	}
}

// UniqueID returns the visitor ID, generating and caching it on first access.
// The value is stable for the lifetime of the visitor unless replaced by
// SetUniqueID or cookie decoding.
func (v *Visitor) UniqueID() uint32 {
	if !v.hasUniqueID {
		v.uniqueID = v.GenerateUniqueID()
		v.hasUniqueID = true
	}
	return v.uniqueID
}

// HasUniqueID reports whether the visitor ID has been materialized.
func (v *Visitor) HasUniqueID() bool {
	return v.hasUniqueID
}

// SetUniqueID replaces the visitor ID. Values outside [0, MaxUniqueID] are
// rejected with a *ValidationError and leave the visitor unchanged.
func (v *Visitor) SetUniqueID(id int64) error {
	if err := validateUniqueID(id); err != nil {
		return err
	}
	v.uniqueID = uint32(id)
	v.hasUniqueID = true
	return nil
}

// GenerateUniqueID derives a fresh visitor ID by mixing a random number with
// the device fingerprint. It does not store the result.
func (v *Visitor) GenerateUniqueID() uint32 {
	random, hash := v.random, v.hash
	if random == nil || hash == nil {
		// zero Visitor, not built by NewVisitor
		o := defaultOptions()
		random, hash = o.random, o.hash
	}
	device := hash(v.UserAgent + v.ScreenResolution + v.ScreenColourDepth)
	return (random() ^ device) & MaxUniqueID
}

func (v *Visitor) FirstVisitTime() time.Time    { return v.firstVisitTime }
func (v *Visitor) PreviousVisitTime() time.Time { return v.previousVisitTime }
func (v *Visitor) CurrentVisitTime() time.Time  { return v.currentVisitTime }

// VisitCount returns the number of visits, never less than 1.
func (v *Visitor) VisitCount() int { return v.visitCount }

// AddSession folds a session into the visitor. A session that started at a
// different time than the current visit begins a new visit: the current visit
// time becomes the previous one, the session start becomes current and the
// visit count grows by one. A session of the current visit changes nothing.
func (v *Visitor) AddSession(s *Session) {
	if s == nil {
		return
	}

	startTime := s.StartTime()
	if startTime.Equal(v.currentVisitTime) {
		return
	}

	v.previousVisitTime = v.currentVisitTime
	v.currentVisitTime = startTime
	v.visitCount++
}

func validateUniqueID(id int64) error {
	if id < 0 || id > MaxUniqueID {
		return &ValidationError{
			Field:   "unique_id",
			Message: "must be between 0 and " + strconv.Itoa(MaxUniqueID),
		}
	}
	return nil
}
