// Package tracking models the state behind utm (Google Analytics compatible)
// tracking beacons.
//
// A Visitor is the long-lived identity of an end user and round-trips through
// the __utma cookie. A Session counts the pageviews of one visit and
// round-trips through the __utmb cookie. Page, Item, Transaction, Event,
// CustomVariable and SocialInteraction are validated field containers that an
// encoder turns into beacon parameters.
//
// Nothing in this package performs I/O. A request handler decodes the cookies
// at the start of a request, mutates the entities and encodes them back.
//
// # Usage
//
//	import "github.com/dmitrymomot/gatrack/pkg/tracking"
//
//	visitor := tracking.NewVisitor()
//	if _, err := visitor.ExtractFromUTMA(utma); err != nil {
//	    // keep the fresh visitor
//	}
//	visitor.ExtractFromMeta(tracking.MetaFromRequest(r))
//
//	session := tracking.NewSession()
//	if _, err := session.ExtractFromUTMB(utmb); err != nil {
//	    session = tracking.NewSession()
//	}
//	visitor.AddSession(session)
//	session.IncrementTrackCount()
//
//	utma = visitor.UTMA(domainHash)
//	utmb = session.UTMB(domainHash)
//
// The visitor unique ID is generated lazily on first read from a random number
// and a hash of the device attributes. Both sources, and the clock, can be
// replaced with WithRandom, WithHasher and WithClock.
//
// # Error Handling
//
// Malformed cookie values return a *FormatError (matching ErrInvalidCookie).
// Out-of-range fields on a setter or decode return a *ValidationError. The
// Validate methods return validator.ValidationErrors listing every failed
// field. Both match ErrValidation. Decoding is
// all-or-nothing: a failed decode leaves the entity untouched.
//
// Entities are not safe for concurrent use. Each request owns its own.
package tracking
