// Package fingerprint provides the stable string hash used by utm cookies.
//
// The same function serves two purposes: it produces the domain hash that
// prefixes every utm cookie value, and it condenses browser attributes
// (user agent, screen resolution, colour depth) into a device fingerprint
// that is mixed into freshly generated visitor IDs.
//
// # Usage
//
//	import "github.com/dmitrymomot/gatrack/pkg/fingerprint"
//
//	domainHash := fingerprint.Hash("example.com")
//	device := fingerprint.Device(r.UserAgent(), "1920x1080", "24-bit")
//
// # Error Handling
//
// Hash never fails. The algorithm is deterministic: the same input always
// yields the same value, independent of process, platform or Go version.
// It is not collision resistant and must not be used for anything security
// related.
package fingerprint
