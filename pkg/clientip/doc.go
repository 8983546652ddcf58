// Package clientip classifies IP addresses and resolves the public address
// of the end user from proxy metadata.
//
// Tracking must only record addresses that identify a real client, so the
// resolution policy rejects anything that is malformed or points into a
// private network.
//
// The resolution algorithm looks at two sources in order:
//
//  1. X-Forwarded-For – the last hop of the comma-separated chain
//  2. RemoteAddr      – the TCP peer address, port stripped
//
// A source is accepted only when its candidate is a valid IP literal and is
// not private, loopback, link-local or unspecified.
//
// # Usage
//
//	import "github.com/dmitrymomot/gatrack/pkg/clientip"
//
//	// From an *http.Request
//	ip := clientip.GetIP(r)
//
//	// From raw request metadata
//	ip = clientip.Resolve(meta["X_FORWARDED_FOR"], meta["REMOTE_ADDR"])
//
//	// Primitive checks
//	clientip.IsValid("203.0.113.7")   // true
//	clientip.IsPrivate("192.168.1.1") // true
//
// # Error Handling
//
// Nothing in this package returns an error. Resolve and GetIP return an
// empty string when no acceptable address is found so callers can leave the
// address unset.
package clientip
