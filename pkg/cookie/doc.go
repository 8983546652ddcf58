// Package cookie provides a small HTTP cookie manager for plain, client
// readable cookies such as the utm __utma and __utmb cookies.
//
// A Manager carries default attributes (path, domain, lifetime, Secure,
// HttpOnly, SameSite) that every Set call starts from; per-call Option values
// override them without changing the defaults.
//
// # Usage
//
//	import "github.com/dmitrymomot/gatrack/pkg/cookie"
//
//	jar := cookie.New(cookie.WithDomain(".example.com"))
//
//	jar.Set(w, "__utma", value, cookie.WithMaxAge(2*365*24*time.Hour))
//
//	value, err := jar.Get(r, "__utma")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // first visit
//	}
//
// # Configuration
//
// Config can be loaded from the environment (COOKIE_PATH, COOKIE_DOMAIN,
// COOKIE_SECURE, COOKIE_HTTP_ONLY, COOKIE_SAME_SITE) and turned into a
// Manager with NewFromConfig.
//
// # Error Handling
//
// Get returns ErrCookieNotFound for a missing cookie. Values are not signed:
// callers must validate what they read.
package cookie
