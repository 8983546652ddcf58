package tracking

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/gatrack/pkg/clientip"
	"github.com/dmitrymomot/gatrack/pkg/i18n"
)

// Meta holds request metadata in CGI style, keyed by the Meta* constants.
type Meta map[string]string

// Keys understood by Visitor.ExtractFromMeta.
const (
	MetaForwardedFor   = "X_FORWARDED_FOR"
	MetaRemoteAddr     = "REMOTE_ADDR"
	MetaUserAgent      = "HTTP_USER_AGENT"
	MetaAcceptLanguage = "HTTP_ACCEPT_LANGUAGE"
)

// MetaFromRequest collects the metadata of r that visitors are built from.
func MetaFromRequest(r *http.Request) Meta {
	return Meta{
		MetaForwardedFor:   strings.Join(r.Header.Values(clientip.HeaderForwardedFor), ","),
		MetaRemoteAddr:     r.RemoteAddr,
		MetaUserAgent:      r.UserAgent(),
		MetaAcceptLanguage: r.Header.Get("Accept-Language"),
	}
}

// ExtractFromMeta fills the IP address, user agent and locale from request
// metadata. Each field is best-effort: it is only overwritten when the
// metadata yields a usable value, so a private IP or a malformed
// Accept-Language header leaves the previous value in place.
func (v *Visitor) ExtractFromMeta(meta Meta) *Visitor {
	if ip := clientip.Resolve(meta[MetaForwardedFor], meta[MetaRemoteAddr]); ip != "" {
		v.IPAddress = ip
	}

	if ua := meta[MetaUserAgent]; ua != "" {
		v.UserAgent = ua
	}

	if locale, ok := i18n.PreferredLocale(meta[MetaAcceptLanguage]); ok {
		v.Locale = locale
	}

	return v
}
