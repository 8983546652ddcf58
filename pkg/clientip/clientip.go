package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// HeaderForwardedFor is the proxy chain header consulted by GetIP.
const HeaderForwardedFor = "X-Forwarded-For"

// GetIP returns the public client IP address of the request, or an empty
// string when neither the forwarded chain nor the peer address yields one.
// Multiple X-Forwarded-For headers are treated as one comma-separated chain.
func GetIP(r *http.Request) string {
	return Resolve(strings.Join(r.Header.Values(HeaderForwardedFor), ","), r.RemoteAddr)
}

// Resolve picks the client IP from a forwarded-for chain and a remote address.
//
// The forwarded chain is consulted first, then the remote address. For each
// source only the last comma-separated hop is considered; it is accepted when
// it is a valid IP literal that is not private or internal. An optional port
// is stripped. The empty string means no candidate was accepted.
func Resolve(forwardedFor, remoteAddr string) string {
	for _, source := range [...]string{forwardedFor, remoteAddr} {
		if source == "" {
			continue
		}
		if ip, ok := publicIP(lastHop(source)); ok {
			return ip
		}
	}
	return ""
}

// IsValid reports whether ip is a syntactically valid IPv4 or IPv6 literal.
// Zoned IPv6 addresses are rejected.
func IsValid(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	return err == nil && addr.Zone() == ""
}

// IsPrivate reports whether ip belongs to a private or internal range:
// RFC 1918 and RFC 4193 networks, loopback, link-local and unspecified
// addresses. Invalid input is not private.
func IsPrivate(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified()
}

// lastHop returns the trimmed last comma-separated token with any port removed.
func lastHop(chain string) string {
	hop := chain
	if idx := strings.LastIndexByte(chain, ','); idx >= 0 {
		hop = chain[idx+1:]
	}
	hop = strings.TrimSpace(hop)

	// SplitHostPort fails for bare addresses, which are returned unchanged.
	if host, _, err := net.SplitHostPort(hop); err == nil {
		return host
	}
	return hop
}

func publicIP(ip string) (string, bool) {
	if !IsValid(ip) || IsPrivate(ip) {
		return "", false
	}
	return netip.MustParseAddr(ip).String(), true
}
