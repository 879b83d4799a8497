package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers consulted, in order, when the peer is a trusted proxy.
var Headers = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Trust reports whether the direct peer may set forwarding headers.
type Trust func(peer netip.Addr) bool

// TrustLoopback trusts proxies on the loopback interface and in private
// networks, which covers a reverse proxy on the same host or cluster.
func TrustLoopback() Trust {
	return func(peer netip.Addr) bool {
		return peer.IsLoopback() || peer.IsPrivate()
	}
}

// TrustNone ignores every forwarding header.
func TrustNone() Trust {
	return func(netip.Addr) bool { return false }
}

// FromRequest returns the client address of r, or "" when RemoteAddr cannot
// be parsed. For X-Forwarded-For the left-most valid entry wins.
func FromRequest(r *http.Request, trust Trust) string {
	peer, ok := parse(r.RemoteAddr)
	if !ok {
		return ""
	}
	if trust == nil || !trust(peer) {
		return peer.String()
	}

	for _, h := range Headers {
		for part := range strings.SplitSeq(r.Header.Get(h), ",") {
			if addr, ok := parse(part); ok {
				return addr.String()
			}
		}
	}
	return peer.String()
}

// parse accepts a bare address or host:port and unmaps IPv4-in-IPv6.
func parse(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap().WithZone(""), true
}
