package governance

import (
	"fmt"
	"net"
	"net/url"
)

// ValidateOutboundURL rejects URLs addressing private, loopback, or
// link-local ranges before any socket is opened. Literal IPs are checked
// here synchronously; hostname resolution is deliberately left to the
// dialer (which must re-check the resolved address — checking DNS here
// would still be racy against rebinding).
func ValidateOutboundURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("governance: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("governance: unsupported scheme %q", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("governance: url has no host")
	}

	if ip := net.ParseIP(host); ip != nil && isForbiddenIP(ip) {
		return fmt.Errorf("governance: url addresses a forbidden range: %s", host)
	}
	return nil
}

// isForbiddenIP reports whether an address belongs to a range outbound
// fetches must never reach.
func isForbiddenIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
