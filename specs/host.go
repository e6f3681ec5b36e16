package specs

import (
	"net/netip"
	"strings"

	"golang.org/x/net/http/httpguts"
	"golang.org/x/net/publicsuffix"
)

// HostParts is an authority split into its pieces.
type HostParts struct {
	Username, Password string
	Hostname           string
	Port               string
}

// SplitHost decomposes the authority returned by UrlParser.Host.
//
// Username and Password are returned as written, still percent-encoded.
// It never fails: an unbalanced bracket, an empty host or a non numeric
// port simply land in the closest field. Placeholders such as
// "${host}:${port}" are split like any other text.
func SplitHost(host string) HostParts {
	var parts HostParts

	// credentials may hold a raw '@', the last one ends them
	if i := strings.LastIndex(host, "@"); i >= 0 {
		parts.Username, parts.Password, _ = strings.Cut(host[:i], ":")
		host = host[i+1:]
	}

	portIndex := strings.LastIndex(host, ":")
	if strings.HasPrefix(host, "[") {
		if i := strings.Index(host, "]"); i < 0 || i > portIndex {
			portIndex = -1
		}
	} else if strings.Count(host, ":") > 1 && !strings.Contains(host, "${") {
		// bare IPv6 literal without brackets
		portIndex = -1
	}

	if portIndex >= 0 {
		parts.Hostname, parts.Port = host[:portIndex], host[portIndex+1:]
	} else {
		parts.Hostname = host
	}
	return parts
}

// String reassembles the authority.
func (parts HostParts) String() string {
	var buf strings.Builder
	if parts.Username != "" || parts.Password != "" {
		buf.WriteString(parts.Username)
		if parts.Password != "" {
			buf.WriteByte(':')
			buf.WriteString(parts.Password)
		}
		buf.WriteByte('@')
	}
	buf.WriteString(parts.Hostname)
	if parts.Port != "" {
		buf.WriteByte(':')
		buf.WriteString(parts.Port)
	}
	return buf.String()
}

// IsPlaceholder reports whether the hostname still holds an
// unresolved ${variable}.
func (parts HostParts) IsPlaceholder() bool {
	return strings.Contains(parts.Hostname, "${")
}

// Domain returns the registrable domain (eTLD+1) of the hostname.
// IP literals, placeholders and names without a known public
// suffix give an empty string.
func (parts HostParts) Domain() string {
	hostname := strings.TrimSuffix(strings.ToLower(parts.Hostname), ".")
	if hostname == "" || parts.IsPlaceholder() {
		return ""
	}
	if _, err := netip.ParseAddr(strings.Trim(hostname, "[]")); err == nil {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return ""
	}
	return domain
}

// ValidHost reports whether host and port form a valid Host header value.
func (parts HostParts) ValidHost() bool {
	if parts.Hostname == "" {
		return false
	}
	return httpguts.ValidHostHeader(HostParts{Hostname: parts.Hostname, Port: parts.Port}.String())
}
