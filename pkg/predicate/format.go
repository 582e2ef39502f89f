package predicate

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// maxURLLength mirrors the limit most browsers enforce.
const maxURLLength = 2083

var (
	tldRegex = regexp.MustCompile(`^(?i:[a-z\x{00a1}-\x{ffff}]{2,}|xn[a-z0-9-]{2,})$`)

	defaultURLProtocols = []string{"http", "https", "ftp"}
)

// EmailOptions tunes IsEmail. The zero value accepts a bare ASCII address
// whose domain has a top-level domain.
type EmailOptions struct {
	// AllowDisplayName accepts the "Display Name <user@example.com>" form.
	AllowDisplayName bool `mapstructure:"allow_display_name" json:"allow_display_name,omitempty"`
	// AllowUTF8LocalPart accepts non-ASCII characters before the @ sign.
	AllowUTF8LocalPart bool `mapstructure:"allow_utf8_local_part" json:"allow_utf8_local_part,omitempty"`
	// AllowNoTLD accepts domains without a top-level domain such as "localhost".
	AllowNoTLD bool `mapstructure:"allow_no_tld" json:"allow_no_tld,omitempty"`
}

// FQDNOptions tunes IsFQDN.
type FQDNOptions struct {
	AllowNoTLD       bool `mapstructure:"allow_no_tld" json:"allow_no_tld,omitempty"`
	AllowUnderscores bool `mapstructure:"allow_underscores" json:"allow_underscores,omitempty"`
	AllowTrailingDot bool `mapstructure:"allow_trailing_dot" json:"allow_trailing_dot,omitempty"`
}

// URLOptions tunes IsURL. The zero value accepts http, https and ftp URLs
// with or without a scheme and requires a top-level domain unless the host
// is an IP address.
type URLOptions struct {
	// Protocols overrides the accepted schemes (http, https and ftp by default).
	Protocols []string `mapstructure:"protocols" json:"protocols,omitempty"`
	// RequireProtocol rejects URLs without an explicit scheme.
	RequireProtocol bool `mapstructure:"require_protocol" json:"require_protocol,omitempty"`
	// AllowAnyProtocol accepts schemes outside Protocols.
	AllowAnyProtocol bool `mapstructure:"allow_any_protocol" json:"allow_any_protocol,omitempty"`
	// AllowProtocolRelative accepts URLs starting with "//".
	AllowProtocolRelative bool     `mapstructure:"allow_protocol_relative" json:"allow_protocol_relative,omitempty"`
	AllowUnderscores      bool     `mapstructure:"allow_underscores" json:"allow_underscores,omitempty"`
	AllowTrailingDot      bool     `mapstructure:"allow_trailing_dot" json:"allow_trailing_dot,omitempty"`
	AllowNoTLD            bool     `mapstructure:"allow_no_tld" json:"allow_no_tld,omitempty"`
	HostWhitelist         []string `mapstructure:"host_whitelist" json:"host_whitelist,omitempty"`
	HostBlacklist         []string `mapstructure:"host_blacklist" json:"host_blacklist,omitempty"`
}

// IsEmail reports whether s is an e-mail address.
// Parsing goes through net/mail first, then the local part and the domain
// are checked separately.
func IsEmail(s string, opts EmailOptions) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	if !opts.AllowDisplayName && addr.Address != s {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 {
		return false
	}
	local, domain := addr.Address[:at], addr.Address[at+1:]

	if len(local) > 64 {
		return false
	}
	if !opts.AllowUTF8LocalPart && !IsASCII(local) {
		return false
	}

	return IsFQDN(domain, FQDNOptions{AllowNoTLD: opts.AllowNoTLD})
}

// IsFQDN reports whether s is a fully qualified domain name (e.g. domain.com).
func IsFQDN(s string, opts FQDNOptions) bool {
	if opts.AllowTrailingDot {
		s = strings.TrimSuffix(s, ".")
	}
	// Domain name should be 1-253 characters
	if s == "" || len(s) > 253 {
		return false
	}

	labels := strings.Split(s, ".")
	if !opts.AllowNoTLD {
		if len(labels) < 2 || !tldRegex.MatchString(labels[len(labels)-1]) {
			return false
		}
	}

	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			switch {
			case r == '_':
				if !opts.AllowUnderscores {
					return false
				}
			case r >= 0xFF01 && r <= 0xFF5E:
				// full-width forms of ASCII punctuation and letters
				return false
			case r == '-', r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			case r >= 0x00A1:
			default:
				return false
			}
		}
	}

	return true
}

// IsURL reports whether s is a URL.
func IsURL(s string, opts URLOptions) bool {
	if s == "" || len(s) >= maxURLLength {
		return false
	}
	if strings.ContainsFunc(s, unicode.IsSpace) || strings.HasPrefix(strings.ToLower(s), "mailto:") {
		return false
	}

	protocols := opts.Protocols
	if len(protocols) == 0 {
		protocols = defaultURLProtocols
	}

	rest := s
	if scheme, after, ok := strings.Cut(s, "://"); ok {
		scheme = strings.ToLower(scheme)
		if scheme == "" {
			return false
		}
		if !opts.AllowAnyProtocol && !slices.Contains(protocols, scheme) {
			return false
		}
		rest = after
	} else if strings.HasPrefix(s, "//") {
		if !opts.AllowProtocolRelative {
			return false
		}
		rest = s[2:]
	} else if opts.RequireProtocol {
		return false
	}

	// Re-attach a neutral scheme so net/url splits host and port for us.
	u, err := url.Parse("http://" + rest)
	if err != nil {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if len(opts.HostWhitelist) > 0 && !slices.Contains(opts.HostWhitelist, host) {
		return false
	}
	if slices.Contains(opts.HostBlacklist, host) {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}

	return IsFQDN(host, FQDNOptions{
		AllowNoTLD:       opts.AllowNoTLD,
		AllowUnderscores: opts.AllowUnderscores,
		AllowTrailingDot: opts.AllowTrailingDot,
	})
}

// IsIP reports whether s is an IP address of the given version.
// Version 0 accepts both IPv4 and IPv6; any other version is rejected.
func IsIP(s string, version int) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}

	switch version {
	case 0:
		return true
	case 4:
		return ip.To4() != nil && !strings.Contains(s, ":")
	case 6:
		// IPv6 addresses can include IPv4-mapped addresses
		return strings.Contains(s, ":")
	default:
		return false
	}
}
