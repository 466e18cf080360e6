// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// URL is a validated, normalized absolute URL. It is used for relay
// addresses ("wss://relay.example.com/") and for group pictures.
//
// Normalization follows what a WHATWG URL parser does for the special
// schemes ws, wss, http and https: scheme and host are lowercased, the
// scheme's default port is dropped, and an empty path becomes "/". That
// last rule is why ParseURL("wss://relay.example.com") yields
// "wss://relay.example.com/".
//
// URL is an immutable value type that stores only the normalized
// string, so it is comparable and usable as a map key. The zero value
// is not valid; use IsZero to check.
type URL struct {
	raw string
}

// specialSchemeDefaultPorts maps each special scheme to its default
// port. Only these schemes get host and path normalization.
var specialSchemeDefaultPorts = map[string]string{
	"ws":    "80",
	"wss":   "443",
	"http":  "80",
	"https": "443",
}

// normalizationFlags are the purell rules applied to the scheme and
// authority. They cover the http/https default ports; ws/wss ports are
// handled in ParseURL. The path never passes through purell, which
// would decode escapes such as %2F.
const normalizationFlags = purell.FlagLowercaseScheme |
	purell.FlagLowercaseHost |
	purell.FlagRemoveDefaultPort |
	purell.FlagRemoveEmptyPortSeparator

// ParseURL parses and normalizes an absolute URL. Returns an error if
// the string does not parse, has no scheme, or uses a special scheme
// without a host.
func ParseURL(raw string) (URL, error) {
	if raw == "" {
		return URL{}, fmt.Errorf("empty URL")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme == "" {
		return URL{}, fmt.Errorf("invalid URL %q: relative URL without a base", raw)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if defaultPort, special := specialSchemeDefaultPorts[scheme]; special {
		if parsed.Host == "" || parsed.Hostname() == "" {
			return URL{}, fmt.Errorf("invalid URL %q: empty host", raw)
		}
		if parsed.Port() == defaultPort {
			parsed.Host = parsed.Hostname()
			if strings.Contains(parsed.Host, ":") {
				// IPv6 literal: Hostname strips the brackets.
				parsed.Host = "[" + parsed.Host + "]"
			}
		}
		if parsed.Path == "" && parsed.RawPath == "" {
			parsed.Path = "/"
		}
	}

	if err := normalizeAuthority(parsed); err != nil {
		return URL{}, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	return URL{raw: parsed.String()}, nil
}

// normalizeAuthority applies normalizationFlags to the scheme and host
// of parsed in place. The path, query and fragment keep their original
// escaping.
func normalizeAuthority(parsed *url.URL) error {
	if parsed.Host == "" {
		parsed.Scheme = strings.ToLower(parsed.Scheme)
		return nil
	}
	authority := &url.URL{Scheme: parsed.Scheme, Host: parsed.Host}
	normalized, err := url.Parse(purell.NormalizeURL(authority, normalizationFlags))
	if err != nil {
		return err
	}
	parsed.Scheme = normalized.Scheme
	parsed.Host = normalized.Host
	return nil
}

// MustParseURL is like ParseURL but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustParseURL(raw string) URL {
	u, err := ParseURL(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseURL(%q): %v", raw, err))
	}
	return u
}

// String returns the normalized URL string.
func (u URL) String() string { return u.raw }

// IsZero reports whether the URL is the zero value (uninitialized).
func (u URL) IsZero() bool { return u.raw == "" }

// Compare orders URLs by their normalized string form.
func (u URL) Compare(other URL) int { return strings.Compare(u.raw, other.raw) }

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parses and
// normalizes the URL. An empty input produces the zero value.
func (u *URL) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*u = URL{}
		return nil
	}
	parsed, err := ParseURL(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
