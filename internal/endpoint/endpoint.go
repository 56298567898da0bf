// Package endpoint decomposes HTTPS URLs into dialable parts.
package endpoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const schemePrefix = "https://"

var (
	ErrUnsupportedScheme = errors.New("only https urls are supported")
	ErrInvalidPort       = errors.New("invalid port")
)

// Target is the dialable decomposition of an HTTPS URL.
// It is a plain value; two targets with equal fields are interchangeable.
type Target struct {
	Host string
	Port uint16
	Path string
}

// Resolve splits raw into host, port and path without touching the network.
//
// The scheme must be literally "https://". The authority may carry an
// explicit ":port" (parsed as uint16, ErrInvalidPort otherwise); absent, the
// port is 443. Everything from the first "/" after the authority is the
// path; a missing path becomes "/".
//
// An empty authority ("https://") resolves to an empty host rather than an
// error. Callers that need a non-empty host must check themselves.
func Resolve(raw string) (Target, error) {
	if !strings.HasPrefix(raw, schemePrefix) {
		return Target{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, raw)
	}
	rest := raw[len(schemePrefix):]

	authority := rest
	path := "/"
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority = rest[:i]
		path = rest[i:]
	}

	host := authority
	var port uint16 = 443
	if i := strings.IndexByte(authority, ':'); i >= 0 {
		host = authority[:i]
		p, err := strconv.ParseUint(authority[i+1:], 10, 16)
		if err != nil {
			return Target{}, fmt.Errorf("%w: %q", ErrInvalidPort, authority[i+1:])
		}
		port = uint16(p)
	}

	return Target{Host: host, Port: port, Path: path}, nil
}
