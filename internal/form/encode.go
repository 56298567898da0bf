// Package form builds x-www-form-urlencoded request bodies.
package form

import "strings"

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes s for use in a form body.
//
// Unreserved characters (ALPHA / DIGIT / "-" / "_" / "." / "~") pass
// through, a space becomes "+", and every other byte is emitted as an
// uppercase %XX triplet. Multi-byte runes yield one triplet per UTF-8 byte.
//
// Every input has a defined output; the function is pure and deterministic.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}
