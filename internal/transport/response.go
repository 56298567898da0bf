package transport

import "strings"

// DeliveryError reports a response whose status line did not indicate
// success. StatusLine carries the literal first line for diagnostics; it is
// empty when the peer closed without sending anything.
type DeliveryError struct {
	StatusLine string
}

func (e *DeliveryError) Error() string {
	if e.StatusLine == "" {
		return "empty response"
	}
	return "http request failed: " + e.StatusLine
}

// StatusLine returns the first line of a raw response without its line
// ending.
func StatusLine(raw []byte) string {
	s := string(raw)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "\r")
}

// CheckStatus classifies a raw response.
//
// Success iff the status line contains "200" anywhere; the API answers
// "HTTP/1.1 200 OK" on delivery. The substring match is deliberately loose
// and is part of this client's contract, not an oversight.
func CheckStatus(raw []byte) error {
	line := StatusLine(raw)
	if strings.Contains(line, "200") {
		return nil
	}
	return &DeliveryError{StatusLine: line}
}
