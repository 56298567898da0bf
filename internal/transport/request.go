package transport

import (
	"strconv"
	"strings"
)

// userAgent identifies this client on the wire.
const userAgent = "pushover-go/1.0"

// FrameRequest renders a complete HTTP/1.1 POST as wire bytes.
//
// Content-Length is the byte length of body (not the rune count), which
// keeps the frame correct for multi-byte payloads. Connection: close keeps
// the read side simple: the response is complete when the peer closes. No
// other headers, no chunking.
func FrameRequest(host, path, body string) []byte {
	var b strings.Builder
	b.Grow(len(body) + 192)
	b.WriteString("POST " + path + " HTTP/1.1\r\n")
	b.WriteString("Host: " + host + "\r\n")
	b.WriteString("Content-Type: application/x-www-form-urlencoded\r\n")
	b.WriteString("Content-Length: " + strconv.Itoa(len(body)) + "\r\n")
	b.WriteString("Connection: close\r\n")
	b.WriteString("User-Agent: " + userAgent + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
