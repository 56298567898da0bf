package transport

import (
	"strings"
	"testing"
)

func TestFrameRequest(t *testing.T) {
	t.Parallel()
	got := string(FrameRequest("api.pushover.net", "/1/messages.json", "token=abc&user=def"))

	want := "POST /1/messages.json HTTP/1.1\r\n" +
		"Host: api.pushover.net\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"Content-Length: 18\r\n" +
		"Connection: close\r\n" +
		"User-Agent: " + userAgent + "\r\n" +
		"\r\n" +
		"token=abc&user=def"

	if got != want {
		t.Fatalf("frame mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFrameRequestContentLengthIsBytes(t *testing.T) {
	t.Parallel()
	body := "message=%C3%A1" // already encoded, but the rule holds for any body
	frame := string(FrameRequest("example.com", "/", body))
	if !strings.Contains(frame, "Content-Length: 14\r\n") {
		t.Fatalf("frame missing exact byte length header: %q", frame)
	}

	// Raw multi-byte content: length must count bytes, not runes.
	raw := "áé" // 4 bytes, 2 runes
	frame = string(FrameRequest("example.com", "/", raw))
	if !strings.Contains(frame, "Content-Length: 4\r\n") {
		t.Fatalf("Content-Length must count bytes: %q", frame)
	}
}

func TestFrameRequestEmptyBody(t *testing.T) {
	t.Parallel()
	frame := string(FrameRequest("example.com", "/", ""))
	if !strings.Contains(frame, "Content-Length: 0\r\n") {
		t.Fatalf("empty body must still carry Content-Length: %q", frame)
	}
	if !strings.HasSuffix(frame, "\r\n\r\n") {
		t.Fatalf("frame must end with the header terminator: %q", frame)
	}
}
