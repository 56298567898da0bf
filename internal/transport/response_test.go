package transport

import (
	"errors"
	"testing"
)

func TestCheckStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  string
		ok   bool
		line string
	}{
		{name: "ok", raw: "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\n{}", ok: true},
		{name: "ok lf only", raw: "HTTP/1.1 200 OK\nrest", ok: true},
		{name: "bad request", raw: "HTTP/1.1 400 Bad Request\r\n\r\n", ok: false, line: "HTTP/1.1 400 Bad Request"},
		{name: "redirect", raw: "HTTP/1.1 302 Found\r\n\r\n", ok: false, line: "HTTP/1.1 302 Found"},
		{name: "empty response", raw: "", ok: false, line: ""},
		{name: "garbage", raw: "not http at all", ok: false, line: "not http at all"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStatus([]byte(tt.raw))
			if tt.ok {
				if err != nil {
					t.Fatalf("CheckStatus() error: %v", err)
				}
				return
			}
			var de *DeliveryError
			if !errors.As(err, &de) {
				t.Fatalf("CheckStatus() error = %v, want DeliveryError", err)
			}
			if de.StatusLine != tt.line {
				t.Fatalf("StatusLine = %q, want %q", de.StatusLine, tt.line)
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	t.Parallel()
	if got := StatusLine([]byte("HTTP/1.1 200 OK\r\nServer: x\r\n")); got != "HTTP/1.1 200 OK" {
		t.Fatalf("StatusLine = %q", got)
	}
	if got := StatusLine([]byte("no newline")); got != "no newline" {
		t.Fatalf("StatusLine = %q", got)
	}
}

func TestDeliveryErrorText(t *testing.T) {
	t.Parallel()
	if got := (&DeliveryError{StatusLine: "HTTP/1.1 429 Too Many Requests"}).Error(); got != "http request failed: HTTP/1.1 429 Too Many Requests" {
		t.Fatalf("Error() = %q", got)
	}
	if got := (&DeliveryError{}).Error(); got != "empty response" {
		t.Fatalf("Error() = %q", got)
	}
}
