// Package transport frames HTTP/1.1 requests and delivers them over a
// one-shot TLS connection.
package transport

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"strconv"
	"time"
)

// Options controls how the Client connects and reads.
//
// All timeouts default to zero, which disables the bound; delivery then
// blocks until the peer answers or the connection drops.
type Options struct {
	ConnTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// TLSConfig overrides the TLS client configuration. Nil means the
	// system root pool with hostname verification against the dialed host.
	TLSConfig *tls.Config
}

// OpError tags a transport failure with the operation that produced it.
// Op is one of "connect", "handshake", "write" or "read".
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *OpError) Unwrap() error { return e.Err }

// Client sends one framed request per call over a fresh TLS connection.
// No pooling, no reuse, no retries.
type Client struct {
	opts Options
}

func NewClient(opts Options) *Client { return &Client{opts: opts} }

// Do connects to host:port, completes the TLS handshake (verifying the
// certificate chain and hostname), writes req in full, then reads until the
// peer closes and returns the raw response bytes.
func (c *Client) Do(ctx context.Context, host string, port uint16, req []byte) ([]byte, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))

	d := net.Dialer{Timeout: c.opts.ConnTimeout}
	raw, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &OpError{Op: "connect", Err: err}
	}
	defer raw.Close()

	tcfg := c.opts.TLSConfig
	if tcfg == nil {
		tcfg = &tls.Config{}
	} else {
		tcfg = tcfg.Clone()
	}
	if tcfg.ServerName == "" {
		tcfg.ServerName = host
	}

	conn := tls.Client(raw, tcfg)
	if err := conn.HandshakeContext(ctx); err != nil {
		return nil, &OpError{Op: "handshake", Err: err}
	}

	if c.opts.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
	}
	if _, err := conn.Write(req); err != nil {
		return nil, &OpError{Op: "write", Err: err}
	}
	if c.opts.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Time{})
	}

	if c.opts.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(c.opts.ReadTimeout))
	}
	resp, err := io.ReadAll(conn)
	if err != nil {
		return nil, &OpError{Op: "read", Err: err}
	}
	return resp, nil
}
