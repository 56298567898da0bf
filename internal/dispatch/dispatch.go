package dispatch

import (
	"context"
	"strconv"
	"time"

	"pushover/internal/config"
	"pushover/internal/endpoint"
	"pushover/internal/form"
	"pushover/internal/journal"
	"pushover/internal/transport"
	"pushover/pkg/logx"
)

// apiURL is the fixed delivery endpoint.
const apiURL = "https://api.pushover.net/1/messages.json"

// Sender delivers framed request bytes to a TLS endpoint.
type Sender interface {
	Do(ctx context.Context, host string, port uint16, req []byte) ([]byte, error)
}

// Stage names the pipeline step that produced a dispatch failure.
type Stage string

const (
	StageEndpoint  Stage = "endpoint"
	StageTransport Stage = "transport"
	StageResponse  Stage = "response"
)

// Error tags a dispatch failure with its pipeline stage.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string { return string(e.Stage) + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Dispatcher sends a single notification per Dispatch call.
type Dispatcher struct {
	url     string
	sender  Sender
	journal journal.Store
	log     logx.Logger
}

func New(sender Sender, log logx.Logger) *Dispatcher {
	return &Dispatcher{
		url:    apiURL,
		sender: sender,
		log:    log.With(logx.String("component", "dispatch")),
	}
}

// SetJournal attaches an optional delivery journal. A nil store keeps the
// journal disabled.
func (d *Dispatcher) SetJournal(st journal.Store) { d.journal = st }

// Dispatch performs one resolve -> encode -> frame -> send -> check cycle
// and records the outcome in the journal when one is attached.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *config.Config, req Request) error {
	start := time.Now()
	err := d.dispatch(ctx, cfg, req)
	d.record(ctx, req, time.Since(start), err)
	return err
}

func (d *Dispatcher) dispatch(ctx context.Context, cfg *config.Config, req Request) error {
	target, err := endpoint.Resolve(d.url)
	if err != nil {
		return &Error{Stage: StageEndpoint, Err: err}
	}

	body := formBody(cfg, req)
	frame := transport.FrameRequest(target.Host, target.Path, body)

	d.log.Debug("sending notification",
		logx.String("host", target.Host),
		logx.Int("port", int(target.Port)),
		logx.Int("priority", req.Priority),
		logx.Int("body_bytes", len(body)),
	)

	resp, err := d.sender.Do(ctx, target.Host, target.Port, frame)
	if err != nil {
		return &Error{Stage: StageTransport, Err: err}
	}
	if err := transport.CheckStatus(resp); err != nil {
		return &Error{Stage: StageResponse, Err: err}
	}

	d.log.Debug("notification accepted", logx.String("status", transport.StatusLine(resp)))
	return nil
}

// formBody assembles the form fields in their fixed order: token, user,
// title, message, then priority (omitted at 0, the API default), then sound
// and device when configured.
func formBody(cfg *config.Config, req Request) string {
	var f form.Fields
	f.Add("token", req.Token)
	f.Add("user", cfg.Pushover.User)
	f.Add("title", req.Title)
	f.Add("message", req.Message)
	if req.Priority != 0 {
		f.Add("priority", strconv.Itoa(req.Priority))
	}
	if req.Sound != "" {
		f.Add("sound", req.Sound)
	}
	if req.Device != "" {
		f.Add("device", req.Device)
	}
	return f.Encode()
}

func (d *Dispatcher) record(ctx context.Context, req Request, took time.Duration, err error) {
	if d.journal == nil {
		return
	}
	e := journal.Entry{
		At:       time.Now(),
		Title:    req.Title,
		Priority: req.Priority,
		Sound:    req.Sound,
		Device:   req.Device,
		OK:       err == nil,
		TookMS:   took.Milliseconds(),
	}
	if err != nil {
		e.Error = err.Error()
	}
	if jerr := d.journal.Append(ctx, e); jerr != nil {
		d.log.Warn("journal append failed", logx.Err(jerr))
	}
}
