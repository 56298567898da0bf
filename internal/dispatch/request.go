package dispatch

import (
	"os"

	"pushover/internal/config"
)

// Params is the validated CLI input for one dispatch.
type Params struct {
	Title         string
	Message       string
	Priority      int
	TokenOverride string
}

// Request is the resolved set of fields for one notification. It is built
// once from configuration plus CLI parameters and never mutated afterwards.
type Request struct {
	Title    string
	Message  string
	Priority int

	// Token is the effective application token: a CLI override wins over
	// the configured one.
	Token string

	Sound  string
	Device string
}

// NewRequest merges cfg and p into a Request.
//
// Title precedence: explicit flag, then default_title from the config, then
// "<hostname> @" with a localhost fallback.
func NewRequest(cfg *config.Config, p Params) Request {
	r := Request{
		Title:    p.Title,
		Message:  p.Message,
		Priority: p.Priority,
		Token:    cfg.Pushover.Token,
	}
	if p.TokenOverride != "" {
		r.Token = p.TokenOverride
	}
	if r.Title == "" {
		r.Title = cfg.Pushover.DefaultTitle
	}
	if r.Title == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "localhost"
		}
		r.Title = host + " @"
	}
	if n := cfg.Notification; n != nil {
		r.Sound = n.Sound
		r.Device = n.Device
	}
	return r
}
