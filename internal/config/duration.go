package config

import (
	"fmt"
	"strings"
	"time"
)

func parseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}

// Timeouts parses the transport timeout fields. Empty fields yield zero,
// which disables the corresponding bound.
func (t TransportConfig) Timeouts() (connect, read, write time.Duration, err error) {
	if connect, err = parseDurationField("transport.connect_timeout", t.ConnectTimeout); err != nil {
		return 0, 0, 0, err
	}
	if read, err = parseDurationField("transport.read_timeout", t.ReadTimeout); err != nil {
		return 0, 0, 0, err
	}
	if write, err = parseDurationField("transport.write_timeout", t.WriteTimeout); err != nil {
		return 0, 0, 0, err
	}
	return connect, read, write, nil
}
