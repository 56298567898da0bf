package journal

import (
	"context"
	"strings"
	"time"

	"pushover/pkg/logx"
)

// Entry records one dispatch attempt.
// Keep it compact and schema-stable.
type Entry struct {
	At       time.Time
	Title    string
	Priority int
	Sound    string
	Device   string
	OK       bool
	Error    string
	TookMS   int64
}

// Store is the minimal persistence API used by dispatch.
type Store interface {
	Append(ctx context.Context, e Entry) error
	Close() error
}

// Open initializes the journal at path.
// It returns (nil, nil) when path is empty (journal disabled).
func Open(path string, log logx.Logger) (Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return openSQLite(path, log)
}
