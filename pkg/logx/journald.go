package logx

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/coreos/go-systemd/v22/journal"
)

// journaldWriter forwards zerolog lines to the systemd journal.
//
// The JSON line is reshaped into "message key=value ..." text; timestamp and
// level are dropped because the journal records its own arrival time and
// priority.
type journaldWriter struct{}

func (w journaldWriter) Write(p []byte) (int, error) {
	// Default to info when WriteLevel isn't used.
	return w.WriteLevel(zerolog.InfoLevel, p)
}

func (w journaldWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	msg := formatJournalLine(p)
	if msg == "" {
		return len(p), nil
	}
	_ = journal.Send(msg, journalPriority(level), nil)
	return len(p), nil
}

func journalPriority(level zerolog.Level) journal.Priority {
	switch {
	case level >= zerolog.ErrorLevel:
		return journal.PriErr
	case level >= zerolog.WarnLevel:
		return journal.PriWarning
	case level >= zerolog.InfoLevel:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

func formatJournalLine(p []byte) string {
	// Best-effort decode of a zerolog JSON line.
	var m map[string]any
	if err := json.Unmarshal(p, &m); err != nil {
		return strings.TrimSpace(string(p))
	}

	msg, _ := m["message"].(string)

	var b strings.Builder
	b.WriteString(msg)
	for k, v := range m {
		if k == "time" || k == "level" || k == "message" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(fmt.Sprint(v))
	}
	return strings.TrimSpace(b.String())
}
