package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pushover/pkg/logx"
)

func TestOpenDisabled(t *testing.T) {
	t.Parallel()
	st, err := Open("", logx.Nop())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if st != nil {
		t.Fatal("Open(\"\") must return a nil store")
	}

	st, err = Open("   ", logx.Nop())
	if err != nil || st != nil {
		t.Fatalf("Open(blank) = %v, %v; want nil, nil", st, err)
	}
}

func TestAppendAndReadBack(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal.db")

	st, err := Open(path, logx.Nop())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	entries := []Entry{
		{Title: "build done", Priority: 0, OK: true, TookMS: 120},
		{At: time.Now(), Title: "disk alert", Priority: 2, Sound: "siren", Device: "phone", OK: false, Error: "http request failed: HTTP/1.1 400 Bad Request", TookMS: 340},
	}
	for _, e := range entries {
		if err := st.Append(ctx, e); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	ss, ok := st.(*sqliteStore)
	if !ok {
		t.Fatalf("unexpected store type %T", st)
	}

	var n int
	if err := ss.db.QueryRow(`SELECT COUNT(*) FROM deliveries`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(entries) {
		t.Fatalf("deliveries = %d, want %d", n, len(entries))
	}

	var title, errText string
	var okFlag, priority int
	row := ss.db.QueryRow(`SELECT title, priority, ok, err FROM deliveries WHERE title = ?`, "disk alert")
	if err := row.Scan(&title, &priority, &okFlag, &errText); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if priority != 2 || okFlag != 0 || errText == "" {
		t.Fatalf("row = %q %d %d %q", title, priority, okFlag, errText)
	}
}

func TestAppendFillsTimestamp(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal.db")
	st, err := Open(path, logx.Nop())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer st.Close()

	if err := st.Append(context.Background(), Entry{Title: "x", OK: true}); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	ss := st.(*sqliteStore)
	var at string
	if err := ss.db.QueryRow(`SELECT at FROM deliveries`).Scan(&at); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if _, err := time.Parse(time.RFC3339Nano, at); err != nil {
		t.Fatalf("stored timestamp %q not RFC3339Nano: %v", at, err)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.db")
	st, err := Open(path, logx.Nop())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer st.Close()
	if err := st.Append(context.Background(), Entry{Title: "ok", OK: true}); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
}
