package form

import "testing"

func TestFieldsOrderAndEncoding(t *testing.T) {
	t.Parallel()
	var f Fields
	f.Add("token", "abc123")
	f.Add("user", "u@example.com")
	f.Add("message", "hello world")

	want := "token=abc123&user=u%40example.com&message=hello+world"
	if got := f.Encode(); got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
}

func TestFieldsEmptyValues(t *testing.T) {
	t.Parallel()
	var f Fields
	f.Add("token", "")
	f.Add("user", "")

	// No emptiness policy here: empty credentials still produce pairs.
	if got := f.Encode(); got != "token=&user=" {
		t.Fatalf("Encode() = %q, want %q", got, "token=&user=")
	}
}

func TestFieldsZeroValue(t *testing.T) {
	t.Parallel()
	var f Fields
	if got := f.Encode(); got != "" {
		t.Fatalf("Encode() on zero value = %q, want empty", got)
	}
}
