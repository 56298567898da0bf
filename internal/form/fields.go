package form

import "strings"

// Fields assembles an ordered sequence of key=value pairs.
//
// Insertion order is preserved so the wire bytes are reproducible. Values
// are encoded on insert; keys are expected to be plain ASCII names and are
// written as-is.
type Fields struct {
	pairs []string
}

// Add appends key=value with the value percent-encoded.
// Empty values are appended unchanged; callers own any emptiness policy.
func (f *Fields) Add(key, value string) {
	f.pairs = append(f.pairs, key+"="+Encode(value))
}

// Encode joins the accumulated pairs with "&".
func (f *Fields) Encode() string {
	return strings.Join(f.pairs, "&")
}

// Len reports the number of accumulated pairs.
func (f *Fields) Len() int { return len(f.pairs) }
