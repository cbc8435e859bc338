package identifier

import (
	"strings"
	"testing"
)

func TestNewCharset(t *testing.T) {
	id := New()
	if len(id) <= suffixSize {
		t.Fatalf("id %q shorter than expected", id)
	}
	for _, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("id %q contains character %q outside the base36 alphabet", id, r)
		}
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
