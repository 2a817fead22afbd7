package shared

import (
	"bytes"
	"testing"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := GenerateID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("generated duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("expected logger to write to the provided writer")
	}
}
