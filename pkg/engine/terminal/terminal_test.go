package terminal

import (
	"bytes"
	"os"
	"testing"
)

func TestBufferIsNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("a buffer is not a terminal")
	}
	w, h := GetSize(&buf)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize = %d,%d, want defaults", w, h)
	}
}

func TestRegularFileIsNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
	if w, _ := GetSize(f); w != DefaultWidth {
		t.Errorf("width = %d, want %d", w, DefaultWidth)
	}
}
