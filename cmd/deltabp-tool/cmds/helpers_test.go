package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadIntLines(t *testing.T) {
	in := strings.NewReader("1\n2\n\n-3\n")
	got, err := readIntLines(in)
	if err != nil {
		t.Fatalf("readIntLines: %v", err)
	}
	want := []int64{1, 2, -3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReadIntLinesInvalid(t *testing.T) {
	in := strings.NewReader("notanumber\n")
	if _, err := readIntLines(in); err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
}

func TestWriteIntLines(t *testing.T) {
	var buf bytes.Buffer
	if err := writeIntLines(&buf, []int64{1, -2, 3}); err != nil {
		t.Fatalf("writeIntLines: %v", err)
	}
	if buf.String() != "1\n-2\n3\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestLookupWidth(t *testing.T) {
	if err := lookupWidth("i32"); err != nil {
		t.Fatalf("i32 should be valid: %v", err)
	}
	if err := lookupWidth("i64"); err != nil {
		t.Fatalf("i64 should be valid: %v", err)
	}
	if err := lookupWidth("i16"); err == nil {
		t.Fatalf("i16 should be invalid")
	}
}
