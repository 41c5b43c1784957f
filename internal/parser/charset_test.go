package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func readAllUTF8(t *testing.T, input []byte, contentType string) string {
	t.Helper()
	reader, err := NewUTF8Reader(bytes.NewReader(input), contentType)
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}
	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read from UTF-8 reader: %v", err)
	}
	return string(output)
}

// TestNewUTF8Reader_AlreadyUTF8 tests that UTF-8 content passes through unchanged
func TestNewUTF8Reader_AlreadyUTF8(t *testing.T) {
	t.Parallel()
	input := "<html><head><meta charset=\"utf-8\"></head><body>שלום - Hello ☺</body></html>"
	if got := readAllUTF8(t, []byte(input), ""); got != input {
		t.Errorf("Expected UTF-8 content to pass through unchanged, got %q", got)
	}
}

// TestNewUTF8Reader_Windows1255Meta tests Hebrew windows-1255 declared in a meta tag
func TestNewUTF8Reader_Windows1255Meta(t *testing.T) {
	t.Parallel()
	hebrew := []byte{0xF9, 0xEC, 0xE5, 0xED} // "שלום"
	input := append([]byte(`<html><head><meta charset="windows-1255"></head><body>`), hebrew...)
	input = append(input, []byte(`</body></html>`)...)

	if got := readAllUTF8(t, input, ""); !strings.Contains(got, "שלום") {
		t.Errorf("Expected 'שלום' in UTF-8 output, got: %s", got)
	}
}

// TestNewUTF8Reader_Windows1255ContentType tests the charset taken from the response header
func TestNewUTF8Reader_Windows1255ContentType(t *testing.T) {
	t.Parallel()
	hebrew := []byte{0xF2, 0xE5, 0xF0, 0xE4} // "עונה"
	input := append([]byte(`<html><body>`), hebrew...)
	input = append(input, []byte(` 3</body></html>`)...)

	if got := readAllUTF8(t, input, "text/html; charset=windows-1255"); !strings.Contains(got, "עונה 3") {
		t.Errorf("Expected 'עונה 3' in UTF-8 output, got: %s", got)
	}
}

// TestNewUTF8Reader_NoCharsetDeclaration tests heuristic detection when no charset is declared
func TestNewUTF8Reader_NoCharsetDeclaration(t *testing.T) {
	t.Parallel()
	if got := readAllUTF8(t, []byte("<html><body>Hello World</body></html>"), ""); !strings.Contains(got, "Hello World") {
		t.Errorf("Expected 'Hello World' in output, got: %s", got)
	}
}
