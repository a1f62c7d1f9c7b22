package lexer

import (
	"bytes"
	"testing"
)

func TestNormalizeStripsBOM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"with_bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, []byte("hi")},
		{"without_bom", []byte("hi"), []byte("hi")},
		{"empty_with_bom", []byte{0xEF, 0xBB, 0xBF}, []byte{}},
		{"empty", []byte{}, []byte{}},
		{"partial_bom_not_stripped", []byte{0xEF, 0xBB, 'h', 'i'}, []byte{0xEF, 0xBB, 'h', 'i'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeAppliesNFC(t *testing.T) {
	// "e" + combining acute accent U+0301 (NFD) must normalize to the
	// precomposed U+00E9 ("e with acute") form (NFC), so lexically
	// equivalent source produces identical token streams regardless of
	// the encoding a given editor happened to save.
	nfd := []byte("café")
	nfc := []byte("café")

	got := Normalize(nfd)
	if !bytes.Equal(got, nfc) {
		t.Errorf("Normalize(%q) = %q, want NFC form %q", nfd, got, nfc)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := []byte("already normal ascii text")
	got := Normalize(input)
	if !bytes.Equal(got, input) {
		t.Errorf("Normalize(%q) = %q, want unchanged", input, got)
	}
}
