package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joshuapare/regkit/registry"
)

// TestFormatData tests the table-cell rendering for each value kind
func TestFormatData(t *testing.T) {
	str, err := registry.StringValue("hello")
	if err != nil {
		t.Fatalf("StringValue: %v", err)
	}
	expand, err := registry.ExpandStringValue(`%SystemRoot%\system32`)
	if err != nil {
		t.Fatalf("ExpandStringValue: %v", err)
	}
	multi, err := registry.MultiStringValue([]string{"a", "b"})
	if err != nil {
		t.Fatalf("MultiStringValue: %v", err)
	}
	emptyMulti, err := registry.MultiStringValue(nil)
	if err != nil {
		t.Fatalf("MultiStringValue(nil): %v", err)
	}

	tests := []struct {
		name string
		v    registry.Value
		want string
	}{
		{"string", str, `"hello"`},
		{"expand string", expand, `"%SystemRoot%\system32"`},
		{"dword", registry.DWordValue(4660), "0x00001234 (4660)"},
		{"qword", registry.QWordValue(1), "0x0000000000000001 (1)"},
		{"multi string", multi, `["a", "b"]`},
		{"empty multi string", emptyMulti, "[]"},
		{"binary", registry.BinaryValue([]byte{0xde, 0xad, 0xbe, 0xef}), "de ad be ef"},
		{"none", registry.NoneValue(), "(empty)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatData(tt.v); got != tt.want {
				t.Errorf("formatData() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFormatDataMalformedPayload tests the hex fallback for broken typed data
func TestFormatDataMalformedPayload(t *testing.T) {
	v := registry.Value{Type: registry.REG_DWORD, Data: []byte{0x01}}

	if got := formatData(v); got != "01" {
		t.Errorf("malformed dword should fall back to hex, got %q", got)
	}
}

// TestHexPreviewCapped tests that large payloads are capped with a size note
func TestHexPreviewCapped(t *testing.T) {
	got := hexPreview(bytes.Repeat([]byte{0xab}, 100))

	if !strings.HasSuffix(got, "... (100 bytes)") {
		t.Errorf("preview should note the total size, got %q", got)
	}
	if strings.Count(got, "ab") != hexPreviewBytes {
		t.Errorf("preview should cap at %d bytes, got %q", hexPreviewBytes, got)
	}
}
