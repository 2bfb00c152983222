package wstr

import (
	"errors"
	"testing"
)

// Test_FromString tests conversion to NUL-terminated UTF-16.
func Test_FromString(t *testing.T) {
	u, err := FromString("ab")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	want := []uint16{'a', 'b', 0}
	if len(u) != len(want) {
		t.Fatalf("length = %d, want %d", len(u), len(want))
	}
	for i := range want {
		if u[i] != want[i] {
			t.Errorf("u[%d] = %d, want %d", i, u[i], want[i])
		}
	}
}

func Test_FromStringEmpty(t *testing.T) {
	u, err := FromString("")
	if err != nil {
		t.Fatalf("FromString error: %v", err)
	}
	if len(u) != 1 || u[0] != 0 {
		t.Errorf("FromString(\"\") = %v, want just the terminator", u)
	}
}

func Test_FromStringEmbeddedNUL(t *testing.T) {
	_, err := FromString("a\x00b")
	if !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("expected ErrEmbeddedNUL, got %v", err)
	}
}

// Test_RoundTrip tests that characters outside the basic plane survive
// the surrogate encoding.
func Test_RoundTrip(t *testing.T) {
	for _, s := range []string{"hello", "héllo", "\U0001F5DD key", "日本語"} {
		u, err := FromString(s)
		if err != nil {
			t.Fatalf("FromString(%q) error: %v", s, err)
		}
		if got := ToString(u); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

// Test_ToString tests NUL handling on the decode side.
func Test_ToString(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want string
	}{
		{"stops at NUL", []uint16{'a', 0, 'b'}, "a"},
		{"no terminator", []uint16{'h', 'i'}, "hi"},
		{"empty", nil, ""},
		{"only NUL", []uint16{0}, ""},
		{"unpaired surrogate", []uint16{0xD800}, "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString = %q, want %q", got, tt.want)
			}
		})
	}
}
