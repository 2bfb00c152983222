package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joshuapare/regkit/registry"
)

// Test_ParseValueArg tests conversion of command line arguments to
// typed registry values.
func Test_ParseValueArg(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		raw      string
		wantType registry.RegType
		wantData []byte
		wantErr  bool
	}{
		{
			name:     "string",
			typeName: "sz",
			raw:      "ab",
			wantType: registry.REG_SZ,
			wantData: []byte{0x61, 0, 0x62, 0, 0, 0},
		},
		{
			name:     "expand string",
			typeName: "expand_sz",
			raw:      "ab",
			wantType: registry.REG_EXPAND_SZ,
			wantData: []byte{0x61, 0, 0x62, 0, 0, 0},
		},
		{
			name:     "long type name",
			typeName: "REG_SZ",
			raw:      "ab",
			wantType: registry.REG_SZ,
			wantData: []byte{0x61, 0, 0x62, 0, 0, 0},
		},
		{
			name:     "multi string",
			typeName: "multi_sz",
			raw:      "a,b",
			wantType: registry.REG_MULTI_SZ,
			wantData: []byte{0x61, 0, 0, 0, 0x62, 0, 0, 0, 0, 0},
		},
		{
			name:     "empty multi string",
			typeName: "multi_sz",
			raw:      "",
			wantType: registry.REG_MULTI_SZ,
			wantData: []byte{0, 0},
		},
		{
			name:     "dword decimal",
			typeName: "dword",
			raw:      "4660",
			wantType: registry.REG_DWORD,
			wantData: []byte{0x34, 0x12, 0, 0},
		},
		{
			name:     "dword hex literal",
			typeName: "dword",
			raw:      "0x1234",
			wantType: registry.REG_DWORD,
			wantData: []byte{0x34, 0x12, 0, 0},
		},
		{
			name:     "dword big endian",
			typeName: "dword_be",
			raw:      "0x1234",
			wantType: registry.REG_DWORD_BE,
			wantData: []byte{0, 0, 0x12, 0x34},
		},
		{
			name:     "qword",
			typeName: "qword",
			raw:      "0x0102030405060708",
			wantType: registry.REG_QWORD,
			wantData: []byte{8, 7, 6, 5, 4, 3, 2, 1},
		},
		{
			name:     "binary plain hex",
			typeName: "binary",
			raw:      "deadbeef",
			wantType: registry.REG_BINARY,
			wantData: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			name:     "binary with separators",
			typeName: "binary",
			raw:      "0xde:ad, be ef",
			wantType: registry.REG_BINARY,
			wantData: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			name:     "none type",
			typeName: "none",
			raw:      "01",
			wantType: registry.REG_NONE,
			wantData: []byte{1},
		},
		{
			name:     "dword overflow",
			typeName: "dword",
			raw:      "4294967296",
			wantErr:  true,
		},
		{
			name:     "dword garbage",
			typeName: "dword",
			raw:      "not-a-number",
			wantErr:  true,
		},
		{
			name:     "qword garbage",
			typeName: "qword",
			raw:      "12z",
			wantErr:  true,
		},
		{
			name:     "binary odd length",
			typeName: "binary",
			raw:      "abc",
			wantErr:  true,
		},
		{
			name:     "unknown type",
			typeName: "florp",
			raw:      "x",
			wantErr:  true,
		},
		{
			name:     "unsettable type",
			typeName: "REG_LINK",
			raw:      "x",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseValueArg(tt.typeName, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValueArg() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v.Type != tt.wantType {
				t.Errorf("parseValueArg() type = %v, want %v", v.Type, tt.wantType)
			}
			if !bytes.Equal(v.Data, tt.wantData) {
				t.Errorf("parseValueArg() data = % x, want % x", v.Data, tt.wantData)
			}
		})
	}
}

// Test_ParseValueArg_EmbeddedNUL tests that string values containing
// NUL runes are rejected before they reach the registry.
func Test_ParseValueArg_EmbeddedNUL(t *testing.T) {
	_, err := parseValueArg("sz", "a\x00b")
	if !errors.Is(err, registry.ErrBadEncoding) {
		t.Errorf("parseValueArg() error = %v, want bad encoding", err)
	}
}

// Test_ParseHexArg tests the hex string parser accepted by binary
// value types.
func Test_ParseHexArg(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{name: "plain", in: "0102", want: []byte{1, 2}},
		{name: "prefixed", in: "0x0102", want: []byte{1, 2}},
		{name: "upper prefix", in: "0X0102", want: []byte{1, 2}},
		{name: "comma separated", in: "01,02,03", want: []byte{1, 2, 3}},
		{name: "colon separated", in: "01:02:03", want: []byte{1, 2, 3}},
		{name: "spaces", in: "01 02 03", want: []byte{1, 2, 3}},
		{name: "empty", in: "", want: []byte{}},
		{name: "odd length", in: "123", wantErr: true},
		{name: "non hex", in: "zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexArg(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHexArg(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !bytes.Equal(got, tt.want) {
				t.Errorf("parseHexArg(%q) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}
