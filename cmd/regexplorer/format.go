package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/registry"
)

// hexPreviewBytes caps how much of a binary payload gets rendered into
// a table cell. The cell is truncated again at draw time anyway.
const hexPreviewBytes = 32

// formatData renders a value payload as a single table cell
func formatData(v registry.Value) string {
	switch v.Type {
	case registry.REG_SZ, registry.REG_EXPAND_SZ:
		s, err := v.AsString()
		if err != nil {
			return hexPreview(v.Data)
		}
		return fmt.Sprintf("\"%s\"", s)

	case registry.REG_DWORD, registry.REG_DWORD_BE:
		n, err := v.AsUint32()
		if err != nil {
			return hexPreview(v.Data)
		}
		return fmt.Sprintf("0x%08X (%d)", n, n)

	case registry.REG_QWORD:
		n, err := v.AsUint64()
		if err != nil {
			return hexPreview(v.Data)
		}
		return fmt.Sprintf("0x%016X (%d)", n, n)

	case registry.REG_MULTI_SZ:
		strs, err := v.AsStrings()
		if err != nil {
			return hexPreview(v.Data)
		}
		if len(strs) == 0 {
			return "[]"
		}
		quoted := make([]string, len(strs))
		for i, s := range strs {
			quoted[i] = fmt.Sprintf("\"%s\"", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"

	default:
		return hexPreview(v.Data)
	}
}

// hexPreview renders raw bytes as space-separated hex pairs, capped at
// hexPreviewBytes with a total-size suffix.
func hexPreview(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	n := len(data)
	if n > hexPreviewBytes {
		n = hexPreviewBytes
	}

	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%02x", data[i])
	}

	out := strings.Join(parts, " ")
	if len(data) > hexPreviewBytes {
		out += fmt.Sprintf(" ... (%d bytes)", len(data))
	}
	return out
}
