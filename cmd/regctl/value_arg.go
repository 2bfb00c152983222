package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/registry"
)

// parseValueArg converts a command line value argument into a typed
// registry value. Numeric types accept decimal or 0x hex, binary types
// take hex strings, and multi-string values are comma separated.
func parseValueArg(typeName, raw string) (registry.Value, error) {
	typ, err := registry.ParseRegType(typeName)
	if err != nil {
		return registry.Value{}, err
	}

	switch typ {
	case registry.REG_SZ:
		return registry.StringValue(raw)

	case registry.REG_EXPAND_SZ:
		return registry.ExpandStringValue(raw)

	case registry.REG_MULTI_SZ:
		var parts []string
		if raw != "" {
			parts = strings.Split(raw, ",")
		}
		return registry.MultiStringValue(parts)

	case registry.REG_DWORD:
		val, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid DWORD value: %w", err)
		}
		return registry.DWordValue(uint32(val)), nil

	case registry.REG_DWORD_BE:
		val, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid DWORD value: %w", err)
		}
		data := make([]byte, 4)
		binary.BigEndian.PutUint32(data, uint32(val))
		return registry.Value{Type: registry.REG_DWORD_BE, Data: data}, nil

	case registry.REG_QWORD:
		val, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid QWORD value: %w", err)
		}
		return registry.QWordValue(val), nil

	case registry.REG_BINARY:
		data, err := parseHexArg(raw)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid BINARY value: %w", err)
		}
		return registry.BinaryValue(data), nil

	case registry.REG_NONE:
		data, err := parseHexArg(raw)
		if err != nil {
			return registry.Value{}, fmt.Errorf("invalid NONE value: %w", err)
		}
		return registry.Value{Type: registry.REG_NONE, Data: data}, nil

	default:
		return registry.Value{}, fmt.Errorf("unsupported value type: %s", typeName)
	}
}

// parseHexArg parses a hex string, with or without 0x prefix, ignoring
// spaces and commas between bytes.
func parseHexArg(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.NewReplacer(" ", "", ",", "", ":", "").Replace(s)
	return hex.DecodeString(s)
}
