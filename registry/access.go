package registry

import (
	"fmt"
	"strings"
)

// Access is a bitmask of registry key access rights, requested when a
// key is opened or created and checked by the store on every call made
// through the resulting handle. Rights combine with bitwise OR.
// (The values align with Windows definitions.)
type Access uint32

const (
	QUERY_VALUE        Access = 0x00001
	SET_VALUE          Access = 0x00002
	CREATE_SUB_KEY     Access = 0x00004
	ENUMERATE_SUB_KEYS Access = 0x00008
	NOTIFY             Access = 0x00010
	CREATE_LINK        Access = 0x00020
	WOW64_64KEY        Access = 0x00100
	WOW64_32KEY        Access = 0x00200

	// Composite rights. READ and EXECUTE share a value, as in winnt.h.
	READ       Access = 0x20019
	WRITE      Access = 0x20006
	EXECUTE    Access = 0x20019
	ALL_ACCESS Access = 0xF003F
)

var accessFlagNames = []struct {
	bit  Access
	name string
}{
	{QUERY_VALUE, "QUERY_VALUE"},
	{SET_VALUE, "SET_VALUE"},
	{CREATE_SUB_KEY, "CREATE_SUB_KEY"},
	{ENUMERATE_SUB_KEYS, "ENUMERATE_SUB_KEYS"},
	{NOTIFY, "NOTIFY"},
	{CREATE_LINK, "CREATE_LINK"},
	{WOW64_64KEY, "WOW64_64KEY"},
	{WOW64_32KEY, "WOW64_32KEY"},
}

// String renders the mask for diagnostics: a composite name when the
// mask is exactly one of the composites, otherwise the set flags joined
// by "|" with any unnamed remainder in hex.
func (a Access) String() string {
	switch a {
	case ALL_ACCESS:
		return "ALL_ACCESS"
	case READ:
		return "READ"
	case WRITE:
		return "WRITE"
	case 0:
		return "0"
	}
	var parts []string
	rest := a
	for _, f := range accessFlagNames {
		if a&f.bit == f.bit {
			parts = append(parts, f.name)
			rest &^= f.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(parts, "|")
}
