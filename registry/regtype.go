package registry

import (
	"fmt"
	"strings"
)

// RegType enumerates Windows registry value types.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LE                   RegType = 4 // alias for clarity
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// ParseRegType resolves a type spelled either as the Windows constant
// name ("REG_SZ") or the short form tools use ("sz", "dword"). Matching
// is case-insensitive.
func ParseRegType(s string) (RegType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "reg_none":
		return REG_NONE, nil
	case "sz", "string", "reg_sz":
		return REG_SZ, nil
	case "expand_sz", "reg_expand_sz":
		return REG_EXPAND_SZ, nil
	case "binary", "reg_binary":
		return REG_BINARY, nil
	case "dword", "reg_dword":
		return REG_DWORD, nil
	case "dword_be", "reg_dword_big_endian":
		return REG_DWORD_BE, nil
	case "multi_sz", "reg_multi_sz":
		return REG_MULTI_SZ, nil
	case "qword", "reg_qword":
		return REG_QWORD, nil
	default:
		return REG_NONE, &Error{Kind: ErrKindType, Msg: fmt.Sprintf("unknown registry value type %q", s)}
	}
}
