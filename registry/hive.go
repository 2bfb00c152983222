package registry

import (
	"fmt"
	"strings"
)

// Hive identifies one of the predefined roots of the registry. The
// values are the reserved pseudo-handles, usable in any process without
// being opened and never closed.
type Hive uintptr

const (
	ClassesRoot     Hive = 0x80000000
	CurrentUser     Hive = 0x80000001
	LocalMachine    Hive = 0x80000002
	Users           Hive = 0x80000003
	PerformanceData Hive = 0x80000004
	CurrentConfig   Hive = 0x80000005
)

// String returns the canonical HKEY_* name of the root.
func (h Hive) String() string {
	switch h {
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case Users:
		return "HKEY_USERS"
	case PerformanceData:
		return "HKEY_PERFORMANCE_DATA"
	case CurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	default:
		return fmt.Sprintf("HKEY_%#x", uintptr(h))
	}
}

// Root name aliases accepted in fully qualified paths. Long names
// first so String() round-trips; short names follow reg.exe usage.
var hiveAliases = []struct {
	name string
	hive Hive
}{
	{"HKEY_CLASSES_ROOT", ClassesRoot},
	{"HKCR", ClassesRoot},
	{"HKEY_CURRENT_USER", CurrentUser},
	{"HKCU", CurrentUser},
	{"HKEY_LOCAL_MACHINE", LocalMachine},
	{"HKLM", LocalMachine},
	{"HKEY_USERS", Users},
	{"HKU", Users},
	{"HKEY_PERFORMANCE_DATA", PerformanceData},
	{"HKEY_CURRENT_CONFIG", CurrentConfig},
	{"HKCC", CurrentConfig},
}

// ParsePath splits a fully qualified registry path such as
// "HKLM\Software\Vendor" into its root hive and the subkey path below
// it. Root names match case-insensitively in both long and short form,
// and forward slashes are accepted as separators. The subkey part may
// be empty.
func ParsePath(path string) (Hive, string, error) {
	p := strings.TrimSpace(path)
	p = strings.ReplaceAll(p, "/", `\`)
	p = strings.TrimPrefix(p, `\`)
	root := p
	rest := ""
	if i := strings.Index(p, `\`); i >= 0 {
		root, rest = p[:i], p[i+1:]
	}
	upper := strings.ToUpper(root)
	for _, a := range hiveAliases {
		if upper == a.name {
			return a.hive, strings.Trim(rest, `\`), nil
		}
	}
	return 0, "", &Error{Kind: ErrKindNotFound, Msg: "unknown registry root", Path: path}
}
