//go:build windows

package registry

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// advapi32 procs not re-exported by package windows. Bound lazily so
// the DLL is resolved on first use, matching how the package's own
// wrappers behave.
var (
	modadvapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procRegCreateKeyExW    = modadvapi32.NewProc("RegCreateKeyExW")
	procRegDeleteKeyW      = modadvapi32.NewProc("RegDeleteKeyW")
	procRegDeleteTreeW     = modadvapi32.NewProc("RegDeleteTreeW")
	procRegDeleteValueW    = modadvapi32.NewProc("RegDeleteValueW")
	procRegSetValueExW     = modadvapi32.NewProc("RegSetValueExW")
	procRegEnumValueW      = modadvapi32.NewProc("RegEnumValueW")
	procRegOpenCurrentUser = modadvapi32.NewProc("RegOpenCurrentUser")
	procRegLoadAppKeyW     = modadvapi32.NewProc("RegLoadAppKeyW")
)

// The wrappers below follow the x/sys convention for registry calls:
// the LSTATUS return value is the status, returned as a syscall.Errno
// when nonzero and nil on success.

func regCreateKeyEx(key windows.Handle, subkey *uint16, class *uint16, options uint32, access uint32, sa *windows.SecurityAttributes, result *windows.Handle, disposition *uint32) error {
	r0, _, _ := syscall.SyscallN(procRegCreateKeyExW.Addr(),
		uintptr(key),
		uintptr(unsafe.Pointer(subkey)),
		0,
		uintptr(unsafe.Pointer(class)),
		uintptr(options),
		uintptr(access),
		uintptr(unsafe.Pointer(sa)),
		uintptr(unsafe.Pointer(result)),
		uintptr(unsafe.Pointer(disposition)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regDeleteKey(key windows.Handle, subkey *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegDeleteKeyW.Addr(),
		uintptr(key),
		uintptr(unsafe.Pointer(subkey)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regDeleteTree(key windows.Handle, subkey *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegDeleteTreeW.Addr(),
		uintptr(key),
		uintptr(unsafe.Pointer(subkey)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regDeleteValue(key windows.Handle, name *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegDeleteValueW.Addr(),
		uintptr(key),
		uintptr(unsafe.Pointer(name)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regSetValueEx(key windows.Handle, name *uint16, valtype uint32, data *byte, datalen uint32) error {
	r0, _, _ := syscall.SyscallN(procRegSetValueExW.Addr(),
		uintptr(key),
		uintptr(unsafe.Pointer(name)),
		0,
		uintptr(valtype),
		uintptr(unsafe.Pointer(data)),
		uintptr(datalen),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regEnumValue(key windows.Handle, index uint32, name *uint16, nameLen *uint32, valtype *uint32, data *byte, dataLen *uint32) error {
	r0, _, _ := syscall.SyscallN(procRegEnumValueW.Addr(),
		uintptr(key),
		uintptr(index),
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(nameLen)),
		0,
		uintptr(unsafe.Pointer(valtype)),
		uintptr(unsafe.Pointer(data)),
		uintptr(unsafe.Pointer(dataLen)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regOpenCurrentUser(access uint32, result *windows.Handle) error {
	r0, _, _ := syscall.SyscallN(procRegOpenCurrentUser.Addr(),
		uintptr(access),
		uintptr(unsafe.Pointer(result)),
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regLoadAppKey(file *uint16, result *windows.Handle, access uint32, options uint32) error {
	r0, _, _ := syscall.SyscallN(procRegLoadAppKeyW.Addr(),
		uintptr(unsafe.Pointer(file)),
		uintptr(unsafe.Pointer(result)),
		uintptr(access),
		uintptr(options),
		0,
	)
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}
