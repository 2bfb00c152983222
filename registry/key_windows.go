//go:build windows

package registry

import (
	"errors"
	"syscall"
	"time"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/wstr"
)

// Key is the sole owner of one open native registry handle. It is
// created by opening or creating a path below a Hive or another Key and
// must be released with Close, or consumed by DeleteSelf, when no
// longer needed. The zero Key is not usable.
type Key struct {
	handle windows.Handle
	path   string
	closed bool
}

// KeyInfo reports the counts and maxima the store tracks per key.
type KeyInfo struct {
	SubKeyCount     uint32
	MaxSubKeyLen    uint32 // longest subkey name, in UTF-16 units without NUL
	ValueCount      uint32
	MaxValueNameLen uint32 // longest value name, in UTF-16 units without NUL
	MaxValueLen     uint32 // largest value payload, in bytes
	LastWrite       time.Time
}

// String returns the path the key was opened under, for diagnostics.
func (k *Key) String() string {
	if k.path == "" {
		return "<unknown>"
	}
	return k.path
}

func (k *Key) ensureOpen() error {
	if k.closed {
		return &Error{Kind: ErrKindState, Msg: "key is closed", Path: k.path}
	}
	return nil
}

// Open opens the subkey at path below k with the requested access.
func (k *Key) Open(path string, access Access) (*Key, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	return openKey(k.handle, k.path, path, access)
}

// Create opens the subkey at path below k, first creating it and any
// missing intermediate keys. Creating a key that already exists is not
// an error.
func (k *Key) Create(path string, access Access) (*Key, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	return createKey(k.handle, k.path, path, access)
}

// Delete removes the subkey at path below k. Without recursive the
// store refuses to delete a key that still has subkeys; with it the
// whole subtree goes as one request. There is no partial-failure
// recovery beyond what the store itself provides.
func (k *Key) Delete(path string, recursive bool) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	return deleteKey(k.handle, k.path, path, recursive)
}

// DeleteSelf deletes the key itself. The handle is consumed: it is
// released whether or not the deletion succeeds, and the key must not
// be used afterwards.
func (k *Key) DeleteSelf(recursive bool) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	err := deleteKey(k.handle, k.path, "", recursive)
	k.closed = true
	_ = windows.RegCloseKey(k.handle)
	return err
}

// Close releases the key's native handle. Closing an already closed
// key is a no-op. The release status is discarded; a handle is never
// released twice.
func (k *Key) Close() error {
	if k.closed {
		return nil
	}
	k.closed = true
	_ = windows.RegCloseKey(k.handle)
	return nil
}

// Value reads the value named name. The empty name addresses the key's
// default value. The payload is returned exactly as stored.
func (k *Key) Value(name string) (Value, error) {
	if err := k.ensureOpen(); err != nil {
		return Value{}, err
	}
	n, err := wstr.FromString(name)
	if err != nil {
		return Value{}, encodingError("invalid value name", k.path, err)
	}
	var typ, size uint32
	if err := windows.RegQueryValueEx(k.handle, &n[0], nil, &typ, nil, &size); err != nil {
		return Value{}, statusError("query value", k.path, err)
	}
	// The value can grow between the sizing call and the read, so
	// retry while the store reports more data.
	for {
		buf := make([]byte, size)
		var data *byte
		if size > 0 {
			data = &buf[0]
		}
		err := windows.RegQueryValueEx(k.handle, &n[0], nil, &typ, data, &size)
		if err == nil {
			return Value{Type: RegType(typ), Data: buf[:size]}, nil
		}
		var code syscall.Errno
		if !errors.As(err, &code) || code != errMoreData {
			return Value{}, statusError("query value", k.path, err)
		}
	}
}

// SetValue writes v under name, replacing any existing value of the
// same name regardless of its previous type. The empty name addresses
// the key's default value.
func (k *Key) SetValue(name string, v Value) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	n, err := wstr.FromString(name)
	if err != nil {
		return encodingError("invalid value name", k.path, err)
	}
	var data *byte
	if len(v.Data) > 0 {
		data = &v.Data[0]
	}
	if err := regSetValueEx(k.handle, &n[0], uint32(v.Type), data, uint32(len(v.Data))); err != nil {
		return statusError("set value", k.path, err)
	}
	return nil
}

// DeleteValue removes the value named name.
func (k *Key) DeleteValue(name string) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	n, err := wstr.FromString(name)
	if err != nil {
		return encodingError("invalid value name", k.path, err)
	}
	if err := regDeleteValue(k.handle, &n[0]); err != nil {
		return statusError("delete value", k.path, err)
	}
	return nil
}

// ValueString reads a REG_SZ or REG_EXPAND_SZ value as a string.
func (k *Key) ValueString(name string) (string, error) {
	v, err := k.Value(name)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// ValueStrings reads a REG_MULTI_SZ value as a string slice.
func (k *Key) ValueStrings(name string) ([]string, error) {
	v, err := k.Value(name)
	if err != nil {
		return nil, err
	}
	return v.AsStrings()
}

// ValueDWORD reads a REG_DWORD or REG_DWORD_BE value.
func (k *Key) ValueDWORD(name string) (uint32, error) {
	v, err := k.Value(name)
	if err != nil {
		return 0, err
	}
	return v.AsUint32()
}

// ValueQWORD reads a REG_QWORD value.
func (k *Key) ValueQWORD(name string) (uint64, error) {
	v, err := k.Value(name)
	if err != nil {
		return 0, err
	}
	return v.AsUint64()
}

// ValueBytes reads any value's raw payload.
func (k *Key) ValueBytes(name string) ([]byte, error) {
	v, err := k.Value(name)
	if err != nil {
		return nil, err
	}
	return v.Data, nil
}

// Stat reports the counts and size maxima the store tracks for the key.
func (k *Key) Stat() (*KeyInfo, error) {
	if err := k.ensureOpen(); err != nil {
		return nil, err
	}
	var info KeyInfo
	var ft windows.Filetime
	err := windows.RegQueryInfoKey(k.handle, nil, nil, nil,
		&info.SubKeyCount, &info.MaxSubKeyLen, nil,
		&info.ValueCount, &info.MaxValueNameLen, &info.MaxValueLen,
		nil, &ft)
	if err != nil {
		return nil, statusError("query key info", k.path, err)
	}
	info.LastWrite = time.Unix(0, ft.Nanoseconds())
	return &info, nil
}

// SubKeyNames returns the names of the key's direct subkeys.
func (k *Key) SubKeyNames() ([]string, error) {
	it := k.Keys()
	var names []string
	for it.Next() {
		names = append(names, it.Name())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// ValueNames returns the names of the key's values. A set default
// value appears as the empty string.
func (k *Key) ValueNames() ([]string, error) {
	it := k.Values()
	var names []string
	for it.Next() {
		names = append(names, it.Name())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// SkipSubtree, when returned by a Walk callback, prunes descent into
// the key the callback was invoked for.
var SkipSubtree = errors.New("skip this subtree")

// Walk visits k and every key below it in pre-order. Each child is
// opened with read access, handed to fn together with its full path,
// and closed again after its subtree is done; callbacks must not retain
// the key. Returning SkipSubtree skips the children of the visited key;
// any other error aborts the walk.
func (k *Key) Walk(fn func(path string, k *Key) error) error {
	if err := k.ensureOpen(); err != nil {
		return err
	}
	if fn == nil {
		return &Error{Kind: ErrKindState, Msg: "nil walk callback", Path: k.path}
	}
	return k.walk(fn)
}

func (k *Key) walk(fn func(string, *Key) error) error {
	if err := fn(k.path, k); err != nil {
		if errors.Is(err, SkipSubtree) {
			return nil
		}
		return err
	}
	names, err := k.SubKeyNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		child, err := k.Open(name, READ)
		if err != nil {
			return err
		}
		err = child.walk(fn)
		child.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func childPath(parent, sub string) string {
	if sub == "" {
		return parent
	}
	if parent == "" {
		return sub
	}
	return parent + `\` + sub
}

func openKey(parent windows.Handle, parentPath, path string, access Access) (*Key, error) {
	full := childPath(parentPath, path)
	sub, err := wstr.FromString(path)
	if err != nil {
		return nil, encodingError("invalid subkey path", full, err)
	}
	var h windows.Handle
	if err := windows.RegOpenKeyEx(parent, &sub[0], 0, uint32(access), &h); err != nil {
		return nil, statusError("open key", full, err)
	}
	return &Key{handle: h, path: full}, nil
}

func createKey(parent windows.Handle, parentPath, path string, access Access) (*Key, error) {
	full := childPath(parentPath, path)
	sub, err := wstr.FromString(path)
	if err != nil {
		return nil, encodingError("invalid subkey path", full, err)
	}
	var h windows.Handle
	if err := regCreateKeyEx(parent, &sub[0], nil, 0, uint32(access), nil, &h, nil); err != nil {
		return nil, statusError("create key", full, err)
	}
	return &Key{handle: h, path: full}, nil
}

func deleteKey(parent windows.Handle, parentPath, path string, recursive bool) error {
	full := childPath(parentPath, path)
	sub, err := wstr.FromString(path)
	if err != nil {
		return encodingError("invalid subkey path", full, err)
	}
	op, call := "delete key", regDeleteKey
	if recursive {
		op, call = "delete tree", regDeleteTree
	}
	if err := call(parent, &sub[0]); err != nil {
		return statusError(op, full, err)
	}
	return nil
}
