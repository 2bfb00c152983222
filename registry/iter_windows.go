//go:build windows

package registry

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/wstr"
)

// Name length ceilings, in UTF-16 units without the terminator. Subkey
// names are capped by the store; value name buffers start smaller and
// grow on demand.
const (
	maxSubKeyName    = 255
	initValueNameLen = 64
)

// KeyIter enumerates the names of a key's direct subkeys. It borrows
// the parent's handle and holds no native resources of its own.
//
// Enumeration is positional: subkeys created or deleted while the
// iterator is live may be skipped or seen twice. An exhausted or failed
// iterator stays exhausted; create a new one to enumerate again.
type KeyIter struct {
	parent *Key
	index  uint32
	name   string
	buf    []uint16
	err    error
	done   bool
}

// Keys returns an iterator over the names of k's direct subkeys.
func (k *Key) Keys() *KeyIter {
	return &KeyIter{parent: k, buf: make([]uint16, maxSubKeyName+1)}
}

// Next advances to the next subkey name, reporting false when the
// sequence is exhausted or enumeration failed. Failure is kept for Err.
func (it *KeyIter) Next() bool {
	if it.done {
		return false
	}
	if err := it.parent.ensureOpen(); err != nil {
		it.err = err
		it.done = true
		return false
	}
	n := uint32(len(it.buf))
	err := windows.RegEnumKeyEx(it.parent.handle, it.index, &it.buf[0], &n, nil, nil, nil, nil)
	if err != nil {
		it.done = true
		var code syscall.Errno
		if !errors.As(err, &code) || code != errNoMoreItems {
			it.err = statusError("enumerate keys", it.parent.path, err)
		}
		return false
	}
	it.name = wstr.ToString(it.buf[:n])
	it.index++
	return true
}

// Name returns the subkey name at the current position.
func (it *KeyIter) Name() string { return it.name }

// Err returns the error that stopped iteration, if any. Reaching the
// end of the sequence is not an error.
func (it *KeyIter) Err() error { return it.err }

// ValueIter enumerates a key's values: name, declared type, and payload
// size. Like KeyIter it borrows the parent handle, enumerates by index,
// and is exhausted for good once done or failed. A set default value
// appears with an empty name.
type ValueIter struct {
	parent *Key
	index  uint32
	name   string
	typ    RegType
	size   uint32
	buf    []uint16
	err    error
	done   bool
}

// Values returns an iterator over the key's values.
func (k *Key) Values() *ValueIter {
	it := &ValueIter{parent: k}
	// Size the name buffer from the store's per-key maximum when
	// available. Next grows it if a longer name appears anyway.
	size := uint32(initValueNameLen)
	if info, err := k.Stat(); err == nil && info.MaxValueNameLen > size {
		size = info.MaxValueNameLen
	}
	it.buf = make([]uint16, size+1)
	return it
}

// Next advances to the next value, reporting false when the sequence is
// exhausted or enumeration failed.
func (it *ValueIter) Next() bool {
	if it.done {
		return false
	}
	if err := it.parent.ensureOpen(); err != nil {
		it.err = err
		it.done = true
		return false
	}
	for {
		n := uint32(len(it.buf))
		var typ, size uint32
		err := regEnumValue(it.parent.handle, it.index, &it.buf[0], &n, &typ, nil, &size)
		if err == nil {
			it.name = wstr.ToString(it.buf[:n])
			it.typ = RegType(typ)
			it.size = size
			it.index++
			return true
		}
		var code syscall.Errno
		if errors.As(err, &code) && code == errMoreData {
			it.buf = make([]uint16, 2*len(it.buf))
			continue
		}
		it.done = true
		if code != errNoMoreItems {
			it.err = statusError("enumerate values", it.parent.path, err)
		}
		return false
	}
}

// Name returns the value name at the current position.
func (it *ValueIter) Name() string { return it.name }

// Type returns the declared type of the value at the current position.
func (it *ValueIter) Type() RegType { return it.typ }

// Size returns the payload size in bytes of the value at the current
// position, without reading the payload.
func (it *ValueIter) Size() int { return int(it.size) }

// Err returns the error that stopped iteration, if any.
func (it *ValueIter) Err() error { return it.err }
