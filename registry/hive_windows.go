//go:build windows

package registry

import (
	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/wstr"
)

// Open opens the named subkey of the hive root with the requested
// access. An empty path opens a fresh handle to the root itself.
func (h Hive) Open(path string, access Access) (*Key, error) {
	return openKey(windows.Handle(h), h.String(), path, access)
}

// Create opens the named subkey of the hive root, creating it and any
// missing intermediate keys first. Creating an existing key is not an
// error.
func (h Hive) Create(path string, access Access) (*Key, error) {
	return createKey(windows.Handle(h), h.String(), path, access)
}

// Delete removes the named subkey of the hive root. A non-recursive
// delete fails if the subkey has children; a recursive delete removes
// the whole subtree.
func (h Hive) Delete(path string, recursive bool) error {
	return deleteKey(windows.Handle(h), h.String(), path, recursive)
}

// OpenPath opens a key named by a full path whose first segment is a
// hive root name or alias, such as "HKLM\Software\Vendor".
func OpenPath(path string, access Access) (*Key, error) {
	hive, rest, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return hive.Open(rest, access)
}

// CreatePath creates (or opens) a key named by a full path whose first
// segment is a hive root name or alias.
func CreatePath(path string, access Access) (*Key, error) {
	hive, rest, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return hive.Create(rest, access)
}

// OpenCurrentUser opens the root of the current user's hive. Unlike the
// CurrentUser predefined root, which is resolved against the process
// token once and cached, this asks the store for the hive of the user
// the calling thread is impersonating right now.
func OpenCurrentUser(access Access) (*Key, error) {
	var h windows.Handle
	if err := regOpenCurrentUser(uint32(access), &h); err != nil {
		return nil, statusError("open current user", "<Current User>", err)
	}
	return &Key{handle: h, path: "<Current User>"}, nil
}

// LoadAppKey loads a hive file private to this process and returns its
// root key. The hive is unloaded when the last handle into it is
// closed. The file must not already be loaded by another process.
func LoadAppKey(file string, access Access) (*Key, error) {
	path := "<appkey " + file + ">"
	wf, err := wstr.FromString(file)
	if err != nil {
		return nil, encodingError("invalid hive file path", path, err)
	}
	var h windows.Handle
	if err := regLoadAppKey(&wf[0], &h, uint32(access), 0); err != nil {
		return nil, statusError("load app key", path, err)
	}
	return &Key{handle: h, path: path}, nil
}
