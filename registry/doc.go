// Package registry provides safe, handle-owning access to the live
// Windows registry.
//
// # Overview
//
// This package wraps the advapi32 registry API behind types that make
// handle lifetimes explicit. Every open key is owned by exactly one Key
// value, native handles are never duplicated, and release happens
// exactly once no matter how an operation fails. Values round-trip
// structurally: what Value reads, SetValue writes back byte for byte.
//
// The offline counterpart of this package parses hive files directly;
// this one talks to the running system's registry, so it is only
// functional on Windows. Type definitions, the value codec, access
// masks, and the error taxonomy are portable and can be compiled and
// tested anywhere.
//
// # Key Types
//
//   - Hive: a predefined root (HKEY_LOCAL_MACHINE, HKEY_CURRENT_USER, ...)
//   - Key: an owned native handle to one open registry key
//   - Access: bitmask of access rights requested when opening a key
//   - Value: a typed raw value payload with encode/decode helpers
//   - RegType: the Windows registry value type enumeration
//   - Error: typed error carrying a kind, the path involved, and the
//     raw status code from the system
//
// # Opening Keys
//
// Keys are opened below a Hive or below another Key:
//
//	k, err := registry.LocalMachine.Open(`Software\Vendor\App`, registry.READ)
//	if err != nil {
//	    return err
//	}
//	defer k.Close()
//
//	sub, err := k.Open("Settings", registry.READ|registry.WRITE)
//
// Create works the same way and creates missing intermediate keys.
// OpenPath accepts fully qualified paths like "HKLM\Software\Vendor".
//
// # Values
//
// Values carry their declared type and the payload in store encoding.
// Constructors encode, accessors decode with type checks:
//
//	if err := k.SetValue("Version", registry.StringValue("1.2.0")); err != nil {
//	    return err
//	}
//	v, err := k.Value("Version")
//	s, err := v.AsString()
//
// Typed getters (ValueString, ValueDWORD, ...) combine the two steps.
// The empty value name addresses the key's default value.
//
// # Iteration
//
// Keys and Values return iterators in the usual Next/Err shape:
//
//	it := k.Keys()
//	for it.Next() {
//	    fmt.Println(it.Name())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Iterators enumerate by index against the live store, so concurrent
// mutation of the key can skip or repeat names. An iterator is not
// restartable; create a new one to enumerate again. Iterators borrow
// the parent key and fail with ErrKeyClosed once it has been closed.
//
// # Error Handling
//
// Operations return *Error values classified by kind. Match with
// errors.Is against the exported sentinels:
//
//	_, err := k.Open("Missing", registry.READ)
//	if errors.Is(err, registry.ErrNotFound) {
//	    // key does not exist
//	}
//
// The raw system status is preserved in Error.Code for callers that
// need the exact cause.
//
// # Concurrency
//
// A Key is not safe for concurrent use. Calls block until the system
// answers; there are no internal threads, caches, or retries.
package registry
