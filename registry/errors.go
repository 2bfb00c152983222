package registry

import (
	"errors"
	"syscall"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound   ErrKind = iota // missing key, value, or hive file
	ErrKindPermission                // access denied by the store
	ErrKindEncoding                  // embedded NUL in a name, or malformed value payload
	ErrKindType                      // requested decode doesn't match value RegType
	ErrKindState                     // invalid operation for current state (e.g., closed key)
	ErrKindUnknown                   // status code with no dedicated classification
)

// Error is a typed error carrying the registry path involved and, for
// failed system calls, the raw status code.
type Error struct {
	Kind ErrKind
	Msg  string
	Path string        // registry path involved, when known
	Code syscall.Errno // raw status from the system, zero for local errors
	Err  error         // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Msg
	if e.Path != "" {
		s += " " + e.Path
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind, so errors.Is(err, ErrNotFound) holds for every
// Error of that kind regardless of path or message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by operations.
var (
	// ErrNotFound indicates a missing key, value, or hive file.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrPermission indicates the store refused access.
	ErrPermission = &Error{Kind: ErrKindPermission, Msg: "access denied"}
	// ErrBadEncoding indicates a name or payload that cannot be represented.
	ErrBadEncoding = &Error{Kind: ErrKindEncoding, Msg: "invalid encoding"}
	// ErrTypeMismatch indicates the requested decode doesn't match the value type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "registry value has different type"}
	// ErrKeyClosed indicates an operation on a key whose handle was released.
	ErrKeyClosed = &Error{Kind: ErrKindState, Msg: "key is closed"}
)

// Status codes the classifier recognizes. Declared locally so the
// portable build does not depend on package windows.
const (
	errFileNotFound syscall.Errno = 2   // ERROR_FILE_NOT_FOUND
	errPathNotFound syscall.Errno = 3   // ERROR_PATH_NOT_FOUND
	errAccessDenied syscall.Errno = 5   // ERROR_ACCESS_DENIED
	errMoreData     syscall.Errno = 234 // ERROR_MORE_DATA
	errNoMoreItems  syscall.Errno = 259 // ERROR_NO_MORE_ITEMS
)

// kindForCode maps a raw status to an error kind. The mapping is total:
// any code without a dedicated kind classifies as ErrKindUnknown and
// keeps the code for diagnosis.
func kindForCode(code syscall.Errno) ErrKind {
	switch code {
	case errFileNotFound, errPathNotFound:
		return ErrKindNotFound
	case errAccessDenied:
		return ErrKindPermission
	default:
		return ErrKindUnknown
	}
}

// statusError classifies a failed store call against path. The registry
// API reports its status through the return value, so err is the raw
// code as a syscall.Errno.
func statusError(op, path string, err error) *Error {
	var code syscall.Errno
	errors.As(err, &code)
	return &Error{Kind: kindForCode(code), Msg: op, Path: path, Code: code, Err: err}
}

// encodingError reports a name or payload rejected before any store call.
func encodingError(msg, path string, err error) *Error {
	return &Error{Kind: ErrKindEncoding, Msg: msg, Path: path, Err: err}
}
