package registry

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"
)

// Test_KindForCode tests the status code classification.
func Test_KindForCode(t *testing.T) {
	tests := []struct {
		name string
		code syscall.Errno
		want ErrKind
	}{
		{"file not found", 2, ErrKindNotFound},
		{"path not found", 3, ErrKindNotFound},
		{"access denied", 5, ErrKindPermission},
		{"zero", 0, ErrKindUnknown},
		{"invalid parameter", 87, ErrKindUnknown},
		{"no more items", 259, ErrKindUnknown},
		{"arbitrary", 1009, ErrKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindForCode(tt.code); got != tt.want {
				t.Errorf("kindForCode(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

// Test_StatusError tests that raw status codes come back classified,
// matchable, and intact.
func Test_StatusError(t *testing.T) {
	err := statusError("open key", `HKEY_LOCAL_MACHINE\Software\Missing`, syscall.Errno(2))

	if err.Kind != ErrKindNotFound {
		t.Errorf("Kind = %v, want ErrKindNotFound", err.Kind)
	}
	if err.Code != 2 {
		t.Errorf("Code = %d, want 2", err.Code)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
	if errors.Is(err, ErrPermission) {
		t.Error("did not expect errors.Is(err, ErrPermission)")
	}
	// The raw code survives for callers that need the exact status.
	var code syscall.Errno
	if !errors.As(err, &code) || code != 2 {
		t.Errorf("underlying Errno = %d, want 2", code)
	}
	// Message text of the code is platform wording; only the stable
	// prefix is checked.
	if !strings.HasPrefix(err.Error(), `open key HKEY_LOCAL_MACHINE\Software\Missing`) {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func Test_StatusErrorPermission(t *testing.T) {
	err := statusError("delete key", `HKEY_LOCAL_MACHINE\SAM`, syscall.Errno(5))
	if !errors.Is(err, ErrPermission) {
		t.Error("expected errors.Is(err, ErrPermission)")
	}
	if err.Kind != ErrKindPermission {
		t.Errorf("Kind = %v, want ErrKindPermission", err.Kind)
	}
}

// Test_ErrorMessage tests the formatting of each field combination.
func Test_ErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"msg only", &Error{Msg: "open key"}, "open key"},
		{"msg and path", &Error{Msg: "open key", Path: `HKCU\Console`}, `open key HKCU\Console`},
		{"msg path cause", &Error{Msg: "open key", Path: `HKCU\Console`, Err: cause}, `open key HKCU\Console: boom`},
		{"msg and cause", &Error{Msg: "decode", Err: cause}, "decode: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_ErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := encodingError("invalid subkey path", `HKCU\bad`, cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
	if !errors.Is(err, ErrBadEncoding) {
		t.Error("expected errors.Is(err, ErrBadEncoding)")
	}
}

// Test_ErrorIsKindMatching tests that sentinel matching is by kind, not
// by message or path.
func Test_ErrorIsKindMatching(t *testing.T) {
	err := &Error{Kind: ErrKindState, Msg: "key is closed", Path: `HKCU\Software\App`}
	if !errors.Is(err, ErrKeyClosed) {
		t.Error("expected errors.Is(err, ErrKeyClosed)")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("did not expect errors.Is(err, ErrNotFound)")
	}
	if errors.Is(err, fmt.Errorf("other")) {
		t.Error("did not expect a match against a foreign error")
	}
}
