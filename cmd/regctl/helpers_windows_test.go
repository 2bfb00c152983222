//go:build windows

package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/joshuapare/regkit/registry"
)

// scratchPath creates a throwaway key under HKCU\Software and returns its
// fully qualified path. The whole subtree is removed on cleanup; tests
// that delete the key themselves just make the cleanup a no-op.
func scratchPath(t *testing.T) string {
	t.Helper()

	sub := fmt.Sprintf(`Software\regctl-test-%s-%d`,
		strings.NewReplacer("/", "_", `\`, "_").Replace(t.Name()),
		time.Now().UnixNano())

	k, err := registry.CurrentUser.Create(sub, registry.ALL_ACCESS)
	if err != nil {
		t.Fatalf("failed to create scratch key: %v", err)
	}
	if err := k.Close(); err != nil {
		t.Fatalf("failed to close scratch key: %v", err)
	}

	t.Cleanup(func() {
		if err := registry.CurrentUser.Delete(sub, true); err != nil && !errors.Is(err, registry.ErrNotFound) {
			t.Errorf("failed to remove scratch key: %v", err)
		}
	})

	return `HKEY_CURRENT_USER\` + sub
}

// seedTree populates a scratch key with a small fixed layout:
// a default value, two typed values, subkeys Alpha (with a value and a
// nested Deep key) and Beta.
func seedTree(t *testing.T, path string) {
	t.Helper()

	k, err := registry.OpenPath(path, registry.ALL_ACCESS)
	if err != nil {
		t.Fatalf("failed to open scratch key: %v", err)
	}
	defer k.Close()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to seed scratch key: %v", err)
		}
	}

	top, err := registry.StringValue("top")
	must(err)
	str, err := registry.StringValue("hello")
	must(err)
	must(k.SetValue("", top))
	must(k.SetValue("str", str))
	must(k.SetValue("dw", registry.DWordValue(4660)))

	alpha, err := k.Create("Alpha", registry.ALL_ACCESS)
	must(err)
	must(alpha.SetValue("inner", registry.DWordValue(7)))
	deep, err := alpha.Create("Deep", registry.ALL_ACCESS)
	must(err)
	must(deep.Close())
	must(alpha.Close())

	beta, err := k.Create("Beta", registry.ALL_ACCESS)
	must(err)
	must(beta.Close())
}

// resetFlags restores the persistent output flags between subtests.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
}
