//go:build windows

package registry

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scratchKey creates a throwaway key under HKCU\Software for one test
// and tears the whole subtree down afterwards.
func scratchKey(t *testing.T) *Key {
	t.Helper()
	clean := strings.NewReplacer("/", "_", `\`, "_").Replace(t.Name())
	sub := fmt.Sprintf(`Software\regkit-test-%s-%d`, clean, time.Now().UnixNano())
	k, err := CurrentUser.Create(sub, ALL_ACCESS)
	require.NoError(t, err)
	t.Cleanup(func() {
		k.Close()
		_ = CurrentUser.Delete(sub, true)
	})
	return k
}

func TestCreateOpenDelete(t *testing.T) {
	root := scratchKey(t)

	child, err := root.Create("Sub", ALL_ACCESS)
	require.NoError(t, err)
	require.Equal(t, root.String()+`\Sub`, child.String())
	require.NoError(t, child.Close())

	reopened, err := root.Open("Sub", READ)
	require.NoError(t, err)
	require.NoError(t, reopened.Close())

	require.NoError(t, root.Delete("Sub", false))

	_, err = root.Open("Sub", READ)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpenMissing(t *testing.T) {
	root := scratchKey(t)

	_, err := root.Open("does-not-exist", READ)
	require.ErrorIs(t, err, ErrNotFound)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrKindNotFound, rerr.Kind)
	assert.NotZero(t, rerr.Code)
	assert.Contains(t, rerr.Path, "does-not-exist")
}

// TestCreateIntermediate tests that create builds the missing keys on
// the way down in one call.
func TestCreateIntermediate(t *testing.T) {
	root := scratchKey(t)

	leaf, err := root.Create(`A\B\C`, ALL_ACCESS)
	require.NoError(t, err)
	defer leaf.Close()

	mid, err := root.Open(`A\B`, READ)
	require.NoError(t, err)
	defer mid.Close()

	names, err := mid.SubKeyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, names)
}

func TestCreateExisting(t *testing.T) {
	root := scratchKey(t)

	first, err := root.Create("Sub", ALL_ACCESS)
	require.NoError(t, err)
	require.NoError(t, first.SetValue("marker", DWordValue(7)))
	require.NoError(t, first.Close())

	// Creating again opens the same key with its values intact.
	again, err := root.Create("Sub", READ)
	require.NoError(t, err)
	defer again.Close()

	got, err := again.ValueDWORD("marker")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got)
}

// TestValueRoundTrips writes a value of each constructor type and reads
// it back bit for bit through the live store.
func TestValueRoundTrips(t *testing.T) {
	root := scratchKey(t)

	str, err := StringValue("héllo wörld")
	require.NoError(t, err)
	expand, err := ExpandStringValue(`%SystemRoot%\system32`)
	require.NoError(t, err)
	multi, err := MultiStringValue([]string{"alpha", "beta", "gamma"})
	require.NoError(t, err)

	values := map[string]Value{
		"str":    str,
		"expand": expand,
		"multi":  multi,
		"bin":    BinaryValue([]byte{0xDE, 0xAD, 0xBE, 0xEF}),
		"dw":     DWordValue(0xCAFEBABE),
		"qw":     QWordValue(0x0123456789ABCDEF),
		"none":   NoneValue(),
	}

	for name, v := range values {
		require.NoError(t, root.SetValue(name, v), "set %s", name)
	}
	for name, want := range values {
		got, err := root.Value(name)
		require.NoError(t, err, "get %s", name)
		assert.Equal(t, want.Type, got.Type, "type of %s", name)
		assert.Equal(t, want.Data, got.Data, "payload of %s", name)
	}

	s, err := root.ValueString("str")
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", s)

	ss, err := root.ValueStrings("multi")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, ss)

	dw, err := root.ValueDWORD("dw")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), dw)

	qw, err := root.ValueQWORD("qw")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789ABCDEF), qw)

	b, err := root.ValueBytes("bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b)
}

// TestDefaultValue tests addressing the key's default value with the
// empty name.
func TestDefaultValue(t *testing.T) {
	root := scratchKey(t)

	_, err := root.Value("")
	require.ErrorIs(t, err, ErrNotFound)

	v, err := StringValue("default payload")
	require.NoError(t, err)
	require.NoError(t, root.SetValue("", v))

	got, err := root.ValueString("")
	require.NoError(t, err)
	assert.Equal(t, "default payload", got)
}

func TestValueOverwriteChangesType(t *testing.T) {
	root := scratchKey(t)

	require.NoError(t, root.SetValue("v", DWordValue(1)))
	sv, err := StringValue("now a string")
	require.NoError(t, err)
	require.NoError(t, root.SetValue("v", sv))

	got, err := root.Value("v")
	require.NoError(t, err)
	assert.Equal(t, REG_SZ, got.Type)
}

func TestLongValueNameAndPayload(t *testing.T) {
	root := scratchKey(t)

	name := strings.Repeat("n", 120)
	payload := BinaryValue(make([]byte, 64*1024))
	require.NoError(t, root.SetValue(name, payload))

	got, err := root.Value(name)
	require.NoError(t, err)
	assert.Len(t, got.Data, 64*1024)
}

func TestDeleteValue(t *testing.T) {
	root := scratchKey(t)

	require.NoError(t, root.SetValue("v", DWordValue(1)))
	require.NoError(t, root.DeleteValue("v"))

	_, err := root.Value("v")
	require.ErrorIs(t, err, ErrNotFound)

	err = root.DeleteValue("v")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestUseAfterClose tests that every operation on a closed key fails
// with a state error instead of touching the released handle.
func TestUseAfterClose(t *testing.T) {
	root := scratchKey(t)
	k, err := root.Create("Sub", ALL_ACCESS)
	require.NoError(t, err)

	require.NoError(t, k.Close())
	require.NoError(t, k.Close(), "second close is a no-op")

	_, err = k.Open("x", READ)
	require.ErrorIs(t, err, ErrKeyClosed)
	_, err = k.Create("x", READ)
	require.ErrorIs(t, err, ErrKeyClosed)
	require.ErrorIs(t, k.Delete("x", false), ErrKeyClosed)
	require.ErrorIs(t, k.DeleteSelf(false), ErrKeyClosed)
	_, err = k.Value("v")
	require.ErrorIs(t, err, ErrKeyClosed)
	require.ErrorIs(t, k.SetValue("v", DWordValue(1)), ErrKeyClosed)
	require.ErrorIs(t, k.DeleteValue("v"), ErrKeyClosed)
	_, err = k.Stat()
	require.ErrorIs(t, err, ErrKeyClosed)
	_, err = k.SubKeyNames()
	require.ErrorIs(t, err, ErrKeyClosed)
	require.ErrorIs(t, k.Walk(func(string, *Key) error { return nil }), ErrKeyClosed)
}

// TestDeleteSelf tests that the handle is consumed on success.
func TestDeleteSelf(t *testing.T) {
	root := scratchKey(t)
	k, err := root.Create("Victim", ALL_ACCESS)
	require.NoError(t, err)

	require.NoError(t, k.DeleteSelf(false))

	_, err = k.Stat()
	require.ErrorIs(t, err, ErrKeyClosed)

	_, err = root.Open("Victim", READ)
	require.ErrorIs(t, err, ErrNotFound)
}

// TestDeleteSelfPopulated tests that a failed non-recursive delete
// still consumes the handle.
func TestDeleteSelfPopulated(t *testing.T) {
	root := scratchKey(t)
	k, err := root.Create("Victim", ALL_ACCESS)
	require.NoError(t, err)
	child, err := k.Create("Child", READ)
	require.NoError(t, err)
	require.NoError(t, child.Close())

	err = k.DeleteSelf(false)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)

	// Consumed regardless of the outcome.
	_, err = k.Stat()
	require.ErrorIs(t, err, ErrKeyClosed)

	// The key survived the failed delete.
	still, err := root.Open("Victim", READ)
	require.NoError(t, err)
	still.Close()
}

func TestDeleteSelfRecursive(t *testing.T) {
	root := scratchKey(t)
	k, err := root.Create("Victim", ALL_ACCESS)
	require.NoError(t, err)
	leaf, err := k.Create(`A\B`, READ)
	require.NoError(t, err)
	require.NoError(t, leaf.Close())

	require.NoError(t, k.DeleteSelf(true))

	_, err = root.Open("Victim", READ)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNonRecursiveDeletePopulated(t *testing.T) {
	root := scratchKey(t)
	leaf, err := root.Create(`Sub\Inner`, READ)
	require.NoError(t, err)
	require.NoError(t, leaf.Close())

	err = root.Delete("Sub", false)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)

	require.NoError(t, root.Delete("Sub", true))
	_, err = root.Open("Sub", READ)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStat(t *testing.T) {
	root := scratchKey(t)

	for _, name := range []string{"Aa", "Bbb", "Cccc"} {
		k, err := root.Create(name, READ)
		require.NoError(t, err)
		require.NoError(t, k.Close())
	}
	require.NoError(t, root.SetValue("alpha", DWordValue(1)))
	require.NoError(t, root.SetValue("betabeta", BinaryValue(make([]byte, 32))))

	info, err := root.Stat()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), info.SubKeyCount)
	assert.Equal(t, uint32(4), info.MaxSubKeyLen, "UTF-16 units in Cccc")
	assert.Equal(t, uint32(2), info.ValueCount)
	assert.Equal(t, uint32(8), info.MaxValueNameLen, "UTF-16 units in betabeta")
	assert.Equal(t, uint32(32), info.MaxValueLen)
	assert.True(t, info.LastWrite.After(time.Now().Add(-time.Hour)), "LastWrite should be recent")
}

func TestUnicodeNames(t *testing.T) {
	root := scratchKey(t)

	k, err := root.Create("Ünïcode 鍵", ALL_ACCESS)
	require.NoError(t, err)
	require.NoError(t, k.SetValue("wert 値", DWordValue(42)))
	require.NoError(t, k.Close())

	reopened, err := root.Open("Ünïcode 鍵", READ)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ValueDWORD("wert 値")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)

	names, err := root.SubKeyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ünïcode 鍵"}, names)
}

func TestEmbeddedNULRejectedBeforeSyscall(t *testing.T) {
	root := scratchKey(t)

	_, err := root.Open("bad\x00name", READ)
	require.ErrorIs(t, err, ErrBadEncoding)

	err = root.SetValue("bad\x00name", DWordValue(1))
	require.ErrorIs(t, err, ErrBadEncoding)
}

// TestWalk tests pre-order traversal. Subkey enumeration is sorted by
// the store, so the visit sequence is deterministic.
func TestWalk(t *testing.T) {
	root := scratchKey(t)
	for _, p := range []string{`A\B`, "C"} {
		k, err := root.Create(p, READ)
		require.NoError(t, err)
		require.NoError(t, k.Close())
	}

	var visited []string
	err := root.Walk(func(path string, k *Key) error {
		visited = append(visited, strings.TrimPrefix(path, root.String()))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"", `\A`, `\A\B`, `\C`}, visited)
}

func TestWalkSkipSubtree(t *testing.T) {
	root := scratchKey(t)
	for _, p := range []string{`A\B`, "C"} {
		k, err := root.Create(p, READ)
		require.NoError(t, err)
		require.NoError(t, k.Close())
	}

	var visited []string
	err := root.Walk(func(path string, k *Key) error {
		rel := strings.TrimPrefix(path, root.String())
		visited = append(visited, rel)
		if rel == `\A` {
			return SkipSubtree
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"", `\A`, `\C`}, visited)
}

func TestWalkAborts(t *testing.T) {
	root := scratchKey(t)
	k, err := root.Create("A", READ)
	require.NoError(t, err)
	require.NoError(t, k.Close())

	boom := errors.New("boom")
	calls := 0
	err = root.Walk(func(string, *Key) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWalkNilCallback(t *testing.T) {
	root := scratchKey(t)
	err := root.Walk(nil)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrKindState, rerr.Kind)
}

func TestOpenCurrentUser(t *testing.T) {
	k, err := OpenCurrentUser(READ)
	require.NoError(t, err)
	defer k.Close()

	assert.Equal(t, "<Current User>", k.String())
	_, err = k.Stat()
	require.NoError(t, err)
}

func TestHiveOpenRoot(t *testing.T) {
	// An empty path yields a real handle to the root itself.
	k, err := CurrentUser.Open("", READ)
	require.NoError(t, err)
	defer k.Close()

	assert.Equal(t, "HKEY_CURRENT_USER", k.String())
	names, err := k.SubKeyNames()
	require.NoError(t, err)
	assert.NotEmpty(t, names)
}

func TestOpenPath(t *testing.T) {
	k, err := OpenPath(`HKCU\Software`, READ)
	require.NoError(t, err)
	defer k.Close()
	assert.Equal(t, `HKEY_CURRENT_USER\Software`, k.String())

	_, err = OpenPath(`NOT_A_ROOT\Software`, READ)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestKeyStringUnknown(t *testing.T) {
	var k Key
	assert.Equal(t, "<unknown>", k.String())
}
