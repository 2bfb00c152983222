//go:build windows

package main

import (
	"encoding/hex"
	"strings"

	"github.com/joshuapare/regkit/cmd/regctl/logger"
	"github.com/joshuapare/regkit/internal/printer"
	"github.com/joshuapare/regkit/registry"
)

// captureKey snapshots a single key, optionally with its values, into
// a printable node. Values that vanish between enumeration and read
// are skipped.
func captureKey(k *registry.Key, withValues bool) (*printer.Node, error) {
	info, err := k.Stat()
	if err != nil {
		return nil, err
	}

	n := &printer.Node{
		Path:        k.String(),
		Name:        leafName(k.String()),
		LastWrite:   info.LastWrite,
		SubKeyCount: int(info.SubKeyCount),
		ValueCount:  int(info.ValueCount),
	}

	if withValues {
		it := k.Values()
		for it.Next() {
			v, err := k.Value(it.Name())
			if err != nil {
				logger.Warn("skipping unreadable value", "key", k.String(), "value", it.Name(), "error", err)
				continue
			}
			n.Values = append(n.Values, printer.NamedValue{Name: it.Name(), Value: v})
		}
		if err := it.Err(); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// captureTree snapshots a subtree to maxDepth levels (0 = unlimited).
// Subkeys the caller cannot open or stat are skipped rather than
// failing the whole capture; the live registry always has some keys
// other processes own or ACLs hide.
func captureTree(k *registry.Key, withValues bool, maxDepth int) (*printer.Node, error) {
	return captureLevel(k, withValues, maxDepth, 0)
}

func captureLevel(k *registry.Key, withValues bool, maxDepth, depth int) (*printer.Node, error) {
	n, err := captureKey(k, withValues)
	if err != nil {
		return nil, err
	}

	if maxDepth > 0 && depth+1 >= maxDepth {
		return n, nil
	}

	names, err := k.SubKeyNames()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		child, err := k.Open(name, registry.READ)
		if err != nil {
			logger.Warn("skipping unreadable key", "key", k.String(), "subkey", name, "error", err)
			continue
		}
		cn, err := captureLevel(child, withValues, maxDepth, depth+1)
		child.Close()
		if err != nil {
			logger.Warn("skipping unreadable subtree", "key", k.String(), "subkey", name, "error", err)
			continue
		}
		n.Children = append(n.Children, cn)
	}

	return n, nil
}

// leafName returns the last segment of a registry path.
func leafName(path string) string {
	if i := strings.LastIndex(path, `\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// relativePaths flattens a captured tree into the paths of every key
// below the root, in visit order.
func relativePaths(n *printer.Node) []string {
	var out []string
	prefix := n.Path + `\`
	var walk func(*printer.Node)
	walk = func(c *printer.Node) {
		for _, child := range c.Children {
			out = append(out, strings.TrimPrefix(child.Path, prefix))
			walk(child)
		}
	}
	walk(n)
	return out
}

// jsonValueData decodes a value into the shape the JSON outputs use.
func jsonValueData(v registry.Value) any {
	switch v.Type {
	case registry.REG_SZ, registry.REG_EXPAND_SZ:
		if s, err := v.AsString(); err == nil {
			return s
		}
	case registry.REG_DWORD, registry.REG_DWORD_BE:
		if n, err := v.AsUint32(); err == nil {
			return n
		}
	case registry.REG_QWORD:
		if n, err := v.AsUint64(); err == nil {
			return n
		}
	case registry.REG_MULTI_SZ:
		if ss, err := v.AsStrings(); err == nil {
			return ss
		}
	}
	return hex.EncodeToString(v.Data)
}
