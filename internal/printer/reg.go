package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/registry"
)

// regHeader is the first line regedit expects in a .reg file.
const regHeader = "Windows Registry Editor Version 5.00"

// printKeyReg prints a key in Windows .reg file format.
func (p *Printer) printKeyReg(n *Node) error {
	fmt.Fprintf(p.writer, "%s\n\n", regHeader)
	fmt.Fprintf(p.writer, "[%s]\n", normalizeRegPath(n.Path))

	if p.opts.ShowValues {
		for _, v := range n.Values {
			p.printValueReg(v.Name, v.Value)
		}
	}

	return nil
}

// printTreeReg recursively prints a subtree in .reg file format.
func (p *Printer) printTreeReg(n *Node, depth int) error {
	// Check depth limit
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}

	// Header only once, at the root
	if depth == 0 {
		fmt.Fprintf(p.writer, "%s\n\n", regHeader)
	}

	fmt.Fprintf(p.writer, "[%s]\n", normalizeRegPath(n.Path))

	if p.opts.ShowValues {
		for _, v := range n.Values {
			p.printValueReg(v.Name, v.Value)
		}
	}

	for _, child := range n.Children {
		// Blank line between keys
		fmt.Fprintln(p.writer)

		if err := p.printTreeReg(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// printValueReg prints a value in .reg file format. Payloads are
// emitted from store encoding directly, so hex forms are exact even
// for data the codec cannot decode; only the quoted string and dword
// forms need a decode, and they fall back to their raw hex form.
func (p *Printer) printValueReg(name string, v registry.Value) {
	// Default value uses @ in .reg format
	if name == "" {
		name = "@"
	} else {
		name = fmt.Sprintf("\"%s\"", escapeRegString(name))
	}

	switch v.Type {
	case registry.REG_SZ:
		str, err := v.AsString()
		if err != nil {
			p.writeHex(fmt.Sprintf("%s=hex(1):", name), v.Data)
			return
		}
		fmt.Fprintf(p.writer, "%s=\"%s\"\n", name, escapeRegString(str))

	case registry.REG_EXPAND_SZ:
		// REG_EXPAND_SZ is encoded as hex(2): in .reg format
		p.writeHex(fmt.Sprintf("%s=hex(2):", name), v.Data)

	case registry.REG_DWORD:
		val, err := v.AsUint32()
		if err != nil {
			p.writeHex(fmt.Sprintf("%s=hex(4):", name), v.Data)
			return
		}
		fmt.Fprintf(p.writer, "%s=dword:%08x\n", name, val)

	case registry.REG_DWORD_BE:
		p.writeHex(fmt.Sprintf("%s=hex(5):", name), v.Data)

	case registry.REG_QWORD:
		p.writeHex(fmt.Sprintf("%s=hex(b):", name), v.Data)

	case registry.REG_MULTI_SZ:
		p.writeHex(fmt.Sprintf("%s=hex(7):", name), v.Data)

	case registry.REG_BINARY:
		p.writeHex(fmt.Sprintf("%s=hex:", name), p.clipBytes(v.Data))

	case registry.REG_NONE:
		p.writeHex(fmt.Sprintf("%s=hex(0):", name), p.clipBytes(v.Data))

	default:
		// Unknown type, output as hex with the type number
		p.writeHex(fmt.Sprintf("%s=hex(%x):", name, uint32(v.Type)), p.clipBytes(v.Data))
	}
}

// clipBytes applies the MaxValueBytes display limit.
func (p *Printer) clipBytes(data []byte) []byte {
	maxBytes := p.opts.MaxValueBytes
	if maxBytes == 0 || maxBytes > len(data) {
		maxBytes = len(data)
	}
	return data[:maxBytes]
}

// writeHex emits lead followed by the comma-separated hex bytes. With
// WrapLines set, lines break at wrapWidth columns with a backslash and
// continue indented by two spaces, the way regedit wraps exports.
func (p *Printer) writeHex(lead string, data []byte) {
	if !p.opts.WrapLines {
		fmt.Fprintf(p.writer, "%s%s\n", lead, formatHexBytes(data))
		return
	}

	line := lead
	for i, b := range data {
		part := fmt.Sprintf("%02x", b)
		if i == 0 {
			line += part
			continue
		}
		// Keep room for the separator and a possible trailing backslash.
		if len(line)+1+len(part) > wrapWidth-2 {
			fmt.Fprintf(p.writer, "%s,\\\n", line)
			line = "  " + part
		} else {
			line += "," + part
		}
	}
	fmt.Fprintf(p.writer, "%s\n", line)
}

// normalizeRegPath ensures the path has a registry root prefix.
func normalizeRegPath(path string) string {
	if path == "" {
		return "HKEY_LOCAL_MACHINE"
	}

	upper := strings.ToUpper(path)
	if strings.HasPrefix(upper, "HKEY_") || strings.HasPrefix(upper, "HK") {
		return path
	}

	return "HKEY_LOCAL_MACHINE\\" + path
}

// escapeRegString escapes special characters in .reg file strings.
func escapeRegString(s string) string {
	// Escape backslashes and quotes
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// formatHexBytes formats bytes as comma-separated hex values for .reg format.
func formatHexBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ",")
}
