package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/joshuapare/regkit/registry"
)

// DefaultValueName is how the key's unnamed default value is labeled
// in output.
const DefaultValueName = "(Default)"

// jsonKey represents a registry key in JSON format.
type jsonKey struct {
	Name      string         `json:"name"`
	Path      string         `json:"path,omitempty"`
	LastWrite string         `json:"last_write,omitempty"`
	Subkeys   int            `json:"subkeys"`
	Values    int            `json:"values"`
	ValueData map[string]any `json:"value_data,omitempty"`
	Children  []jsonKey      `json:"children,omitempty"`
}

// jsonValue represents a registry value in JSON format.
type jsonValue struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Data any    `json:"data"`
}

// printKeyJSON prints a key in JSON format.
func (p *Printer) printKeyJSON(n *Node) error {
	// Without metadata, just output the name as a string
	if !p.opts.PrintMetadata {
		data, err := json.Marshal(n.Name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.writer, "%s\n", data)
		return err
	}

	key := p.buildJSONKey(n)

	data, err := json.MarshalIndent(key, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printValueJSON prints a single value in JSON format.
func (p *Printer) printValueJSON(name string, v registry.Value) error {
	if name == "" {
		name = DefaultValueName
	}

	var val any
	if p.opts.ShowValueTypes {
		val = jsonValue{
			Name: name,
			Type: v.Type.String(),
			Data: p.decodeValueJSON(v),
		}
	} else {
		val = map[string]any{
			name: p.decodeValueJSON(v),
		}
	}

	data, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printTreeJSON prints a subtree in JSON format.
func (p *Printer) printTreeJSON(n *Node) error {
	// Without metadata, print child key names only
	if !p.opts.PrintMetadata {
		names := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			names = append(names, child.Name)
		}
		data, err := json.Marshal(names)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.writer, "%s\n", data)
		return err
	}

	key := p.buildJSONTree(n, 0)

	data, err := json.MarshalIndent(key, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// buildJSONKey converts one node without descending into children.
func (p *Printer) buildJSONKey(n *Node) jsonKey {
	key := jsonKey{
		Name:    n.Name,
		Path:    n.Path,
		Subkeys: n.SubKeyCount,
		Values:  n.ValueCount,
	}

	if p.opts.ShowTimestamps {
		key.LastWrite = n.LastWrite.Format("2006-01-02T15:04:05Z07:00")
	}

	if p.opts.ShowValues && len(n.Values) > 0 {
		valueData := make(map[string]any, len(n.Values))
		for _, v := range n.Values {
			name := v.Name
			if name == "" {
				name = DefaultValueName
			}
			decoded := p.decodeValueJSON(v.Value)
			if p.opts.ShowValueTypes {
				valueData[name] = jsonValue{
					Name: name,
					Type: v.Value.Type.String(),
					Data: decoded,
				}
			} else {
				valueData[name] = decoded
			}
		}
		key.ValueData = valueData
	}

	return key
}

// buildJSONTree builds a JSON tree structure recursively.
func (p *Printer) buildJSONTree(n *Node, depth int) jsonKey {
	key := p.buildJSONKey(n)

	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return key
	}

	if len(n.Children) > 0 {
		key.Children = make([]jsonKey, 0, len(n.Children))
		for _, child := range n.Children {
			key.Children = append(key.Children, p.buildJSONTree(child, depth+1))
		}
	}

	return key
}

// decodeValueJSON decodes a value for JSON output. Payloads that fail
// to decode fall back to their hex form rather than being dropped.
func (p *Printer) decodeValueJSON(v registry.Value) any {
	switch v.Type {
	case registry.REG_SZ, registry.REG_EXPAND_SZ:
		str, err := v.AsString()
		if err != nil {
			return p.hexJSON(v.Data)
		}
		return str

	case registry.REG_DWORD, registry.REG_DWORD_BE:
		val, err := v.AsUint32()
		if err != nil {
			return p.hexJSON(v.Data)
		}
		return val

	case registry.REG_QWORD:
		val, err := v.AsUint64()
		if err != nil {
			return p.hexJSON(v.Data)
		}
		return val

	case registry.REG_MULTI_SZ:
		strs, err := v.AsStrings()
		if err != nil {
			return p.hexJSON(v.Data)
		}
		return strs

	case registry.REG_BINARY, registry.REG_NONE:
		return p.hexJSON(v.Data)

	default:
		return fmt.Sprintf("<%d bytes>", len(v.Data))
	}
}

func (p *Printer) hexJSON(data []byte) string {
	maxBytes := p.opts.MaxValueBytes
	if maxBytes == 0 {
		maxBytes = len(data)
	}
	displayLen := min(len(data), maxBytes)
	if displayLen == 0 {
		return ""
	}
	hexStr := hex.EncodeToString(data[:displayLen])
	if len(data) > maxBytes {
		hexStr += fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}
	return hexStr
}
