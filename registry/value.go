package registry

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// utf16le transcodes string payloads. Registry string data is UTF-16LE
// without a byte order mark.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Value is a raw registry value: the declared type plus the payload in
// store encoding. Constructors produce correctly encoded payloads and
// accessors decode them with type checks. A Value read from one key can
// be written to another unchanged; nothing is reinterpreted in between.
type Value struct {
	Type RegType
	Data []byte
}

// NoneValue returns an empty REG_NONE value.
func NoneValue() Value {
	return Value{Type: REG_NONE}
}

// StringValue encodes s as a REG_SZ value. Strings with embedded NUL
// characters cannot be represented in the NUL-terminated wire form and
// are rejected.
func StringValue(s string) (Value, error) {
	if strings.ContainsRune(s, 0) {
		return Value{}, &Error{Kind: ErrKindEncoding, Msg: "string value contains embedded NUL"}
	}
	return Value{Type: REG_SZ, Data: encodeUTF16LEZ(s)}, nil
}

// ExpandStringValue encodes s as a REG_EXPAND_SZ value. Environment
// references like %SystemRoot% are stored unexpanded; expansion is the
// reader's concern.
func ExpandStringValue(s string) (Value, error) {
	if strings.ContainsRune(s, 0) {
		return Value{}, &Error{Kind: ErrKindEncoding, Msg: "string value contains embedded NUL"}
	}
	return Value{Type: REG_EXPAND_SZ, Data: encodeUTF16LEZ(s)}, nil
}

// MultiStringValue encodes ss as a REG_MULTI_SZ value. The wire form
// terminates each element with a NUL and the list with an empty
// element, so elements must be non-empty and NUL-free.
func MultiStringValue(ss []string) (Value, error) {
	var buf []byte
	for _, s := range ss {
		if s == "" {
			return Value{}, &Error{Kind: ErrKindEncoding, Msg: "multi-string value cannot contain empty strings"}
		}
		if strings.ContainsRune(s, 0) {
			return Value{}, &Error{Kind: ErrKindEncoding, Msg: "string value contains embedded NUL"}
		}
		buf = append(buf, encodeUTF16LEZ(s)...)
	}
	buf = append(buf, 0, 0)
	return Value{Type: REG_MULTI_SZ, Data: buf}, nil
}

// BinaryValue wraps b as a REG_BINARY value. The slice is copied.
func BinaryValue(b []byte) Value {
	data := make([]byte, len(b))
	copy(data, b)
	return Value{Type: REG_BINARY, Data: data}
}

// DWordValue encodes v as a little-endian REG_DWORD value.
func DWordValue(v uint32) Value {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return Value{Type: REG_DWORD, Data: buf}
}

// QWordValue encodes v as a REG_QWORD value.
func QWordValue(v uint64) Value {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return Value{Type: REG_QWORD, Data: buf}
}

// AsString decodes a REG_SZ or REG_EXPAND_SZ payload. A single trailing
// NUL terminator is trimmed; values written without one decode the same.
func (v Value) AsString() (string, error) {
	if v.Type != REG_SZ && v.Type != REG_EXPAND_SZ {
		return "", typeError(v.Type, "REG_SZ or REG_EXPAND_SZ")
	}
	return decodeUTF16LEZ(v.Data)
}

// AsStrings decodes a REG_MULTI_SZ payload into its elements.
func (v Value) AsStrings() ([]string, error) {
	if v.Type != REG_MULTI_SZ {
		return nil, typeError(v.Type, "REG_MULTI_SZ")
	}
	data := v.Data
	if len(data)%2 != 0 {
		return nil, &Error{Kind: ErrKindEncoding, Msg: "multi-string payload has odd length"}
	}
	if len(data) < 2 || data[len(data)-1] != 0 || data[len(data)-2] != 0 {
		return nil, &Error{Kind: ErrKindEncoding, Msg: "multi-string payload missing terminator"}
	}
	var result []string
	start := 0
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			if i == start {
				break
			}
			s, err := decodeUTF16LEZ(data[start:i])
			if err != nil {
				return nil, err
			}
			result = append(result, s)
			start = i + 2
		}
	}
	return result, nil
}

// AsUint32 decodes a REG_DWORD or REG_DWORD_BE payload. Big-endian
// values are byte-swapped on read; they are a storage curiosity, not a
// distinct numeric domain.
func (v Value) AsUint32() (uint32, error) {
	switch v.Type {
	case REG_DWORD:
		if len(v.Data) != 4 {
			return 0, &Error{Kind: ErrKindEncoding, Msg: fmt.Sprintf("dword payload is %d bytes, want 4", len(v.Data))}
		}
		return binary.LittleEndian.Uint32(v.Data), nil
	case REG_DWORD_BE:
		if len(v.Data) != 4 {
			return 0, &Error{Kind: ErrKindEncoding, Msg: fmt.Sprintf("dword payload is %d bytes, want 4", len(v.Data))}
		}
		return binary.BigEndian.Uint32(v.Data), nil
	default:
		return 0, typeError(v.Type, "REG_DWORD")
	}
}

// AsUint64 decodes a REG_QWORD payload.
func (v Value) AsUint64() (uint64, error) {
	if v.Type != REG_QWORD {
		return 0, typeError(v.Type, "REG_QWORD")
	}
	if len(v.Data) != 8 {
		return 0, &Error{Kind: ErrKindEncoding, Msg: fmt.Sprintf("qword payload is %d bytes, want 8", len(v.Data))}
	}
	return binary.LittleEndian.Uint64(v.Data), nil
}

// AsBytes returns a copy of the raw payload. Valid for every type.
func (v Value) AsBytes() []byte {
	data := make([]byte, len(v.Data))
	copy(data, v.Data)
	return data
}

func typeError(got RegType, want string) *Error {
	return &Error{Kind: ErrKindType, Msg: fmt.Sprintf("registry value is %s, want %s", got, want)}
}

// encodeUTF16LEZ encodes s as UTF-16LE with a NUL terminator.
func encodeUTF16LEZ(s string) []byte {
	// The UTF-16 encoder covers the full repertoire; malformed UTF-8 is
	// replaced rather than rejected, so the error is always nil.
	b, _ := utf16le.NewEncoder().Bytes([]byte(s))
	return append(b, 0, 0)
}

// decodeUTF16LEZ decodes UTF-16LE bytes, trimming one trailing NUL
// terminator when present.
func decodeUTF16LEZ(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", &Error{Kind: ErrKindEncoding, Msg: "utf-16 payload has odd length"}
	}
	if len(data) >= 2 && data[len(data)-2] == 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-2]
	}
	if len(data) == 0 {
		return "", nil
	}
	b, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return "", &Error{Kind: ErrKindEncoding, Msg: "utf-16 payload is malformed", Err: err}
	}
	return string(b), nil
}
