package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Param is a single key/value pair of an ordered parameter mapping.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter mapping. Values may be scalars, nested
// Params, maps with string keys or slices.
type Params []Param

// NewParams builds Params from alternating keys and values.
// A trailing key without a value is stored with a nil value.
func NewParams(kv ...any) Params {
	p := make(Params, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		p = p.With(key, val)
	}
	return p
}

func (p Params) Len() int {
	return len(p)
}

func (p Params) Get(key string) (any, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i, kv := range p {
		keys[i] = kv.Key
	}
	return keys
}

// With returns a copy of p where key holds val. An existing key keeps its
// position, a new key is appended.
func (p Params) With(key string, val any) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = val
			return out
		}
	}
	return append(out, Param{Key: key, Value: val})
}

// Merge returns a shallow merge of p and over where keys of over win.
// Neither input is modified.
func (p Params) Merge(over Params) Params {
	out := make(Params, len(p), len(p)+len(over))
	copy(out, p)
	for _, kv := range over {
		replaced := false
		for i := range out {
			if out[i].Key == kv.Key {
				out[i].Value = kv.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, kv)
		}
	}
	return out
}

// Map flattens the top level into an unordered map.
func (p Params) Map() map[string]any {
	m := make(map[string]any, len(p))
	for _, kv := range p {
		m[kv.Key] = kv.Value
	}
	return m
}

// MarshalJSON encodes p as a JSON object keeping key order.
func (p Params) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := MarshalJSONNoEscape(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := MarshalJSONNoEscape(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal param %q: %w", kv.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSONNoEscape encodes v like JSON.stringify does: no HTML escaping
// and no trailing newline.
func MarshalJSONNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
