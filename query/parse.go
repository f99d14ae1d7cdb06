package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/andy-shea/ftchr/dto"
)

// Parse decodes a raw query string (without the leading '?') into Params.
// Bracketed keys build nested Params and lists, repeated plain keys become
// lists. Malformed escapes are kept verbatim.
func Parse(raw string) dto.Params {
	var out dto.Params
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key := unescape(rawKey)
		if key == "" {
			continue
		}
		root, segments := splitKey(key)
		current, exists := out.Get(root)
		out = out.With(root, place(current, exists, segments, unescape(rawValue)))
	}
	for i := range out {
		out[i].Value = compact(out[i].Value)
	}
	return out
}

func unescape(s string) string {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return v
}

// splitKey splits "a[b][0]" into "a" and ["b", "0"]. A key whose brackets do
// not close is returned whole.
func splitKey(key string) (string, []string) {
	open := strings.IndexByte(key, '[')
	if open <= 0 {
		return key, nil
	}
	root := key[:open]
	rest := key[open:]
	var segments []string
	for len(rest) > 0 {
		if rest[0] != '[' {
			return key, nil
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return key, nil
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}
	return root, segments
}

func place(current any, exists bool, segments []string, value string) any {
	if len(segments) == 0 {
		if !exists {
			return value
		}
		if list, ok := current.([]any); ok {
			return append(list, value)
		}
		return []any{current, value}
	}

	seg, rest := segments[0], segments[1:]

	if seg == "" {
		list, _ := current.([]any)
		if exists && list == nil {
			if obj, ok := current.(dto.Params); ok {
				return obj.With(strconv.Itoa(len(obj)), place(nil, false, rest, value))
			}
			list = []any{current}
		}
		return append(list, place(nil, false, rest, value))
	}

	if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 && idx <= arrayLimit {
		list, isList := current.([]any)
		if isList || !exists {
			grown := make([]any, len(list), max(len(list), idx+1))
			copy(grown, list)
			for len(grown) <= idx {
				grown = append(grown, nil)
			}
			grown[idx] = place(grown[idx], grown[idx] != nil, rest, value)
			return grown
		}
	}

	obj, _ := current.(dto.Params)
	if list, ok := current.([]any); ok {
		obj = listToParams(list)
	}
	child, childExists := obj.Get(seg)
	return obj.With(seg, place(child, childExists, rest, value))
}

// compact drops the holes left by sparse indexes, so a[5]=x is read back as
// a one element list.
func compact(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, el := range v {
			if el != nil {
				out = append(out, compact(el))
			}
		}
		return out
	case dto.Params:
		out := make(dto.Params, len(v))
		for i, kv := range v {
			out[i] = dto.Param{Key: kv.Key, Value: compact(kv.Value)}
		}
		return out
	default:
		return value
	}
}

func listToParams(list []any) dto.Params {
	p := make(dto.Params, 0, len(list))
	for i, v := range list {
		p = append(p, dto.Param{Key: strconv.Itoa(i), Value: v})
	}
	return p
}
