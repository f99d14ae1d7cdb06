// Package query merges parameter mappings into URL query strings using the
// bracket convention for nested values (a[b]=c, a[0]=x).
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	qstring "github.com/google/go-querystring/query"

	"github.com/andy-shea/ftchr/dto"
)

// arrayLimit is the highest list index Parse accepts before treating the
// segment as a map key.
const arrayLimit = 20

// Encode merges params into the query string of path. Keys of params win on
// collision. Empty or nil params return path unchanged.
func Encode(path string, params any) (string, error) {
	p, err := ToParams(params)
	if err != nil {
		return "", err
	}
	if len(p) == 0 {
		return path, nil
	}
	base, rawQuery, _ := strings.Cut(path, "?")
	qs := Stringify(Parse(rawQuery).Merge(p))
	if qs == "" {
		return base, nil
	}
	return base + "?" + qs, nil
}

// ToParams normalizes the supported parameter shapes into ordered Params.
// Unordered maps are sorted by key; structs go through their `url` tags.
func ToParams(params any) (dto.Params, error) {
	switch v := params.(type) {
	case nil:
		return nil, nil
	case dto.Params:
		return v, nil
	case map[string]any:
		return sortedParams(v), nil
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return sortedParams(m), nil
	case url.Values:
		return valuesToParams(v), nil
	case map[string][]string:
		return valuesToParams(url.Values(v)), nil
	}

	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported params type %T", params)
	}
	values, err := qstring.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encode struct params: %w", err)
	}
	return valuesToParams(values), nil
}

func sortedParams(m map[string]any) dto.Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := make(dto.Params, 0, len(keys))
	for _, k := range keys {
		p = append(p, dto.Param{Key: k, Value: m[k]})
	}
	return p
}

func valuesToParams(values url.Values) dto.Params {
	m := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			m[k] = vs[0]
		default:
			list := make([]any, len(vs))
			for i, s := range vs {
				list[i] = s
			}
			m[k] = list
		}
	}
	return sortedParams(m)
}

// Stringify encodes p as key=value pairs joined by '&'. Empty nested lists
// and maps produce no pairs.
func Stringify(p dto.Params) string {
	pairs := make([]string, 0, len(p))
	for _, kv := range p {
		pairs = appendPairs(pairs, kv.Key, kv.Value)
	}
	return strings.Join(pairs, "&")
}

func appendPairs(pairs []string, key string, value any) []string {
	switch v := value.(type) {
	case nil:
		return append(pairs, escape(key)+"=")
	case dto.Params:
		for _, kv := range v {
			pairs = appendPairs(pairs, key+"["+kv.Key+"]", kv.Value)
		}
		return pairs
	case time.Time:
		return append(pairs, escape(key)+"="+escape(v.UTC().Format(time.RFC3339Nano)))
	case []byte:
		return append(pairs, escape(key)+"="+escape(string(v)))
	case fmt.Stringer:
		return append(pairs, escape(key)+"="+escape(v.String()))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return append(pairs, escape(key)+"=")
		}
		return appendPairs(pairs, key, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			pairs = appendPairs(pairs, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
		return pairs
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			elem := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			pairs = appendPairs(pairs, key+"["+k+"]", elem.Interface())
		}
		return pairs
	}
	return append(pairs, escape(key)+"="+escape(scalar(value)))
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// escape percent-encodes everything outside the RFC 3986 unreserved set.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
