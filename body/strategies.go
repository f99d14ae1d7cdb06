package body

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v2"

	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/query"
)

func serializeJSON(params any) (any, error) {
	return dto.MarshalJSONNoEscape(params)
}

func serializeForm(params any) (any, error) {
	p, err := query.ToParams(params)
	if err != nil {
		return nil, err
	}
	return []byte(query.Stringify(p)), nil
}

func serializeYAML(params any) (any, error) {
	return yaml.Marshal(toYAML(params))
}

func serializeBSON(params any) (any, error) {
	doc := toBSON(params)
	switch doc.(type) {
	case bson.D, map[string]any:
	default:
		if kind := indirectKind(params); kind != reflect.Struct && kind != reflect.Map {
			return nil, fmt.Errorf("bson body needs a document, got %T", params)
		}
	}
	return bson.Marshal(doc)
}

// toYAML rewrites Params into yaml.MapSlice so key order survives encoding.
func toYAML(v any) any {
	switch t := v.(type) {
	case dto.Params:
		out := make(yaml.MapSlice, len(t))
		for i, kv := range t {
			out[i] = yaml.MapItem{Key: kv.Key, Value: toYAML(kv.Value)}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = toYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = toYAML(val)
		}
		return out
	default:
		return v
	}
}

// toBSON rewrites Params into bson.D so key order survives encoding.
func toBSON(v any) any {
	switch t := v.(type) {
	case dto.Params:
		out := make(bson.D, len(t))
		for i, kv := range t {
			out[i] = bson.E{Key: kv.Key, Value: toBSON(kv.Value)}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = toBSON(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = toBSON(val)
		}
		return out
	default:
		return v
	}
}

func indirectKind(v any) reflect.Kind {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Invalid
		}
		rv = rv.Elem()
	}
	return rv.Kind()
}
