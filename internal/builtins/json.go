package builtins

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// installJSONBuiltins seeds parseJson/toJson, the JSON helpers "the
// library" (spec.md §4.6) needs to exchange data with oracle adapters
// and hosts. Grounded on the teacher's internal/builtins/json.go
// ParseJSON/ToJSON pair, but converting directly to/from MindScript's
// own array/object values (there is no intermediate jsonvalue tree here,
// unlike the teacher, since array/object already is the JSON shape).
func installJSONBuiltins(root *runtime.Environment) {
	root.Define("parseJson", builtin("parseJson", builtinParseJSON))
	root.Define("toJson", builtin("toJson", builtinToJSON))
}

func builtinParseJSON(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	s, ok := runtime.Unannotate(v).(runtime.Str)
	if !ok {
		return nil, fmt.Errorf("parseJson() expects a str, got %s", v.Kind())
	}
	if !gjson.Valid(s.Value) {
		return nil, fmt.Errorf("parseJson(): invalid json")
	}
	return gjsonToValue(gjson.Parse(s.Value)), nil
}

func gjsonToValue(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.NullValue
	case gjson.False:
		return runtime.Bool{Value: false}
	case gjson.True:
		return runtime.Bool{Value: true}
	case gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return runtime.Num{Value: r.Num}
		}
		return runtime.Int{Value: r.Int()}
	case gjson.String:
		return runtime.Str{Value: r.Str}
	case gjson.JSON:
		if r.IsArray() {
			var elems []runtime.Value
			r.ForEach(func(_, value gjson.Result) bool {
				elems = append(elems, gjsonToValue(value))
				return true
			})
			return runtime.NewArray(elems)
		}
		var fields []runtime.Field
		r.ForEach(func(key, value gjson.Result) bool {
			fields = append(fields, runtime.Field{Key: key.Str, Value: gjsonToValue(value)})
			return true
		})
		return runtime.NewObject(fields)
	}
	return runtime.NullValue
}

func builtinToJSON(_ runtime.Caller, v runtime.Value) (runtime.Value, error) {
	raw, err := marshalValue(v)
	if err != nil {
		return nil, err
	}
	return runtime.Str{Value: raw}, nil
}

// marshalValue builds a JSON document for v bottom-up with sjson.SetRaw,
// composing each array index / object field's already-serialized JSON
// into the growing container (stdlib encoding/json only handles scalar
// string escaping, which neither gjson nor sjson perform standalone).
func marshalValue(v runtime.Value) (string, error) {
	switch vv := runtime.Unannotate(v).(type) {
	case runtime.Null:
		return "null", nil
	case runtime.Bool:
		if vv.Value {
			return "true", nil
		}
		return "false", nil
	case runtime.Int:
		return strconv.FormatInt(vv.Value, 10), nil
	case runtime.Num:
		return strconv.FormatFloat(vv.Value, 'g', -1, 64), nil
	case runtime.Str:
		b, err := json.Marshal(vv.Value)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case *runtime.Array:
		raw := "[]"
		var err error
		for i, e := range vv.Elements {
			elemRaw, marshalErr := marshalValue(e)
			if marshalErr != nil {
				return "", marshalErr
			}
			raw, err = sjson.SetRaw(raw, strconv.Itoa(i), elemRaw)
			if err != nil {
				return "", err
			}
		}
		return raw, nil
	case *runtime.Object:
		raw := "{}"
		var err error
		for _, f := range vv.Fields {
			elemRaw, marshalErr := marshalValue(f.Value)
			if marshalErr != nil {
				return "", marshalErr
			}
			raw, err = sjson.SetRaw(raw, f.Key, elemRaw)
			if err != nil {
				return "", err
			}
		}
		return raw, nil
	default:
		return "", fmt.Errorf("toJson() cannot serialize a %s", v.Kind())
	}
}
