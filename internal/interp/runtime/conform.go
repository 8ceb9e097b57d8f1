package runtime

import "github.com/mindscript-lang/mindscript/internal/types"

// TypeOf computes the structural type of a runtime value (spec.md §4.4).
// Arrays/Objects report the type of their current contents: an empty
// array types as [Any], a homogeneous array as [elemType], and a mixed
// array widens to [Any] (there is no union type in spec.md §3.4).
func TypeOf(v Value) types.Type {
	switch vv := Unannotate(v).(type) {
	case Null:
		return types.Null
	case Bool:
		return types.Bool
	case Int:
		return types.Int
	case Num:
		return types.Num
	case Str:
		return types.Str
	case *Array:
		return arrayType(vv)
	case *Object:
		return objectType(vv)
	case *Function:
		return functionType(vv)
	case *Builtin:
		return types.Fun
	case *Oracle:
		return functionTypeFromOracle(vv)
	case *TypeValue:
		return types.TypeT
	}
	return types.Any
}

func arrayType(a *Array) types.Type {
	if len(a.Elements) == 0 {
		return types.ArrayAny
	}
	elem := TypeOf(a.Elements[0])
	for _, e := range a.Elements[1:] {
		t := TypeOf(e)
		if !types.IsSubtype(t, elem) {
			if types.IsSubtype(elem, t) {
				elem = t
				continue
			}
			return types.ArrayAny
		}
	}
	return types.Array{Elem: elem}
}

func objectType(o *Object) types.Type {
	fields := make([]types.Field, len(o.Fields))
	for i, f := range o.Fields {
		fields[i] = types.Field{Name: f.Key, Type: TypeOf(f.Value), Required: true}
	}
	return types.Object{Fields: fields}
}

func functionType(f *Function) types.Type {
	param := f.ParamType
	if param == nil {
		param = types.Any
	}
	result := f.ReturnType
	if result == nil {
		result = types.Any
	}
	return types.Arrow{Param: param, Result: result}
}

func functionTypeFromOracle(o *Oracle) types.Type {
	param := o.ParamType
	if param == nil {
		param = types.Any
	}
	result := o.ReturnType
	if result == nil {
		result = types.Any
	}
	return types.Arrow{Param: param, Result: result}
}

// Conforms decides whether v may be used where a value of type t is
// expected (spec.md §4.4): typeOf(v) <= t, except that a declared Enum
// type additionally needs the concrete literal to be a member, not just
// its base type to be a subtype.
func Conforms(v Value, t types.Type) bool {
	if enum, ok := t.(types.Enum); ok {
		lit, ok := literalOf(v)
		if !ok {
			return false
		}
		return enum.Contains(lit)
	}
	return types.IsSubtype(TypeOf(v), t)
}

// literalOf extracts the comparable Go value backing a primitive runtime
// value, for enum membership tests (types.Enum.Values stores these same
// comparable forms, see internal/types.FromExpr).
func literalOf(v Value) (any, bool) {
	switch vv := Unannotate(v).(type) {
	case Null:
		return nil, true
	case Bool:
		return vv.Value, true
	case Int:
		return vv.Value, true
	case Num:
		return vv.Value, true
	case Str:
		return vv.Value, true
	}
	return nil, false
}
