package runtime

import "strings"

// Array is a mutable, reference-semantics sequence of values (spec.md
// §3.2). Two Identifiers bound to the same *Array observe each other's
// in-place mutations.
type Array struct {
	Elements []Value
}

func NewArray(elems []Value) *Array { return &Array{Elements: elems} }

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) String() string {
	var sb strings.Builder
	writeArray(&sb, a, map[any]bool{})
	return sb.String()
}

// Field is one `key: value` entry of an Object, insertion order preserved.
type Field struct {
	Key   string
	Value Value
}

// Object is a mutable, reference-semantics ordered map of string keys to
// values (spec.md §3.2).
type Object struct {
	Fields []Field
}

func NewObject(fields []Field) *Object { return &Object{Fields: fields} }

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) String() string {
	var sb strings.Builder
	writeObject(&sb, o, map[any]bool{})
	return sb.String()
}

// Get looks up a field by key.
func (o *Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set overwrites an existing field in place, or appends a new one,
// preserving insertion order for first-time keys.
func (o *Object) Set(key string, v Value) {
	for i, f := range o.Fields {
		if f.Key == key {
			o.Fields[i].Value = v
			return
		}
	}
	o.Fields = append(o.Fields, Field{Key: key, Value: v})
}

// writeArray/writeObject render composite values while guarding against
// reference cycles (spec.md §3.2 permits self-referential arrays/objects
// since they are ordinary mutable reference values); `seen` tracks the
// container pointers currently being rendered on the active call stack.
func writeArray(sb *strings.Builder, a *Array, seen map[any]bool) {
	if seen[a] {
		sb.WriteString("[...]")
		return
	}
	seen[a] = true
	defer delete(seen, a)

	sb.WriteByte('[')
	for i, e := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeValue(sb, e, seen)
	}
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, o *Object, seen map[any]bool) {
	if seen[o] {
		sb.WriteString("{...}")
		return
	}
	seen[o] = true
	defer delete(seen, o)

	sb.WriteByte('{')
	for i, f := range o.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key)
		sb.WriteString(": ")
		writeValue(sb, f.Value, seen)
	}
	sb.WriteByte('}')
}

func writeValue(sb *strings.Builder, v Value, seen map[any]bool) {
	switch vv := v.(type) {
	case *Array:
		writeArray(sb, vv, seen)
	case *Object:
		writeObject(sb, vv, seen)
	case Str:
		sb.WriteByte('"')
		sb.WriteString(vv.Value)
		sb.WriteByte('"')
	default:
		sb.WriteString(v.String())
	}
}

// Equal implements MindScript's deep structural `==` (spec.md §4.3):
// primitives compare by value, Int/Num compare numerically across kinds,
// Array/Object compare element-wise and are cycle-safe, Function/Oracle
// compare by reference identity, Type compares by subtype-equivalence.
func Equal(a, b Value) bool {
	return equal(Unannotate(a), Unannotate(b), map[[2]any]bool{})
}

func equal(a, b Value, seen map[[2]any]bool) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Int:
		switch bv := b.(type) {
		case Int:
			return av.Value == bv.Value
		case Num:
			return float64(av.Value) == bv.Value
		}
		return false
	case Num:
		switch bv := b.(type) {
		case Num:
			return av.Value == bv.Value
		case Int:
			return av.Value == float64(bv.Value)
		}
		return false
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		key := [2]any{av, bv}
		if seen[key] {
			return true
		}
		seen[key] = true
		for i := range av.Elements {
			if !equal(Unannotate(av.Elements[i]), Unannotate(bv.Elements[i]), seen) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		key := [2]any{av, bv}
		if seen[key] {
			return true
		}
		seen[key] = true
		for _, f := range av.Fields {
			other, ok := bv.Get(f.Key)
			if !ok || !equal(Unannotate(f.Value), Unannotate(other), seen) {
				return false
			}
		}
		return true
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *Builtin:
		bv, ok := b.(*Builtin)
		return ok && av == bv
	case *Oracle:
		bv, ok := b.(*Oracle)
		return ok && av == bv
	case *TypeValue:
		bv, ok := b.(*TypeValue)
		return ok && sameTypeValue(av, bv)
	}
	return false
}
