package types

// IsSubtype decides the structural subtype relation a <= b (spec.md
// §3.4, §4.4). It is reflexive and transitive by construction of the
// per-kind rules below.
func IsSubtype(a, b Type) bool {
	if b.Kind() == KindAny {
		return true
	}
	// Fun and ArrayAny are the named top types for arrows and arrays
	// (spec.md §3.4): "any arrow" / "any [Any]" rather than a derived
	// consequence of contravariant/covariant arrow and array subtyping.
	if IsFun(b) {
		return a.Kind() == KindArrow
	}
	if IsArrayAny(b) {
		return a.Kind() == KindArray
	}

	switch bt := b.(type) {
	case Optional:
		if a.Kind() == KindNull {
			return true
		}
		if at, ok := a.(Optional); ok {
			return IsSubtype(at.Base, bt.Base)
		}
		return IsSubtype(a, bt.Base)
	case Enum:
		if at, ok := a.(Enum); ok {
			if !sameType(at.Base, bt.Base) {
				return false
			}
			return isSubsetOf(at.Values, bt.Values)
		}
		return false
	}

	switch at := a.(type) {
	case NullType:
		return b.Kind() == KindNull
	case IntType:
		return b.Kind() == KindInt || b.Kind() == KindNum
	case Enum:
		// Enum(T, S) <= T (and transitively to any supertype of T)
		return IsSubtype(at.Base, b)
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case BoolType, NumType, StrType, TypeType:
		return true
	case Array:
		bt := b.(Array)
		return IsSubtype(at.Elem, bt.Elem)
	case Object:
		return objectSubtype(at, b.(Object))
	case Arrow:
		bt := b.(Arrow)
		return IsSubtype(bt.Param, at.Param) && IsSubtype(at.Result, bt.Result)
	}

	return false
}

// objectSubtype implements spec.md §4.4's object rule: every required
// field of b must be present in a with a subtype (and a must also
// require it); every optional field of b present in a must likewise have
// a conforming type. Extra fields on a are allowed (covariant width
// subtyping restricted to required/optional demotion safety).
func objectSubtype(a, b Object) bool {
	for _, bf := range b.Fields {
		af, ok := a.Field(bf.Name)
		if !ok {
			if bf.Required {
				return false
			}
			continue
		}
		if bf.Required && !af.Required {
			return false
		}
		if !IsSubtype(af.Type, bf.Type) {
			return false
		}
	}
	return true
}

// sameType reports whether two type terms are structurally identical
// (mutual subtyping), used where the rules need exact base-type equality
// (e.g. comparing an Enum's base against another Enum's base) rather than
// a directional subtype check.
func sameType(a, b Type) bool {
	return IsSubtype(a, b) && IsSubtype(b, a)
}

func isSubsetOf(s1, s2 []any) bool {
	for _, v := range s1 {
		found := false
		for _, w := range s2 {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
