package types

import "testing"

func TestReflexiveAndTransitive(t *testing.T) {
	ts := []Type{Null, Bool, Int, Num, Str, Any, TypeT,
		Array{Elem: Int}, Object{Fields: []Field{{Name: "x", Type: Num, Required: true}}},
		Arrow{Param: Int, Result: Str}, Optional{Base: Int},
		Enum{Base: Str, Values: []any{"a", "b"}},
	}
	for _, ty := range ts {
		if !IsSubtype(ty, ty) {
			t.Errorf("%s is not reflexively a subtype of itself", ty)
		}
	}

	// transitivity smoke test along a known chain
	a := Enum{Base: Str, Values: []any{"a"}}
	b := Str
	c := Any
	if !(IsSubtype(a, b) && IsSubtype(b, c) && IsSubtype(a, c)) {
		t.Fatal("transitivity failed along Enum <= Str <= Any")
	}
}

func TestPrimitiveRules(t *testing.T) {
	if !IsSubtype(Int, Num) {
		t.Error("Int should be <= Num")
	}
	if IsSubtype(Num, Int) {
		t.Error("Num should not be <= Int")
	}
	if !IsSubtype(Null, Any) || !IsSubtype(Bool, Any) {
		t.Error("everything should be <= Any")
	}
}

func TestArraySubtyping(t *testing.T) {
	if !IsSubtype(Array{Elem: Int}, Array{Elem: Num}) {
		t.Error("[Int] should be <= [Num]")
	}
	if IsSubtype(Array{Elem: Num}, Array{Elem: Int}) {
		t.Error("[Num] should not be <= [Int]")
	}
	if !IsSubtype(Array{Elem: Int}, ArrayAny) {
		t.Error("[Int] should be <= [Any] (Array top type)")
	}
}

func TestObjectSubtyping(t *testing.T) {
	// {name: Str} <= {}  (spec.md §8 scenario 6)
	withName := Object{Fields: []Field{{Name: "name", Type: Str, Required: false}}}
	empty := Object{}
	if !IsSubtype(withName, empty) {
		t.Error("{name: Str} should be <= {}")
	}
	// {} !<= {name!: Str}
	requiresName := Object{Fields: []Field{{Name: "name", Type: Str, Required: true}}}
	if IsSubtype(empty, requiresName) {
		t.Error("{} should not be <= {name!: Str}")
	}
	// subtype may supply extra fields
	point3D := Object{Fields: []Field{
		{Name: "x", Type: Num, Required: true},
		{Name: "y", Type: Num, Required: true},
		{Name: "z", Type: Num, Required: true},
	}}
	point2D := Object{Fields: []Field{
		{Name: "x", Type: Num, Required: true},
		{Name: "y", Type: Num, Required: true},
	}}
	if !IsSubtype(point3D, point2D) {
		t.Error("a 3D point should be <= a 2D point shape")
	}
	if IsSubtype(point2D, point3D) {
		t.Error("a 2D point should not be <= a 3D point shape")
	}
	// required cannot be demoted to optional on the subtype side
	optionalName := Object{Fields: []Field{{Name: "name", Type: Str, Required: false}}}
	if IsSubtype(optionalName, requiresName) {
		t.Error("optional field should not satisfy a required field requirement")
	}
}

func TestArrowSubtyping(t *testing.T) {
	// (Num -> Int) <= (Int -> Num): contravariant param, covariant result
	a := Arrow{Param: Num, Result: Int}
	b := Arrow{Param: Int, Result: Num}
	if !IsSubtype(a, b) {
		t.Error("(Num -> Int) should be <= (Int -> Num)")
	}
	if IsSubtype(b, a) {
		t.Error("(Int -> Num) should not be <= (Num -> Int)")
	}
	if !IsSubtype(a, Fun) {
		t.Error("any arrow should be <= Fun")
	}
}

func TestOptionalSubtyping(t *testing.T) {
	if !IsSubtype(Null, Optional{Base: Int}) {
		t.Error("Null should be <= Int?")
	}
	if !IsSubtype(Int, Optional{Base: Int}) {
		t.Error("Int should be <= Int?")
	}
	if !IsSubtype(Optional{Base: Int}, Optional{Base: Num}) {
		t.Error("Int? should be <= Num?")
	}
}

func TestEnumSubtyping(t *testing.T) {
	e1 := Enum{Base: Str, Values: []any{"a", "b"}}
	e2 := Enum{Base: Str, Values: []any{"a", "b", "c"}}
	if !IsSubtype(e1, e2) {
		t.Error("subset enum should be <= superset enum")
	}
	if IsSubtype(e2, e1) {
		t.Error("superset enum should not be <= subset enum")
	}
	if !IsSubtype(e1, Str) {
		t.Error("Enum(Str, ...) should be <= Str")
	}
}
