package stub_test

import (
	"testing"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
	"github.com/mindscript-lang/mindscript/internal/oracle/stub"
	"github.com/mindscript-lang/mindscript/internal/types"
)

func TestResolveMatchesExample(t *testing.T) {
	a := stub.New()
	req := runtime.OracleRequest{
		ID:         "1",
		ReturnType: types.Str,
		Arg:        runtime.Int{Value: 2},
		Examples: []runtime.Example{
			{Arg: runtime.Int{Value: 1}, Result: runtime.Str{Value: "one"}},
			{Arg: runtime.Int{Value: 2}, Result: runtime.Str{Value: "two"}},
		},
	}
	resp, err := a.Resolve(req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	s, ok := resp.Value.(runtime.Str)
	if !ok || s.Value != "two" {
		t.Fatalf("expected Str %q, got %s", "two", resp.Value.String())
	}
}

func TestResolveFallsBackToZeroValue(t *testing.T) {
	a := stub.New()
	resp, err := a.Resolve(runtime.OracleRequest{
		ID:         "2",
		ReturnType: types.Int,
		Arg:        runtime.Str{Value: "unmatched"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	i, ok := resp.Value.(runtime.Int)
	if !ok || i.Value != 0 {
		t.Fatalf("expected Int 0, got %s", resp.Value.String())
	}
}

func TestResolveStrictRejectsUnmatchedCall(t *testing.T) {
	a := &stub.Adapter{Strict: true}
	_, err := a.Resolve(runtime.OracleRequest{
		ID:         "3",
		ReturnType: types.Int,
		Arg:        runtime.Str{Value: "unmatched"},
	})
	if err == nil {
		t.Fatalf("expected an error for an unmatched call in strict mode")
	}
}

func TestResolveZeroValueForEnumType(t *testing.T) {
	a := stub.New()
	rt := types.Enum{Base: types.Str, Values: []any{"red", "green", "blue"}}
	resp, err := a.Resolve(runtime.OracleRequest{ID: "5", ReturnType: rt, Arg: runtime.NullValue})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	s, ok := resp.Value.(runtime.Str)
	if !ok || !rt.Contains(s.Value) {
		t.Fatalf("expected a value conforming to %s, got %s", rt.String(), resp.Value.String())
	}
}

func TestResolveZeroValueForObjectType(t *testing.T) {
	a := stub.New()
	rt := types.Object{Fields: []types.Field{
		{Name: "name", Type: types.Str, Required: true},
		{Name: "nickname", Type: types.Str, Required: false},
	}}
	resp, err := a.Resolve(runtime.OracleRequest{ID: "4", ReturnType: rt, Arg: runtime.NullValue})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	obj, ok := resp.Value.(*runtime.Object)
	if !ok {
		t.Fatalf("expected an object, got %T", resp.Value)
	}
	if _, ok := obj.Get("name"); !ok {
		t.Fatalf("expected required field %q to be present", "name")
	}
	if _, ok := obj.Get("nickname"); ok {
		t.Fatalf("expected optional field %q to be absent", "nickname")
	}
}
