package builtins

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
)

// builtinImport reads spec as a file path, evaluates it in a fresh
// environment seeded from the root, and returns that environment's
// bindings as an object (spec.md §4.6, §6: "Import resolution is
// delegated to the host: given a string path, the host yields UTF-8
// source"). Stdlib os.ReadFile is the host-delegated file read itself —
// no pack repo wraps synchronous local file reads in a third-party
// library, that would just be indirection over the syscall.
func builtinImport(c runtime.Caller, v runtime.Value) (runtime.Value, error) {
	path, ok := runtime.Unannotate(v).(runtime.Str)
	if !ok {
		return nil, fmt.Errorf("import() expects a str path, got %s", v.Kind())
	}
	src, err := os.ReadFile(path.Value)
	if err != nil {
		return nil, fmt.Errorf("import(%q): %s", path.Value, err)
	}
	return runImport(c, string(src))
}

// httpClient bounds netImport's blocking fetch so a misbehaving or
// unreachable URL can't hang the single-threaded evaluator forever
// (spec.md §5: scheduling is cooperative-never-suspends outside the
// oracle adapter, and netImport's fetch is exactly such a blocking call
// out).
var httpClient = &http.Client{Timeout: 10 * time.Second}

// builtinNetImport is import's network-sourced twin: spec.md §4.6/§6
// give it "the same contract", source fetched from a URL instead of a
// local path.
func builtinNetImport(c runtime.Caller, v runtime.Value) (runtime.Value, error) {
	url, ok := runtime.Unannotate(v).(runtime.Str)
	if !ok {
		return nil, fmt.Errorf("netImport() expects a str url, got %s", v.Kind())
	}
	resp, err := httpClient.Get(url.Value)
	if err != nil {
		return nil, fmt.Errorf("netImport(%q): %s", url.Value, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("netImport(%q): http status %s", url.Value, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("netImport(%q): %s", url.Value, err)
	}
	return runImport(c, string(body))
}

func runImport(c runtime.Caller, source string) (runtime.Value, error) {
	_, env, err := c.EvalSource(source)
	if err != nil {
		return nil, err
	}
	return envToObject(env), nil
}

// envToObject renders an environment's bindings as an object with
// fields in name order, so two imports of the same source produce
// byte-identical str() output.
func envToObject(env *runtime.Environment) *runtime.Object {
	snap := env.Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Strings(names)
	fields := make([]runtime.Field, len(names))
	for i, k := range names {
		fields[i] = runtime.Field{Key: k, Value: snap[k]}
	}
	return runtime.NewObject(fields)
}
