package builtins

import (
	"fmt"
	"strings"

	"github.com/mindscript-lang/mindscript/internal/interp/runtime"
)

// stringify implements str()'s deep rendering (spec.md §4.6): containers
// recurse into their elements/fields, and a value carrying an annotation
// is rendered as a leading `# "text"` comment line above its own
// stringification. topLevel allows the comment line only at recursion
// depth 0, matching the teacher's str()-for-display convention of not
// interleaving comments inside a single composite literal's fields.
func stringify(v runtime.Value, topLevel bool, seen map[any]bool) string {
	text, hasAnnotation := runtime.AnnotationOf(v)
	inner := runtime.Unannotate(v)

	var body string
	switch vv := inner.(type) {
	case *runtime.Array:
		body = stringifyArray(vv, seen)
	case *runtime.Object:
		body = stringifyObject(vv, seen)
	case runtime.Str:
		if topLevel {
			body = vv.Value
		} else {
			body = fmt.Sprintf("%q", vv.Value)
		}
	default:
		body = inner.String()
	}

	if hasAnnotation && topLevel {
		return fmt.Sprintf("# %q\n%s", text, body)
	}
	return body
}

func stringifyArray(a *runtime.Array, seen map[any]bool) string {
	if seen[a] {
		return "[...]"
	}
	seen[a] = true
	defer delete(seen, a)

	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = stringify(e, false, seen)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func stringifyObject(o *runtime.Object, seen map[any]bool) string {
	if seen[o] {
		return "{...}"
	}
	seen[o] = true
	defer delete(seen, o)

	parts := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Key, stringify(f.Value, false, seen))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
