package runtime

// Annotated wraps a value with a string annotation produced by the `#`
// operator (spec.md §3.3, §4.3). It is transparent to every operation
// except explicit annotation inspection: Kind/arithmetic/comparison all
// see straight through it via Unannotate.
type Annotated struct {
	Inner Value
	Text  string
}

func (a *Annotated) Kind() Kind     { return a.Inner.Kind() }
func (a *Annotated) String() string { return a.Inner.String() }

// Annotate wraps v with text, replacing any existing annotation (a
// second `#` on the same value overrides rather than stacks).
func Annotate(v Value, text string) Value {
	return &Annotated{Inner: Unannotate(v), Text: text}
}

// Unannotate strips any Annotated wrapper, returning the underlying
// value. Safe to call on an unannotated value (returns it unchanged).
func Unannotate(v Value) Value {
	for {
		a, ok := v.(*Annotated)
		if !ok {
			return v
		}
		v = a.Inner
	}
}

// AnnotationOf reports the annotation text directly attached to v, if
// any (does not look through nested containers).
func AnnotationOf(v Value) (string, bool) {
	if a, ok := v.(*Annotated); ok {
		return a.Text, true
	}
	return "", false
}
