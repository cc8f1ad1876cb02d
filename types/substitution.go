package types

import (
	"maps"
	"slices"
	"strings"
)

// Subs is a finite mapping from type-variable names to type expressions.
// The nil map is a valid empty substitution for reading, but callers that
// insert must start from Subs{}.
type Subs map[string]Type

func (s Subs) Clone() Subs {
	cloned := make(Subs, len(s))
	maps.Copy(cloned, s)
	return cloned
}

// Compose merges two substitutions into one equivalent to applying earlier
// first and the receiver second: the result starts as a copy of the
// receiver, then every mapping of earlier is inserted with the receiver
// applied to its image, overwriting on shared keys.
//
// Composition is not commutative when the two bind overlapping variables;
// callers must keep the receiver as the later substitution.
func (s Subs) Compose(earlier Subs) Subs {
	composed := s.Clone()
	for name, t := range earlier {
		composed[name] = t.Apply(s)
	}
	return composed
}

func (s Subs) String() string {
	sb := &strings.Builder{}
	sb.WriteString("{")
	for i, name := range slices.Sorted(maps.Keys(s)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("'" + name + " => " + s[name].String())
	}
	sb.WriteString("}")
	return sb.String()
}
