package types

import (
	"slices"
	"sort"
	"strings"

	"github.com/xtgo/set"
)

// Scheme is a type universally quantified over a set of variable names,
// expressing polymorphism: a Scheme stored in an environment can be
// instantiated to a distinct copy of its body at every use site.
type Scheme struct {
	bound []string // sorted, no duplicates
	body  Type
}

func NewScheme(bound VarSet, body Type) *Scheme {
	return &Scheme{bound: bound.Sorted(), body: body}
}

// MonoScheme wraps t with nothing quantified, for monomorphic bindings such
// as lambda parameters.
func MonoScheme(t Type) *Scheme {
	return &Scheme{body: t}
}

func (s *Scheme) Body() Type { return s.body }

// BoundVars returns the quantified variable names, sorted.
func (s *Scheme) BoundVars() []string { return slices.Clone(s.bound) }

func (s *Scheme) Clone() *Scheme {
	return &Scheme{bound: slices.Clone(s.bound), body: s.body}
}

// FreeTypeVar reports the variables free in the body and not quantified.
func (s *Scheme) FreeTypeVar() VarSet {
	free := s.body.FreeTypeVar().Clone()
	free.Remove(s.bound...)
	return free
}

// Apply substitutes into the body while leaving quantified variables alone:
// mappings for bound names are deleted from sub before it is applied, so a
// surrounding substitution can never capture them.
func (s *Scheme) Apply(sub Subs) *Scheme {
	reduced := sub.Clone()
	for _, name := range s.bound {
		delete(reduced, name)
	}
	return &Scheme{bound: slices.Clone(s.bound), body: s.body.Apply(reduced)}
}

// Instantiate specialises the scheme by substituting one fresh variable for
// every quantified name, simultaneously. Each call yields variables disjoint
// from every previous call on the same Fresher.
func (s *Scheme) Instantiate(fresher *Fresher) Type {
	fresh := make(Subs, len(s.bound))
	for _, name := range s.bound {
		fresh[name] = fresher.Fresh()
	}
	return s.body.Apply(fresh)
}

func (s *Scheme) String() string {
	if len(s.bound) == 0 {
		return s.body.String()
	}
	return "∀" + strings.Join(s.bound, " ") + ". " + s.body.String()
}

// Generalize quantifies the variables free in t but not free anywhere in
// env. This is the let-polymorphism boundary: only variables the environment
// does not constrain are safe to make universal.
func Generalize(t Type, env *TypeEnv) *Scheme {
	free := t.FreeTypeVar().Sorted()
	pivot := len(free)
	joined := append(free, env.FreeTypeVar().Sorted()...)
	n := set.Diff(sort.StringSlice(joined), pivot)
	return &Scheme{bound: joined[:n], body: t}
}
