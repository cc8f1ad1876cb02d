package types

import (
	"iter"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// VarSet is a mutable set of type-variable names.
type VarSet struct {
	inner *set.Set[string]
}

func NewVarSet(names ...string) VarSet {
	return VarSet{inner: set.From(names)}
}

func (s VarSet) Add(names ...string) {
	s.inner.InsertSlice(names)
}

func (s VarSet) Remove(names ...string) {
	s.inner.RemoveSlice(names)
}

func (s VarSet) Contains(name string) bool {
	return s.inner.Contains(name)
}

func (s VarSet) Len() int { return s.inner.Size() }

// Union returns a new set with the elements of both s and other.
func (s VarSet) Union(other VarSet) VarSet {
	union := s.inner.Copy()
	union.InsertSet(other.inner)
	return VarSet{inner: union}
}

func (s VarSet) Clone() VarSet {
	return VarSet{inner: s.inner.Copy()}
}

func (s VarSet) All() iter.Seq[string] {
	return s.inner.Items()
}

// Sorted returns the names in lexicographic order, for deterministic
// iteration and for the sorted-slice set operations used by Generalize.
func (s VarSet) Sorted() []string {
	names := s.inner.Slice()
	slices.Sort(names)
	return names
}

func (s VarSet) String() string {
	return "{" + strings.Join(s.Sorted(), " ") + "}"
}
