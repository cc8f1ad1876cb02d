package types

import (
	"strconv"
	"sync/atomic"
)

// Fresher allocates fresh type variables. Names it returns never repeat, so
// every unknown introduced through the same Fresher stays distinct for the
// lifetime of an inference run.
//
// The counter is atomic, but independent runs should still each get their own
// Fresher (or distinct namespaces) so their variable names cannot collide.
type Fresher struct {
	count     atomic.Uint64
	namespace string
}

func NewFresher() *Fresher {
	return &Fresher{namespace: "t"}
}

// NewNamespacedFresher partitions the generated names under prefix, for hosts
// running several independent inferences over shared type trees.
func NewNamespacedFresher(prefix string) *Fresher {
	return &Fresher{namespace: prefix}
}

func (f *Fresher) Fresh() *Variable {
	n := f.count.Add(1) - 1
	return &Variable{Name: f.namespace + strconv.FormatUint(n, 10)}
}
