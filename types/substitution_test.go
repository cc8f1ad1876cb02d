package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Applying a composed substitution must equal applying the earlier one, then
// the later one, for every expression shape.
func TestComposeEqualsSequentialApplication(t *testing.T) {
	earlier := Subs{"a": va("b"), "c": intConst}
	later := Subs{"b": boolConst}
	composed := later.Compose(earlier)

	for _, expr := range []Type{
		va("a"),
		va("b"),
		va("unrelated"),
		intConst,
		&Function{Arg: va("a"), Ret: va("c")},
		seq(va("a"), va("b"), va("c")),
		&Function{Arg: seq(va("a")), Ret: &Function{Arg: va("b"), Ret: va("c")}},
	} {
		assert.Equal(t, expr.Apply(earlier).Apply(later), expr.Apply(composed), "for %v", expr)
	}
}

func TestComposeMapsEarlierImagesThroughLater(t *testing.T) {
	earlier := Subs{"a": va("b")}
	later := Subs{"b": intConst}
	assert.Equal(t, Subs{"a": intConst, "b": intConst}, later.Compose(earlier))
}

func TestComposeOverwritesSharedKeys(t *testing.T) {
	earlier := Subs{"a": boolConst}
	later := Subs{"a": intConst}
	// the earlier mapping wins: it is what an expression would have been
	// rewritten to first
	assert.Equal(t, Subs{"a": boolConst}, later.Compose(earlier))
}

func TestComposeLeavesOperandsUntouched(t *testing.T) {
	earlier := Subs{"a": va("b")}
	later := Subs{"b": intConst}
	_ = later.Compose(earlier)
	assert.Equal(t, Subs{"a": va("b")}, earlier)
	assert.Equal(t, Subs{"b": intConst}, later)
}

func TestSubsString(t *testing.T) {
	sub := Subs{"b": boolConst, "a": intConst}
	assert.Equal(t, "{'a => int, 'b => bool}", sub.String())
}
