/*
Package shift provides the capability of translating timed structures by
a duration. Every timed type in this module implements Shifter for
itself; the helpers here extend the capability to containers of timed
values.

Shifting is a group action: shifting by zero changes nothing, and two
shifts compose into a shift by the sum of their durations.
*/
package shift

import (
	"github.com/andreasabel/active/clock"
)

// Shifter is implemented by any structure that can be translated by a
// duration while preserving its internal relative structure.
type Shifter[T any] interface {
	Shift(d clock.Duration) T
}

// By translates v by d.
func By[T Shifter[T]](v T, d clock.Duration) T {
	return v.Shift(d)
}

// Option translates an optional value. A nil pointer stays nil; a
// present value is shifted into a newly allocated pointer, leaving the
// original untouched.
func Option[T Shifter[T]](v *T, d clock.Duration) *T {
	if v == nil {
		return nil
	}
	s := (*v).Shift(d)
	return &s
}

// Pair is a pair of shiftable values sharing one timeline.
type Pair[A Shifter[A], B Shifter[B]] struct {
	First  A
	Second B
}

// Shift translates both halves of the pair by d.
func (p Pair[A, B]) Shift(d clock.Duration) Pair[A, B] {
	return Pair[A, B]{
		First:  p.First.Shift(d),
		Second: p.Second.Shift(d),
	}
}

// Func translates a function of time by d: the result samples f at t-d,
// so a feature of f at time t appears in the result at time t+d. A nil
// function stays nil.
func Func[V any](f func(clock.Time) V, d clock.Duration) func(clock.Time) V {
	if f == nil {
		return nil
	}
	back := d.Neg()
	return func(t clock.Time) V {
		return f(t.Add(back))
	}
}

// Times translates every time value of a map by d, returning a new map.
// A nil map stays nil.
func Times[K comparable](m map[K]clock.Time, d clock.Duration) map[K]clock.Time {
	if m == nil {
		return nil
	}
	out := make(map[K]clock.Time, len(m))
	for k, t := range m {
		out[k] = t.Add(d)
	}
	return out
}
