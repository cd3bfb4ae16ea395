/*
Package active implements an algebra of time-varying values: quantities
defined over a bounded or unbounded span of time, combinable in parallel,
by overlapping their spans and merging samples pointwise, and in
sequence, by concatenating one span after another and resolving which
operand owns the instant where they touch.

Values are built from eras and sampling functions, combined with Map,
Apply and Parallel, wrapped as Anchored values for translation
invariance, sealed at their open endpoints and concatenated with Append.
Every structure is an immutable value; composition produces new values
and never mutates its operands.
*/
package active

import (
	"github.com/pkg/errors"

	"github.com/andreasabel/active/clock"
	"github.com/andreasabel/active/shift"
)

// Value is a time-varying value: an era paired with a total sampling
// function. The function may be queried at any time, but the result is
// only meaningful when the queried time lies within the era; outside it
// the sample is unspecified.
type Value[T any] struct {
	era clock.Era
	at  func(clock.Time) T
}

// New builds a value from an era and a sampling function.
func New[T any](era clock.Era, at func(clock.Time) T) Value[T] {
	return Value[T]{era: era, at: at}
}

// Constant returns the value that samples to v at every instant, over
// the full era.
func Constant[T any](v T) Value[T] {
	return Value[T]{
		era: clock.Full(),
		at:  func(clock.Time) T { return v },
	}
}

// Era returns the span over which v is defined.
func (v Value[T]) Era() clock.Era {
	return v.era
}

// Sample evaluates v at time t.
func (v Value[T]) Sample(t clock.Time) T {
	return v.at(t)
}

// Shift translates v by d: the shifted value samples at time t what v
// samples at t-d.
func (v Value[T]) Shift(d clock.Duration) Value[T] {
	return Value[T]{
		era: v.era.Shift(d),
		at:  shift.Func(v.at, d),
	}
}

// Map applies f to every sample of v. The era is unchanged.
func Map[A, B any](v Value[A], f func(A) B) Value[B] {
	at := v.at
	return Value[B]{
		era: v.era,
		at:  func(t clock.Time) B { return f(at(t)) },
	}
}

// Apply applies a time-varying function to a time-varying argument at
// the same instant. The result is defined over the intersection of the
// two eras.
func Apply[A, B any](fn Value[func(A) B], arg Value[A]) Value[B] {
	fat, aat := fn.at, arg.at
	return Value[B]{
		era: fn.era.Intersect(arg.era),
		at:  func(t clock.Time) B { return fat(t)(aat(t)) },
	}
}

// Parallel merges two values pointwise over the intersection of their
// eras. Parallel is associative and commutative whenever merge is, and
// Constant of the merge identity is its identity element.
func Parallel[T any](a, b Value[T], merge func(T, T) T) Value[T] {
	aat, bat := a.at, b.at
	return Value[T]{
		era: a.era.Intersect(b.era),
		at:  func(t clock.Time) T { return merge(aat(t), bat(t)) },
	}
}

// Stretch scales v about the time origin by the factor num/den: a sample
// that v takes at time t, the result takes at t scaled by num/den.
// Infinite bounds stay infinite. Both num and den must be positive.
func (v Value[T]) Stretch(num, den int64) (Value[T], error) {
	if num <= 0 || den <= 0 {
		return Value[T]{}, errors.Wrapf(ErrBadStretch, "got %d/%d", num, den)
	}
	if v.era.IsEmpty() {
		return v, nil
	}
	start, _ := v.era.Start()
	end, _ := v.era.End()
	at := v.at
	return Value[T]{
		// A positive factor preserves the bound order.
		era: clock.Make(scaleBound(start, num, den), scaleBound(end, num, den)),
		at: func(t clock.Time) T {
			return at(t.Scale(den, num))
		},
	}, nil
}

func scaleBound(b clock.Bound, num, den int64) clock.Bound {
	if t, ok := b.Time(); ok {
		return clock.Finite(t.Scale(num, den))
	}
	return b
}

// Backwards reverses a finite value end to start within its own era: the
// result at the era's start samples v at its end, and vice versa.
func (v Value[T]) Backwards() (Value[T], error) {
	width, ok := v.era.Duration()
	if !ok {
		return Value[T]{}, errors.Wrap(ErrEraNotFinite, "backwards")
	}
	b, _ := v.era.Start()
	start, _ := b.Time()
	end := start.Add(width)
	at := v.at
	return Value[T]{
		era: v.era,
		at: func(t clock.Time) T {
			return at(end.Add(t.Sub(start).Neg()))
		},
	}, nil
}

// Snapshot freezes the sample of v at time t as a constant over the full
// era.
func (v Value[T]) Snapshot(t clock.Time) Value[T] {
	return Constant(v.Sample(t))
}

// AtTime translates v so that the finite start of its era lands on t.
// Values whose era has no finite start are returned unchanged.
func (v Value[T]) AtTime(t clock.Time) Value[T] {
	b, ok := v.era.Start()
	if !ok {
		return v
	}
	start, ok := b.Time()
	if !ok {
		return v
	}
	return v.Shift(t.Sub(start))
}

// Discrete builds a step function over the era [0, 1] from a non-empty
// slice: the unit span is divided evenly, and the i-th division samples
// to xs[i]. Outside the era the sample clamps to the nearest end.
func Discrete[T any](xs []T) (Value[T], error) {
	if len(xs) == 0 {
		return Value[T]{}, errors.Wrap(ErrNoValues, "discrete")
	}
	vals := make([]T, len(xs))
	copy(vals, xs)
	n := int64(len(vals))
	return Value[T]{
		era: clock.MakeFinite(clock.TimeFromInt(0), clock.TimeFromInt(1)),
		at: func(t clock.Time) T {
			i := t.Scale(n, 1).Floor()
			if i < 0 {
				i = 0
			}
			if i >= n {
				i = n - 1
			}
			return vals[i]
		},
	}, nil
}

// Simulate samples a finite value at a fixed rate per unit of time. The
// samples run from the era's start in steps of 1/rate and always include
// the era's end, so a value over a zero-width era yields one sample.
func (v Value[T]) Simulate(rate int64) ([]T, error) {
	ts, err := sampleTimes(v.era, rate)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(ts))
	for i, t := range ts {
		out[i] = v.at(t)
	}
	return out, nil
}

// sampleTimes lays a sampling grid over a finite era: every 1/rate units
// from the start, plus the end itself.
func sampleTimes(e clock.Era, rate int64) ([]clock.Time, error) {
	if rate <= 0 {
		return nil, errors.Wrapf(ErrBadRate, "got %d", rate)
	}
	if !e.IsFinite() {
		return nil, errors.Wrap(ErrEraNotFinite, "simulate")
	}
	sb, _ := e.Start()
	eb, _ := e.End()
	start, _ := sb.Time()
	end, _ := eb.Time()
	step := clock.DurationFromRat(1, rate)
	var ts []clock.Time
	for t := start; t.Before(end); t = t.Add(step) {
		ts = append(ts, t)
	}
	return append(ts, end), nil
}
