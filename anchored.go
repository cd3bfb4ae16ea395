package active

import (
	"github.com/pkg/errors"

	"github.com/andreasabel/active/clock"
	"github.com/andreasabel/active/shift"
)

// Anchored is a time-varying value made translation invariant: alongside
// the value it tracks a small set of named reference instants and a kind
// for each endpoint. Anchors let two values agree on how to line up;
// endpoint kinds decide which compositions are legal and which operand
// owns the instant where two values touch.
//
// Anchored values are immutable. The zero value is the identity element
// for Append: an empty era with no anchors. It has no valid instant, so
// sampling it is never observable.
type Anchored[T any] struct {
	value   Value[T]
	anchors map[Anchor]clock.Time
	left    Kind
	right   Kind
}

// Empty returns the identity element for Append.
func Empty[T any]() Anchored[T] {
	return Anchored[T]{}
}

// anchorsFor defaults the anchor map from the finite bounds of an era:
// the start anchor at a finite start, the end anchor at a finite end.
func anchorsFor(e clock.Era) map[Anchor]clock.Time {
	var m map[Anchor]clock.Time
	set := func(a Anchor, b clock.Bound) {
		t, ok := b.Time()
		if !ok {
			return
		}
		if m == nil {
			m = make(map[Anchor]clock.Time, 2)
		}
		m[a] = t
	}
	if b, ok := e.Start(); ok {
		set(Start, b)
	}
	if b, ok := e.End(); ok {
		set(End, b)
	}
	return m
}

// FloatLeft wraps a value, marking its left endpoint open and leaving
// the right endpoint its natural kind. Anchors default to the era's
// finite bounds. An infinite left bound keeps its infinite kind; open is
// definitionally finite.
func FloatLeft[T any](v Value[T]) Anchored[T] {
	e := v.Era()
	a := Anchored[T]{value: v, anchors: anchorsFor(e)}
	if b, ok := e.Start(); ok {
		a.left = floatKind(b)
	}
	if b, ok := e.End(); ok {
		a.right = sideKind(b)
	}
	return a
}

// FloatRight wraps a value, marking its right endpoint open and leaving
// the left endpoint its natural kind.
func FloatRight[T any](v Value[T]) Anchored[T] {
	e := v.Era()
	a := Anchored[T]{value: v, anchors: anchorsFor(e)}
	if b, ok := e.Start(); ok {
		a.left = sideKind(b)
	}
	if b, ok := e.End(); ok {
		a.right = floatKind(b)
	}
	return a
}

// Float wraps a value, marking both finite endpoints open.
func Float[T any](v Value[T]) Anchored[T] {
	e := v.Era()
	a := Anchored[T]{value: v, anchors: anchorsFor(e)}
	if b, ok := e.Start(); ok {
		a.left = floatKind(b)
	}
	if b, ok := e.End(); ok {
		a.right = floatKind(b)
	}
	return a
}

// Value returns the underlying time-varying value.
func (a Anchored[T]) Value() Value[T] {
	return a.value
}

// Era returns the span over which a is defined.
func (a Anchored[T]) Era() clock.Era {
	return a.value.era
}

// Sample evaluates a at time t.
func (a Anchored[T]) Sample(t clock.Time) T {
	return a.value.at(t)
}

// Endpoint returns the kind of the given endpoint.
func (a Anchored[T]) Endpoint(s Side) Kind {
	if s == Left {
		return a.left
	}
	return a.right
}

// Anchors returns a copy of the anchor map.
func (a Anchored[T]) Anchors() map[Anchor]clock.Time {
	if a.anchors == nil {
		return nil
	}
	m := make(map[Anchor]clock.Time, len(a.anchors))
	for k, t := range a.anchors {
		m[k] = t
	}
	return m
}

// AnchorTime returns the time of a named anchor, if present.
func (a Anchored[T]) AnchorTime(k Anchor) (clock.Time, bool) {
	t, ok := a.anchors[k]
	return t, ok
}

// WithAnchor returns a copy of a with the named anchor set to t,
// replacing any previous value. It is the only way to place a Fixed
// anchor.
func (a Anchored[T]) WithAnchor(k Anchor, t clock.Time) Anchored[T] {
	m := make(map[Anchor]clock.Time, len(a.anchors)+1)
	for key, v := range a.anchors {
		m[key] = v
	}
	m[k] = t
	out := a
	out.anchors = m
	return out
}

// Shift translates a by d: the underlying value and every anchor move
// together. Endpoint kinds are unaffected.
func (a Anchored[T]) Shift(d clock.Duration) Anchored[T] {
	return Anchored[T]{
		value:   a.value.Shift(d),
		anchors: shift.Times(a.anchors, d),
		left:    a.left,
		right:   a.right,
	}
}

func sideBound(e clock.Era, s Side) (clock.Bound, bool) {
	if s == Left {
		return e.Start()
	}
	return e.End()
}

// Seal fixes the sample exactly at the finite bound of an open endpoint
// and marks the endpoint closed. Sealing an endpoint that is not open
// fails with ErrNotOpen; an endpoint without a finite bound fails with
// ErrNotFinite, though such an endpoint cannot be open through the
// documented constructors.
func (a Anchored[T]) Seal(s Side, v T) (Anchored[T], error) {
	b, ok := sideBound(a.value.era, s)
	if !ok || !b.IsFinite() {
		return Anchored[T]{}, errors.Wrapf(ErrNotFinite, "seal %v endpoint", s)
	}
	if k := a.Endpoint(s); k != Open {
		return Anchored[T]{}, errors.Wrapf(ErrNotOpen, "seal %v endpoint of kind %v", s, k)
	}
	at := a.value.at
	bt, _ := b.Time()
	out := a
	out.value.at = func(t clock.Time) T {
		if t.Equal(bt) {
			return v
		}
		return at(t)
	}
	if s == Left {
		out.left = Closed
	} else {
		out.right = Closed
	}
	return out, nil
}

// Append concatenates two anchored values end to start. The right
// operand is shifted so that its start anchor lands exactly on the left
// operand's end anchor, and the sample at that junction instant is owned
// by whichever operand's endpoint is closed there:
//
//	closed left: at or before the junction samples left, after samples right
//	closed right: before the junction samples left, at or after samples right
//
// The junction must pair one open endpoint with one closed one, and both
// junction anchors must be present; otherwise Append fails. The empty
// anchored value is a two-sided identity.
//
// Anchors of the result are the union of both operands', the right
// operand's taken after shifting. Where both define the same anchor, the
// start anchor keeps the left's value, the end anchor the right's, and a
// fixed anchor the left's.
func Append[T any](left, right Anchored[T]) (Anchored[T], error) {
	if left.value.era.IsEmpty() {
		return right, nil
	}
	if right.value.era.IsEmpty() {
		return left, nil
	}

	junction, ok := left.anchors[End]
	if !ok {
		return Anchored[T]{}, errors.Wrap(ErrMissingAnchor, "append: left operand has no end anchor")
	}
	s2, ok := right.anchors[Start]
	if !ok {
		return Anchored[T]{}, errors.Wrap(ErrMissingAnchor, "append: right operand has no start anchor")
	}
	shifted := right.Shift(junction.Sub(s2))

	owner, err := seamOwner(left.right, shifted.left)
	if err != nil {
		return Anchored[T]{}, err
	}
	lat, rat := left.value.at, shifted.value.at
	var at func(clock.Time) T
	if owner == Left {
		at = func(t clock.Time) T {
			if t.Cmp(junction) <= 0 {
				return lat(t)
			}
			return rat(t)
		}
	} else {
		at = func(t clock.Time) T {
			if t.Cmp(junction) < 0 {
				return lat(t)
			}
			return rat(t)
		}
	}

	start, _ := left.value.era.Start()
	end, _ := shifted.value.era.End()

	anchors := make(map[Anchor]clock.Time, len(left.anchors)+len(shifted.anchors))
	for k, t := range shifted.anchors {
		anchors[k] = t
	}
	for k, t := range left.anchors {
		anchors[k] = t
	}
	if t, ok := shifted.anchors[End]; ok {
		anchors[End] = t
	}

	return Anchored[T]{
		value:   Value[T]{era: clock.Make(start, end), at: at},
		anchors: anchors,
		left:    left.left,
		right:   shifted.right,
	}, nil
}

// Movie folds Append over a sequence of parts, starting from the
// identity element.
func Movie[T any](parts ...Anchored[T]) (Anchored[T], error) {
	out := Empty[T]()
	for i, p := range parts {
		var err error
		out, err = Append(out, p)
		if err != nil {
			return Anchored[T]{}, errors.Wrapf(err, "movie part %d", i)
		}
	}
	return out, nil
}
