package clock

import (
	"bytes"
)

// Era is a span of time between two bounds. An era is either present,
// with start at or below end, or the distinguished empty era. The empty
// era has no bounds at all and absorbs intersection; it is not the same
// thing as a present era of zero width, which still has a start and an
// end.
//
// The zero value is the empty era.
type Era struct {
	present    bool
	start, end Bound
}

// Full returns the era spanning the whole timeline. It is the identity
// for Intersect.
func Full() Era {
	return Era{present: true, start: NegInf(), end: PosInf()}
}

// Empty returns the empty era, the absorbing element for Intersect.
func Empty() Era {
	return Era{}
}

// Make constructs the era between start and end. A reversed pair, with
// start above end, collapses to the empty era.
func Make(start, end Bound) Era {
	if start.Cmp(end) > 0 {
		return Empty()
	}
	return Era{present: true, start: start, end: end}
}

// MakeFinite constructs the era between two finite times.
func MakeFinite(start, end Time) Era {
	return Make(Finite(start), Finite(end))
}

// IsEmpty reports whether e is the empty era.
func (e Era) IsEmpty() bool {
	return !e.present
}

// Start returns the lower bound of e. The second return value is false
// when e is empty.
func (e Era) Start() (Bound, bool) {
	if !e.present {
		return Bound{}, false
	}
	return e.start, true
}

// End returns the upper bound of e. The second return value is false
// when e is empty.
func (e Era) End() (Bound, bool) {
	if !e.present {
		return Bound{}, false
	}
	return e.end, true
}

// Intersect returns the era covered by both e and o. The empty era
// absorbs; Full is the identity. Intersect is associative and
// commutative.
func (e Era) Intersect(o Era) Era {
	if !e.present || !o.present {
		return Empty()
	}
	return Make(MaxBound(e.start, o.start), MinBound(e.end, o.end))
}

// Hull returns the smallest era containing both e and o.
func (e Era) Hull(o Era) Era {
	if !e.present {
		return o
	}
	if !o.present {
		return e
	}
	return Make(MinBound(e.start, o.start), MaxBound(e.end, o.end))
}

// Shift translates e by d. The empty era is unchanged.
func (e Era) Shift(d Duration) Era {
	if !e.present {
		return e
	}
	return Era{present: true, start: e.start.Shift(d), end: e.end.Shift(d)}
}

// Contains reports whether t lies within e, inclusive of both bounds.
func (e Era) Contains(t Time) bool {
	if !e.present {
		return false
	}
	f := Finite(t)
	return e.start.Cmp(f) <= 0 && e.end.Cmp(f) >= 0
}

// Overlaps reports whether e and o share at least one instant.
func (e Era) Overlaps(o Era) bool {
	return !e.Intersect(o).IsEmpty()
}

// IsFinite reports whether e is present with two finite bounds.
func (e Era) IsFinite() bool {
	return e.present && e.start.IsFinite() && e.end.IsFinite()
}

// Duration returns the width of a finite era. The second return value is
// false when e is empty or unbounded.
func (e Era) Duration() (Duration, bool) {
	if !e.IsFinite() {
		return Duration{}, false
	}
	s, _ := e.start.Time()
	t, _ := e.end.Time()
	return t.Sub(s), true
}

// Equal reports whether two eras cover the same span. All empty eras are
// equal.
func (e Era) Equal(o Era) bool {
	if !e.present || !o.present {
		return e.present == o.present
	}
	return e.start.Equal(o.start) && e.end.Equal(o.end)
}

func (e Era) String() string {
	if !e.present {
		return "∅"
	}
	var buf bytes.Buffer
	if e.start.IsFinite() {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('(')
	}
	buf.WriteString(e.start.String())
	buf.WriteString(", ")
	buf.WriteString(e.end.String())
	if e.end.IsFinite() {
		buf.WriteByte(']')
	} else {
		buf.WriteByte(')')
	}
	return buf.String()
}
