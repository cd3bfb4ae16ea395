package clock

type boundKind int

const (
	finiteBound boundKind = iota
	negInfBound
	posInfBound
)

// Bound is one side of an era: a finite time, or an infinity.
// Bounds are totally ordered with -∞ below every finite bound and +∞
// above every finite bound.
//
// The zero value is the finite bound at the time origin.
type Bound struct {
	kind boundKind
	t    Time
}

// NegInf returns the bound below every finite bound.
func NegInf() Bound {
	return Bound{kind: negInfBound}
}

// PosInf returns the bound above every finite bound.
func PosInf() Bound {
	return Bound{kind: posInfBound}
}

// Finite returns the bound at time t.
func Finite(t Time) Bound {
	return Bound{kind: finiteBound, t: t}
}

// IsFinite reports whether b is a finite bound.
func (b Bound) IsFinite() bool {
	return b.kind == finiteBound
}

// Time returns the time of a finite bound. The second return value is
// false when b is infinite.
func (b Bound) Time() (Time, bool) {
	if b.kind != finiteBound {
		return Time{}, false
	}
	return b.t, true
}

// Cmp compares two bounds, returning -1, 0 or +1.
func (b Bound) Cmp(o Bound) int {
	switch {
	case b.kind == o.kind:
		if b.kind == finiteBound {
			return b.t.Cmp(o.t)
		}
		return 0
	case b.kind == negInfBound || o.kind == posInfBound:
		return -1
	default:
		return 1
	}
}

// Equal reports whether two bounds are the same.
func (b Bound) Equal(o Bound) bool {
	return b.Cmp(o) == 0
}

// Shift translates a finite bound by d. Infinite bounds are unchanged.
func (b Bound) Shift(d Duration) Bound {
	if b.kind != finiteBound {
		return b
	}
	return Finite(b.t.Add(d))
}

// MinBound returns the lower of a and b.
func MinBound(a, b Bound) Bound {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// MaxBound returns the higher of a and b.
func MaxBound(a, b Bound) Bound {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func (b Bound) String() string {
	switch b.kind {
	case negInfBound:
		return "-∞"
	case posInfBound:
		return "+∞"
	default:
		return b.t.String()
	}
}
