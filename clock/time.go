/*
Package clock provides the time coordinates for the active algebra: exact
rational instants and spans, extended bounds that may be infinite, and
eras built from two bounds.

Time is a purely logical, totally ordered coordinate. It has no relation
to a wall clock and no unit; callers decide what one unit of time means.
*/
package clock

import (
	"fmt"
	"math/big"
)

// Time is an instant on the logical timeline. Times are exact rationals,
// so repeated shifting and composition never drift.
//
// The zero value is the time origin.
type Time struct {
	r *big.Rat
}

// TimeFromInt returns the time n units from the origin.
func TimeFromInt(n int64) Time {
	return Time{r: new(big.Rat).SetInt64(n)}
}

// TimeFromFloat returns the time x units from the origin. The conversion
// is exact. It panics if x is NaN or an infinity.
func TimeFromFloat(x float64) Time {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		panic(fmt.Sprintf("clock: non-finite time %v", x))
	}
	return Time{r: r}
}

// TimeFromRat returns the time num/den units from the origin.
// It panics if den is zero.
func TimeFromRat(num, den int64) Time {
	return Time{r: big.NewRat(num, den)}
}

var zeroRat big.Rat

func (t Time) rat() *big.Rat {
	if t.r == nil {
		return &zeroRat
	}
	return t.r
}

// Add returns the time d after t.
func (t Time) Add(d Duration) Time {
	return Time{r: new(big.Rat).Add(t.rat(), d.rat())}
}

// Sub returns the duration from u to t, so that u.Add(t.Sub(u)) equals t.
func (t Time) Sub(u Time) Duration {
	return Duration{r: new(big.Rat).Sub(t.rat(), u.rat())}
}

// Shift is Add under the name every timed structure shares.
func (t Time) Shift(d Duration) Time {
	return t.Add(d)
}

// Scale returns the time num/den times as far from the origin as t.
// It panics if den is zero.
func (t Time) Scale(num, den int64) Time {
	return Time{r: new(big.Rat).Mul(t.rat(), big.NewRat(num, den))}
}

// Cmp compares two times, returning -1, 0 or +1.
func (t Time) Cmp(u Time) int {
	return t.rat().Cmp(u.rat())
}

func (t Time) Before(u Time) bool { return t.Cmp(u) < 0 }
func (t Time) After(u Time) bool  { return t.Cmp(u) > 0 }
func (t Time) Equal(u Time) bool  { return t.Cmp(u) == 0 }

// Floor returns the largest integer not greater than t.
func (t Time) Floor() int64 {
	r := t.rat()
	// big.Int.Div rounds toward negative infinity for positive divisors,
	// and a Rat denominator is always positive.
	return new(big.Int).Div(r.Num(), r.Denom()).Int64()
}

// Float64 returns the nearest float64 to t.
func (t Time) Float64() float64 {
	f, _ := t.rat().Float64()
	return f
}

// Rat returns a copy of the exact value of t.
func (t Time) Rat() *big.Rat {
	return new(big.Rat).Set(t.rat())
}

func (t Time) String() string {
	return t.rat().RatString()
}

// MinTime returns the earlier of a and b.
func MinTime(a, b Time) Time {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// MaxTime returns the later of a and b.
func MaxTime(a, b Time) Time {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Duration is a signed span between two times. Durations form a vector
// space over the rationals: they can be added, negated and scaled.
//
// The zero value is the zero duration.
type Duration struct {
	r *big.Rat
}

// DurationFromInt returns a duration of n units.
func DurationFromInt(n int64) Duration {
	return Duration{r: new(big.Rat).SetInt64(n)}
}

// DurationFromFloat returns a duration of x units. The conversion is
// exact. It panics if x is NaN or an infinity.
func DurationFromFloat(x float64) Duration {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		panic(fmt.Sprintf("clock: non-finite duration %v", x))
	}
	return Duration{r: r}
}

// DurationFromRat returns a duration of num/den units.
// It panics if den is zero.
func DurationFromRat(num, den int64) Duration {
	return Duration{r: big.NewRat(num, den)}
}

func (d Duration) rat() *big.Rat {
	if d.r == nil {
		return &zeroRat
	}
	return d.r
}

// Add returns d + e.
func (d Duration) Add(e Duration) Duration {
	return Duration{r: new(big.Rat).Add(d.rat(), e.rat())}
}

// Sub returns d - e.
func (d Duration) Sub(e Duration) Duration {
	return Duration{r: new(big.Rat).Sub(d.rat(), e.rat())}
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return Duration{r: new(big.Rat).Neg(d.rat())}
}

// Scale returns d scaled by num/den. It panics if den is zero.
func (d Duration) Scale(num, den int64) Duration {
	return Duration{r: new(big.Rat).Mul(d.rat(), big.NewRat(num, den))}
}

// Cmp compares two durations, returning -1, 0 or +1.
func (d Duration) Cmp(e Duration) int {
	return d.rat().Cmp(e.rat())
}

func (d Duration) Equal(e Duration) bool { return d.Cmp(e) == 0 }

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool {
	return d.rat().Sign() == 0
}

// Float64 returns the nearest float64 to d.
func (d Duration) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Rat returns a copy of the exact value of d.
func (d Duration) Rat() *big.Rat {
	return new(big.Rat).Set(d.rat())
}

func (d Duration) String() string {
	return d.rat().RatString()
}
