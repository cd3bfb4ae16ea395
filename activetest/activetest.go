// Package activetest provides helpers for testing composed time-varying
// values by sampling them at probe instants.
package activetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andreasabel/active"
	"github.com/andreasabel/active/clock"
)

// Times builds probe instants from integers.
func Times(xs ...int64) []clock.Time {
	ts := make([]clock.Time, len(xs))
	for i, x := range xs {
		ts[i] = clock.TimeFromInt(x)
	}
	return ts
}

// Samples evaluates v at each probe instant.
func Samples[T any](v active.Value[T], ts ...clock.Time) []T {
	out := make([]T, len(ts))
	for i, t := range ts {
		out[i] = v.Sample(t)
	}
	return out
}

// DiffValues compares two values by era and by their samples at the
// probe instants, returning a human-readable diff or the empty string.
func DiffValues[T any](want, got active.Value[T], ts ...clock.Time) string {
	if diff := cmp.Diff(want.Era(), got.Era()); diff != "" {
		return "era -want/+got:\n" + diff
	}
	return cmp.Diff(Samples(want, ts...), Samples(got, ts...))
}

// MustSeal seals an endpoint, failing the test on error.
func MustSeal[T any](t *testing.T, a active.Anchored[T], s active.Side, v T) active.Anchored[T] {
	t.Helper()
	sealed, err := a.Seal(s, v)
	if err != nil {
		t.Fatalf("seal %v: %v", s, err)
	}
	return sealed
}

// MustAppend composes two anchored values, failing the test on error.
func MustAppend[T any](t *testing.T, left, right active.Anchored[T]) active.Anchored[T] {
	t.Helper()
	out, err := active.Append(left, right)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	return out
}
