package shift_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andreasabel/active"
	"github.com/andreasabel/active/clock"
	"github.com/andreasabel/active/shift"
)

// Every timed type of the module is shiftable.
var (
	_ shift.Shifter[clock.Time]           = clock.Time{}
	_ shift.Shifter[clock.Bound]          = clock.Bound{}
	_ shift.Shifter[clock.Era]            = clock.Era{}
	_ shift.Shifter[active.Value[int]]    = active.Value[int]{}
	_ shift.Shifter[active.Anchored[int]] = active.Anchored[int]{}
)

func TestBy(t *testing.T) {
	got := shift.By(clock.TimeFromInt(3), clock.DurationFromInt(4))
	if exp := clock.TimeFromInt(7); !got.Equal(exp) {
		t.Errorf("unexpected time: got %v exp %v", got, exp)
	}
}

func TestOption(t *testing.T) {
	if got := shift.Option[clock.Time](nil, clock.DurationFromInt(1)); got != nil {
		t.Errorf("unexpected shifted nil: got %v", got)
	}

	orig := clock.TimeFromInt(2)
	got := shift.Option(&orig, clock.DurationFromInt(5))
	if got == nil || !got.Equal(clock.TimeFromInt(7)) {
		t.Errorf("unexpected shifted option: got %v", got)
	}
	if !orig.Equal(clock.TimeFromInt(2)) {
		t.Errorf("original mutated: got %v", orig)
	}
}

func TestPair(t *testing.T) {
	p := shift.Pair[clock.Time, clock.Era]{
		First:  clock.TimeFromInt(1),
		Second: clock.MakeFinite(clock.TimeFromInt(0), clock.TimeFromInt(10)),
	}
	got := p.Shift(clock.DurationFromInt(2))
	if exp := clock.TimeFromInt(3); !got.First.Equal(exp) {
		t.Errorf("unexpected first: got %v exp %v", got.First, exp)
	}
	if exp := clock.MakeFinite(clock.TimeFromInt(2), clock.TimeFromInt(12)); !got.Second.Equal(exp) {
		t.Errorf("unexpected second: got %v exp %v", got.Second, exp)
	}
}

func TestFunc(t *testing.T) {
	if got := shift.Func[int](nil, clock.DurationFromInt(1)); got != nil {
		t.Error("unexpected non-nil shifted func")
	}

	ident := func(t clock.Time) clock.Time { return t }
	shifted := shift.Func(ident, clock.DurationFromInt(3))

	// A feature at time t of the original must appear at t+3.
	got := shifted(clock.TimeFromInt(10))
	if exp := clock.TimeFromInt(7); !got.Equal(exp) {
		t.Errorf("unexpected sample: got %v exp %v", got, exp)
	}
}

func TestTimes(t *testing.T) {
	if got := shift.Times[string](nil, clock.DurationFromInt(1)); got != nil {
		t.Errorf("unexpected shifted nil map: got %v", got)
	}

	m := map[string]clock.Time{
		"start": clock.TimeFromInt(0),
		"end":   clock.TimeFromRat(5, 2),
	}
	got := shift.Times(m, clock.DurationFromRat(1, 2))
	exp := map[string]clock.Time{
		"start": clock.TimeFromRat(1, 2),
		"end":   clock.TimeFromInt(3),
	}
	if !cmp.Equal(exp, got) {
		t.Errorf("unexpected shifted map -want/+got\n%s", cmp.Diff(exp, got))
	}
	if !m["start"].Equal(clock.TimeFromInt(0)) {
		t.Errorf("original map mutated: got %v", m["start"])
	}
}

func TestGroupAction(t *testing.T) {
	d1 := clock.DurationFromRat(1, 3)
	d2 := clock.DurationFromInt(-2)
	e := clock.MakeFinite(clock.TimeFromInt(0), clock.TimeFromInt(6))

	if got := shift.By(e, clock.Duration{}); !got.Equal(e) {
		t.Errorf("shift by zero changed %v to %v", e, got)
	}
	got := shift.By(shift.By(e, d1), d2)
	exp := shift.By(e, d1.Add(d2))
	if !got.Equal(exp) {
		t.Errorf("composed shifts differ: got %v exp %v", got, exp)
	}
}
