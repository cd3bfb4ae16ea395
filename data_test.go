package active_test

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/andreasabel/active"
	"github.com/andreasabel/active/clock"
)

const (
	N     = 100
	Mu    = 10
	Sigma = 3

	seed = 42
)

// NormalData is a slice of N random values that are normally distributed
// with mean Mu and standard deviation Sigma.
var NormalData []float64

// NormalValue steps through NormalData over the unit era.
var NormalValue active.Value[float64]

func init() {
	dist := distuv.Normal{
		Mu:    Mu,
		Sigma: Sigma,
		Src:   rand.NewSource(seed),
	}
	NormalData = make([]float64, N)
	for i := range NormalData {
		NormalData[i] = dist.Rand()
	}
	v, err := active.Discrete(NormalData)
	if err != nil {
		panic(err)
	}
	NormalValue = v
}

func tm(x int64) clock.Time      { return clock.TimeFromInt(x) }
func dur(x int64) clock.Duration { return clock.DurationFromInt(x) }

func era(s, e int64) clock.Era {
	return clock.MakeFinite(tm(s), tm(e))
}

// ramp follows the clock over the given era: its sample at time t is t.
func ramp(s, e int64) active.Value[float64] {
	return active.New(era(s, e), func(t clock.Time) float64 {
		return t.Float64()
	})
}

// constOn holds v over the given era.
func constOn[T any](v T, s, e int64) active.Value[T] {
	return active.New(era(s, e), func(clock.Time) T {
		return v
	})
}
