package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ai-verify/interval-domain/pkg/ir"
)

var f64 = ir.FloatBV{ExpBits: 11, FracBits: 52}

func Test_RealInterval_01_TopIsNeitherBottomNorSingleton(t *testing.T) {
	p := TopRealInterval()
	assert.False(t, p.IsBottom())

	_, ok := p.IsSingleton()
	assert.False(t, ok)
}

func Test_RealInterval_02_JoinWeakensOverlappingBounds(t *testing.T) {
	a := TopRealInterval()
	a.MakeGeThan(big.NewFloat(0))
	a.MakeLeThan(big.NewFloat(3))

	b := TopRealInterval()
	b.MakeGeThan(big.NewFloat(1))
	b.MakeLeThan(big.NewFloat(7))

	j := a.Join(b)

	lo, _ := j.LowerBound()
	hi, _ := j.UpperBound()
	assert.Equal(t, 0, lo.Cmp(big.NewFloat(0)))
	assert.Equal(t, 0, hi.Cmp(big.NewFloat(7)))
}

func Test_RealInterval_03_ContractRealIntervalLe(t *testing.T) {
	a := TopRealInterval()
	a.MakeGeThan(big.NewFloat(0))
	a.MakeLeThan(big.NewFloat(10))

	b := TopRealInterval()
	b.MakeGeThan(big.NewFloat(3))
	b.MakeLeThan(big.NewFloat(7))

	ContractRealIntervalLe(a, b)

	hiA, _ := a.UpperBound()
	loB, _ := b.LowerBound()
	assert.Equal(t, 0, hiA.Cmp(big.NewFloat(7)))
	assert.Equal(t, 0, loB.Cmp(big.NewFloat(3)))
}

func Test_RealInterval_04_IncrementRoundsStrictlyAbove(t *testing.T) {
	v := big.NewFloat(1.5)
	inc := IncrementTowardPlusInfinity(v, f64)

	assert.Equal(t, 1, inc.Cmp(v))
}

func Test_RealInterval_05_DecrementRoundsStrictlyBelow(t *testing.T) {
	v := big.NewFloat(1.5)
	dec := DecrementTowardMinusInfinity(v, f64)

	assert.Equal(t, -1, dec.Cmp(v))
}

func Test_RealInterval_06_IncrementAtZero(t *testing.T) {
	v := big.NewFloat(0)
	inc := IncrementTowardPlusInfinity(v, f64)

	assert.Equal(t, 1, inc.Cmp(v))
}

func Test_RealInterval_07_DecrementAtNegativeValue(t *testing.T) {
	v := big.NewFloat(-2.0)
	dec := DecrementTowardMinusInfinity(v, f64)

	assert.Equal(t, -1, dec.Cmp(v))
}

func Test_RealInterval_08_NarrowerFormatWidensMore(t *testing.T) {
	v := big.NewFloat(1.5)
	wide := IncrementTowardPlusInfinity(v, ir.FloatBV{ExpBits: 11, FracBits: 52})
	narrow := IncrementTowardPlusInfinity(v, ir.FloatBV{ExpBits: 8, FracBits: 10})

	// A narrower fraction width has a coarser ULP, so its outward nudge
	// must land at least as far from v as the wider format's.
	wideUlp := new(big.Float).Sub(wide, v)
	narrowUlp := new(big.Float).Sub(narrow, v)
	assert.True(t, narrowUlp.Cmp(wideUlp) >= 0)
}
