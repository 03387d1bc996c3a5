package geometry

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinePointAndLength(t *testing.T) {
	l := Line{P0: 0, P1: complex(10, 0)}
	assert.Equal(t, complex(5, 0), l.Point(0.5))
	assert.InDelta(t, 10, l.Length(), 1e-9)
	assert.Equal(t, complex(1, 0), l.Tangent(0.3))
}

func TestArcLengthQuarterCircle(t *testing.T) {
	a := Arc{Center: 0, Radius: 2, StartAngle: 0, EndAngle: math.Pi / 2}
	assert.InDelta(t, math.Pi, a.Length(), 1e-9)
	end := a.Point(1)
	assert.InDelta(t, 0, real(end), 1e-9)
	assert.InDelta(t, 2, imag(end), 1e-9)
}

func TestCubicBezierEndpoints(t *testing.T) {
	b := CubicBezier{P0: 0, P1: complex(1, 1), P2: complex(2, -1), P3: complex(3, 0)}
	assert.Equal(t, b.P0, b.Point(0))
	assert.Equal(t, b.P3, b.Point(1))
	assert.Greater(t, b.Length(), cmplx.Abs(b.P3-b.P0))
}

func TestChainedConcatenatesSegments(t *testing.T) {
	chain := Chained{Curves: []Curve{
		Line{P0: 0, P1: complex(1, 0)},
		Line{P0: complex(1, 0), P1: complex(1, 1)},
	}}
	assert.Equal(t, complex(0, 0), chain.Point(0))
	assert.Equal(t, complex(1, 0), chain.Point(0.5))
	assert.Equal(t, complex(1, 1), chain.Point(1))
	assert.InDelta(t, 2, chain.Length(), 1e-9)
}
