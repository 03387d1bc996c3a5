package geometry

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallestEnclosingCircleSinglePoint(t *testing.T) {
	c := SmallestEnclosingCircle([]complex128{complex(3, 4)})
	require.Equal(t, complex(3, 4), c.Center)
	require.Zero(t, c.Radius)
}

func TestSmallestEnclosingCircleCoversAllPoints(t *testing.T) {
	points := []complex128{0, complex(10, 0), complex(0, 10), complex(5, 5), complex(-3, 2)}
	c := SmallestEnclosingCircle(points)
	for _, p := range points {
		assert.LessOrEqual(t, cmplx.Abs(p-c.Center), c.Radius+1e-6)
	}
}

func TestSmallestEnclosingCircleCollinear(t *testing.T) {
	points := []complex128{0, complex(2, 0), complex(4, 0)}
	c := SmallestEnclosingCircle(points)
	assert.InDelta(t, 2, real(c.Center), 1e-6)
	assert.InDelta(t, 0, imag(c.Center), 1e-6)
	assert.InDelta(t, 2, c.Radius, 1e-6)
}
