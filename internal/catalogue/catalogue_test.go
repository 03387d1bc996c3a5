package catalogue

import (
	"math/cmplx"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaimuri/internal/geometry"
)

func TestInitIsIdempotent(t *testing.T) {
	Init()
	n := len(All())
	require.Greater(t, n, 0)
	Init()
	assert.Equal(t, n, len(All()))
}

func TestLookupStraightShape(t *testing.T) {
	Init()
	shape, ok := Lookup("1-3")
	require.True(t, ok)
	assert.Equal(t, geometry.PadFromKey(geometry.GroupA, 1), shape.Start)
	assert.Equal(t, geometry.PadFromKey(geometry.GroupA, 3), shape.End)
	assert.Len(t, shape.JudgeSequence, 3)
	assert.Len(t, shape.PadEntryTimes, 3)
	assert.InDelta(t, 0.0, shape.PadEntryTimes[0], 1e-9)
	assert.InDelta(t, 1.0, shape.PadEntryTimes[len(shape.PadEntryTimes)-1], 1e-9)
}

func TestLookupUnknownKey(t *testing.T) {
	Init()
	_, ok := Lookup("not-a-shape")
	assert.False(t, ok)
}

func TestLookupBeforeInitFails(t *testing.T) {
	registry = nil
	registryOnce = sync.Once{}
	_, ok := Lookup("1-3")
	assert.False(t, ok)
	Init() // restore for subsequent tests in the package
}

func TestWifiShapeHasThreeLanes(t *testing.T) {
	Init()
	shape, ok := Lookup("1w5")
	require.True(t, ok)
	require.True(t, shape.IsWifi)
	require.Len(t, shape.Lanes, 3)
	for _, lane := range shape.Lanes {
		assert.Len(t, lane.JudgeSequence, 4)
		assert.Len(t, lane.PadEntryTimes, 4)
	}
}

func TestLShapeFlagsSpecialOnFourSpan(t *testing.T) {
	Init()
	var sawSpecial, sawPlain bool
	for _, s := range All() {
		if !s.IsL {
			continue
		}
		if s.IsSpecialL {
			sawSpecial = true
		} else {
			sawPlain = true
		}
	}
	assert.True(t, sawSpecial, "expected at least one special L-shape")
	assert.True(t, sawPlain, "expected at least one plain L-shape")
}

// TestLastPadEntryWithinRadius is the catalogue's slide path sanity
// check: the path's position at the final pad-entry time must land
// within that pad's detection radius of the pad's own center.
func TestLastPadEntryWithinRadius(t *testing.T) {
	Init()
	for _, s := range All() {
		lastSet, lastT := s.LastPadEntry()
		pads := lastSet.Pads()
		require.NotEmpty(t, pads)
		p := s.PointAt(lastT, geometry.ReferenceCanvas)
		best := cmplx.Abs(p - pads[0].RefVec())
		for _, pad := range pads[1:] {
			if d := cmplx.Abs(p - pad.RefVec()); d < best {
				best = d
			}
		}
		assert.LessOrEqual(t, best, pads[0].RefDetectRadius()+1e-6, "shape %s endpoint too far from last judge pad", s.Key)
	}
}

func TestRegistrySizeReflectsAllRecipes(t *testing.T) {
	Init()
	// 8 rotations (x 2 reflections, except straight and circle
	// recipes) per canonical recipe; duplicate keys
	// from symmetric recipes collapse, so this is a lower bound.
	assert.GreaterOrEqual(t, len(All()), len(canonicalRecipes()))
}
