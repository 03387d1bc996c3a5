package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaimuri/internal/catalogue"
	"simaimuri/internal/geometry"
)

func straightShape(t *testing.T, key string) *catalogue.Shape {
	t.Helper()
	catalogue.Init()
	s, ok := catalogue.Lookup(key)
	require.True(t, ok, "shape %s must exist in the catalogue", key)
	return s
}

func TestNewSlideChainSingleSegmentDerivedMoments(t *testing.T) {
	shape := straightShape(t, "1-5")
	sc, err := NewSlideChain(Cursor{}, 0, 30, []SegmentInfo{{Shape: shape, Duration: 90}})
	require.NoError(t, err)

	assert.Equal(t, geometry.Tick(30), sc.ShootMoment)
	assert.Equal(t, geometry.Tick(120), sc.EndMoment)
	assert.Equal(t, []geometry.Tick{120}, sc.SegmentShootMoments)
	assert.Len(t, sc.JudgeSequence, len(shape.JudgeSequence))
	assert.GreaterOrEqual(t, sc.EndMoment, sc.Moment)
}

func TestNewSlideChainRejectsNonJoiningSegments(t *testing.T) {
	a := straightShape(t, "1-5")
	b := straightShape(t, "2-6") // does not share a boundary pad with 1-5's end (key 5)
	_, err := NewSlideChain(Cursor{}, 0, 0, []SegmentInfo{
		{Shape: a, Duration: 60},
		{Shape: b, Duration: 60},
	})
	assert.Error(t, err)
}

func TestNewSlideChainJoiningSegmentsCollapseBoundary(t *testing.T) {
	a := straightShape(t, "1-3")
	b := straightShape(t, "3-5")
	sc, err := NewSlideChain(Cursor{}, 0, 0, []SegmentInfo{
		{Shape: a, Duration: 60},
		{Shape: b, Duration: 60},
	})
	require.NoError(t, err)
	assert.Len(t, sc.JudgeSequence, len(a.JudgeSequence)+len(b.JudgeSequence)-1)
	assert.Equal(t, []int{0, len(a.JudgeSequence) - 1}, sc.SegmentIdxBias)
}

func TestNewSlideChainRejectsEmptySegments(t *testing.T) {
	_, err := NewSlideChain(Cursor{}, 0, 0, nil)
	assert.Error(t, err)
}

func TestCanSkipAreaForbidsLastArea(t *testing.T) {
	shape := straightShape(t, "1-5")
	sc, err := NewSlideChain(Cursor{}, 0, 0, []SegmentInfo{{Shape: shape, Duration: 90}})
	require.NoError(t, err)
	sc.CurAreaIdx = sc.TotalAreaNum() - 1
	assert.False(t, sc.CanSkipArea())
}

func TestCanSkipAreaAllowsMidAreaWithFourOrMoreAreas(t *testing.T) {
	shape := straightShape(t, "1-5") // distance 4, 5 judge areas
	sc, err := NewSlideChain(Cursor{}, 0, 0, []SegmentInfo{{Shape: shape, Duration: 90}})
	require.NoError(t, err)
	require.GreaterOrEqual(t, sc.TotalAreaNum(), 4)
	sc.CurAreaIdx = 1
	assert.True(t, sc.CanSkipArea())
}

func TestCanSkipAreaForbidsLShapeSecondArea(t *testing.T) {
	var lShape *catalogue.Shape
	catalogue.Init()
	for _, s := range catalogue.All() {
		if s.IsL {
			lShape = s
			break
		}
	}
	require.NotNil(t, lShape, "expected at least one L-shape in the catalogue")

	sc, err := NewSlideChain(Cursor{}, 0, 0, []SegmentInfo{{Shape: lShape, Duration: 90}})
	require.NoError(t, err)
	sc.CurAreaIdx = 1
	assert.False(t, sc.CanSkipArea())
}
