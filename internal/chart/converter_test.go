package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

func TestConvertOmitsSlideHeadTap(t *testing.T) {
	cfg := config.Default()
	tap := &Tap{NoteCommon: NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1), IsSlideHead: true}
	actions := Convert([]Note{tap}, cfg)
	assert.Empty(t, actions)
}

func TestConvertOmitsOnSlideTouch(t *testing.T) {
	cfg := config.Default()
	touch := &Touch{NoteCommon: NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupB, 1), OnSlide: true}
	actions := Convert([]Note{touch}, cfg)
	assert.Empty(t, actions)
}

func TestConvertPlainTapProducesPress(t *testing.T) {
	cfg := config.Default()
	tap := &Tap{NoteCommon: NoteCommon{Moment: 10}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	actions := Convert([]Note{tap}, cfg)
	require.Len(t, actions, 1)
	press, ok := actions[0].(*Press)
	require.True(t, ok)
	assert.Equal(t, geometry.Tick(10), press.Moment)
	assert.Equal(t, geometry.Tick(10)+cfg.ReleaseDelay, press.EndMoment)
}

func TestConvertHoldTailOnSlideHeadIsTailless(t *testing.T) {
	cfg := config.Default()
	hold := &Hold{NoteCommon: NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1), Duration: 40, TailOnSlideHead: true}
	actions := Convert([]Note{hold}, cfg)
	require.Len(t, actions, 1)
	press := actions[0].(*Press)
	assert.Equal(t, geometry.Tick(40), press.EndMoment) // no release_delay extension
}

func TestConvertTouchGroupUsesEnclosingCircleAndTwoHandFlag(t *testing.T) {
	cfg := config.Default()
	group := &TouchGroup{
		NoteCommon: NoteCommon{Moment: 0},
		Center:     0,
		Radius:     cfg.HandRadiusMax + 1,
	}
	actions := Convert([]Note{group}, cfg)
	require.Len(t, actions, 1)
	press := actions[0].(*Press)
	assert.True(t, press.RequireTwoHands)
	assert.Equal(t, cfg.HandRadiusMax+1, press.Radius)
}

func TestConvertSlideChainProducesExtraPadDownAndSlides(t *testing.T) {
	cfg := config.Default()
	shape := straightShape(t, "1-3")
	sc, err := NewSlideChain(Cursor{}, 0, 30, []SegmentInfo{{Shape: shape, Duration: 60}})
	require.NoError(t, err)

	actions := Convert([]Note{sc}, cfg)
	require.Len(t, actions, 2)
	var sawExtra, sawSlide bool
	for _, a := range actions {
		switch a.(type) {
		case *ExtraPadDown:
			sawExtra = true
		case *Slide:
			sawSlide = true
		}
	}
	assert.True(t, sawExtra)
	assert.True(t, sawSlide)
}

func TestConvertSlideChainSkipsExtraPadDownWhenAfterSlide(t *testing.T) {
	cfg := config.Default()
	shape := straightShape(t, "1-3")
	sc, err := NewSlideChain(Cursor{}, 0, 30, []SegmentInfo{{Shape: shape, Duration: 60}})
	require.NoError(t, err)
	sc.AfterSlide = true

	actions := Convert([]Note{sc}, cfg)
	require.Len(t, actions, 1)
	_, isSlide := actions[0].(*Slide)
	assert.True(t, isSlide)
}

func TestConvertWifiProducesExtraPadDownAndTwoOuterLaneSlides(t *testing.T) {
	cfg := config.Default()
	shape := wifiShape(t)
	w, err := NewWifi(Cursor{}, 0, 0, 90, shape)
	require.NoError(t, err)

	actions := Convert([]Note{w}, cfg)
	require.Len(t, actions, 3)
	var sawExtra bool
	slideCount := 0
	for _, a := range actions {
		switch action := a.(type) {
		case *ExtraPadDown:
			sawExtra = true
		case *Slide:
			slideCount++
			assert.True(t, action.IsWifi)
		}
	}
	assert.True(t, sawExtra)
	assert.Equal(t, 2, slideCount)
}
