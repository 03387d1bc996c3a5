package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaimuri/internal/catalogue"
	"simaimuri/internal/chart"
	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

func init() {
	catalogue.Init()
}

func firstNonWifiShape(t *testing.T, minAreas int) *catalogue.Shape {
	t.Helper()
	for _, s := range catalogue.All() {
		if !s.IsWifi && len(s.JudgeSequence) >= minAreas {
			return s
		}
	}
	t.Fatal("no matching shape found in catalogue")
	return nil
}

func TestCheckOverlapFlagsSamePadCloseTaps(t *testing.T) {
	cfg := config.Default()
	a := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	b := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: cfg.OverlayThreshold}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	records := CheckOverlap([]chart.Note{a, b}, cfg)
	require.Len(t, records, 1)
	assert.Equal(t, MuriOverlap, records[0].Kind)
}

func TestCheckOverlapIgnoresDifferentPads(t *testing.T) {
	cfg := config.Default()
	a := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	b := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 2)}
	records := CheckOverlap([]chart.Note{a, b}, cfg)
	assert.Empty(t, records)
}

func TestCheckOverlapFlagsHoldStartingInsideAnotherHold(t *testing.T) {
	cfg := config.Default()
	hold := &chart.Hold{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1), Duration: 100, EndMoment: 100}
	inner := &chart.Hold{NoteCommon: chart.NoteCommon{Moment: 50}, Pad: geometry.PadFromKey(geometry.GroupA, 1), Duration: 10, EndMoment: 60}
	records := CheckOverlap([]chart.Note{hold, inner}, cfg)
	require.Len(t, records, 1)
}

func TestCheckSlideHeadTapFlagsTapNearShoot(t *testing.T) {
	cfg := config.Default()
	shape := firstNonWifiShape(t, 1)
	slide, err := chart.NewSlideChain(chart.Cursor{}, 0, 0, []chart.SegmentInfo{{Shape: shape, Duration: 120}})
	require.NoError(t, err)

	delta := (cfg.TapOnSlideThreshold + cfg.CollideThreshold) / 2
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: slide.ShootMoment + delta}, Pad: shape.Start}

	records := CheckSlideHeadTap([]chart.Note{slide, tap}, cfg)
	require.Len(t, records, 1)
	assert.Equal(t, MuriSlideHeadTap, records[0].Kind)
}

func TestCheckSlideHeadTapIgnoresTapBeforeThreshold(t *testing.T) {
	cfg := config.Default()
	shape := firstNonWifiShape(t, 1)
	slide, err := chart.NewSlideChain(chart.Cursor{}, 0, 0, []chart.SegmentInfo{{Shape: shape, Duration: 120}})
	require.NoError(t, err)

	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: slide.ShootMoment + cfg.TapOnSlideThreshold - 1}, Pad: shape.Start}

	records := CheckSlideHeadTap([]chart.Note{slide, tap}, cfg)
	assert.Empty(t, records)
}

func TestCheckTapOnSlideFlagsTapInsideCollideInterval(t *testing.T) {
	cfg := config.Default()
	shape := firstNonWifiShape(t, 2)
	slide, err := chart.NewSlideChain(chart.Cursor{}, 0, 0, []chart.SegmentInfo{{Shape: shape, Duration: 120}})
	require.NoError(t, err)

	lastPads := slide.JudgeSequence[len(slide.JudgeSequence)-1].Pads()
	require.NotEmpty(t, lastPads)
	lastEntry := geometry.Tick(slide.PadEntryTimes[len(slide.PadEntryTimes)-1])

	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: lastEntry}, Pad: lastPads[0]}

	records := CheckTapOnSlide([]chart.Note{slide, tap}, cfg)
	require.Len(t, records, 1)
	assert.Equal(t, MuriTapOnSlide, records[0].Kind)
}

func TestCheckTapOnSlideFlagsTapInsideCollideIntervalWithNonZeroShoot(t *testing.T) {
	cfg := config.Default()
	shape := firstNonWifiShape(t, 2)
	slide, err := chart.NewSlideChain(chart.Cursor{}, 500, 300, []chart.SegmentInfo{{Shape: shape, Duration: 120}})
	require.NoError(t, err)

	lastPads := slide.JudgeSequence[len(slide.JudgeSequence)-1].Pads()
	require.NotEmpty(t, lastPads)
	lastEntry := geometry.Tick(slide.PadEntryTimes[len(slide.PadEntryTimes)-1])

	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: lastEntry}, Pad: lastPads[0]}

	records := CheckTapOnSlide([]chart.Note{slide, tap}, cfg)
	require.Len(t, records, 1, "collide interval must be centered on the pad's actual entry moment regardless of shoot_moment")
	assert.Equal(t, MuriTapOnSlide, records[0].Kind)
}

func TestCheckTapOnSlideIgnoresTapFarFromPath(t *testing.T) {
	cfg := config.Default()
	shape := firstNonWifiShape(t, 2)
	slide, err := chart.NewSlideChain(chart.Cursor{}, 0, 0, []chart.SegmentInfo{{Shape: shape, Duration: 120}})
	require.NoError(t, err)

	lastPads := slide.JudgeSequence[len(slide.JudgeSequence)-1].Pads()
	require.NotEmpty(t, lastPads)
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: slide.EndMoment + 10000}, Pad: lastPads[0]}

	records := CheckTapOnSlide([]chart.Note{slide, tap}, cfg)
	assert.Empty(t, records)
}

func TestCheckAllConcatenatesAllThreeChecks(t *testing.T) {
	cfg := config.Default()
	a := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	b := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	records := CheckAll([]chart.Note{a, b}, cfg)
	require.Len(t, records, 1)
}
