package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simaimuri/internal/chart"
	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

func TestOnPadDownCriticalWithinWindow(t *testing.T) {
	cfg := config.Default()
	pad := geometry.PadFromKey(geometry.GroupA, 1)
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 100}, Pad: pad}
	src := &chart.Press{}

	consumed := onPadDown(100, pad, src, tap, cfg)
	require.True(t, consumed)
	assert.Equal(t, chart.Critical, tap.Judge)
	assert.Same(t, src, tap.JudgeAction)
}

func TestOnPadDownBadOutsideCriticalButInsideAvailable(t *testing.T) {
	cfg := config.Default()
	pad := geometry.PadFromKey(geometry.GroupA, 1)
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 100}, Pad: pad}
	src := &chart.Press{}

	consumed := onPadDown(100+geometry.TapCritical+1, pad, src, tap, cfg)
	require.True(t, consumed)
	assert.Equal(t, chart.Bad, tap.Judge)
}

func TestOnPadDownIgnoresWrongPad(t *testing.T) {
	cfg := config.Default()
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 100}, Pad: geometry.PadFromKey(geometry.GroupA, 1)}
	consumed := onPadDown(100, geometry.PadFromKey(geometry.GroupA, 2), &chart.Press{}, tap, cfg)
	assert.False(t, consumed)
	assert.Equal(t, chart.NotYet, tap.Judge)
}

func TestOnPadDownIgnoresAlreadyJudgedNote(t *testing.T) {
	cfg := config.Default()
	pad := geometry.PadFromKey(geometry.GroupA, 1)
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 100, Judge: chart.Critical}, Pad: pad}
	consumed := onPadDown(100, pad, &chart.Press{}, tap, cfg)
	assert.False(t, consumed)
}

func TestOnPadDownTooEarlyRejected(t *testing.T) {
	cfg := config.Default()
	pad := geometry.PadFromKey(geometry.GroupA, 1)
	tap := &chart.Tap{NoteCommon: chart.NoteCommon{Moment: 100}, Pad: pad}
	consumed := onPadDown(100-geometry.TapAvailable-1, pad, &chart.Press{}, tap, cfg)
	assert.False(t, consumed)
	assert.Equal(t, chart.NotYet, tap.Judge)
}

func TestTouchGroupPadDownResolvesAtThreshold(t *testing.T) {
	cfg := config.Default()
	padA := geometry.PadFromKey(geometry.GroupB, 1)
	padB := geometry.PadFromKey(geometry.GroupB, 2)
	padC := geometry.PadFromKey(geometry.GroupB, 3)
	children := []*chart.Touch{
		{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: padA},
		{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: padB},
		{NoteCommon: chart.NoteCommon{Moment: 0}, Pad: padC},
	}
	group := &chart.TouchGroup{NoteCommon: chart.NoteCommon{Moment: 0}, Children: children, Threshold: 2}

	onPadDown(0, padA, &chart.Press{}, group, cfg)
	for _, c := range children {
		if c.Pad == padA {
			assert.Equal(t, chart.Critical, c.Judge)
		} else {
			assert.Equal(t, chart.NotYet, c.Judge)
		}
	}

	onPadDown(0, padB, &chart.Press{}, group, cfg)
	for _, c := range children {
		assert.Equal(t, chart.Critical, c.Judge, "all children auto-resolve once threshold reached")
	}
}

func TestUpdateSimpleNoteTimesOutPastAvailable(t *testing.T) {
	common := &chart.NoteCommon{Moment: 0}
	updateSimpleNote(geometry.TapAvailable+1, common, geometry.TapAvailable)
	assert.Equal(t, chart.Bad, common.Judge)
}

func TestUpdateSimpleNoteLeavesJudgedNotesAlone(t *testing.T) {
	common := &chart.NoteCommon{Moment: 0, Judge: chart.Critical}
	updateSimpleNote(geometry.TapAvailable+1, common, geometry.TapAvailable)
	assert.Equal(t, chart.Critical, common.Judge)
}

func TestFinishSpanningWaitsForEndMoment(t *testing.T) {
	common := &chart.NoteCommon{Moment: 0, Judge: chart.Critical}
	assert.False(t, finishSpanning(50, common, 100))
	assert.True(t, finishSpanning(101, common, 100))
}

func TestFinishTouchGroupRequiresAllChildrenJudged(t *testing.T) {
	group := &chart.TouchGroup{Children: []*chart.Touch{
		{NoteCommon: chart.NoteCommon{Judge: chart.Critical}},
		{NoteCommon: chart.NoteCommon{Judge: chart.NotYet}},
	}}
	assert.False(t, finishTouchGroup(group))
	group.Children[1].Judge = chart.Bad
	assert.True(t, finishTouchGroup(group))
}
