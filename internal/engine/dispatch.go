package engine

import (
	"simaimuri/internal/chart"
	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

// onPadDown offers a single pad-down edge to a note, returning true if
// the note consumed it (spec §4.4 step 6). Slides don't participate:
// their progression reads pad state directly in their update step.
func onPadDown(now geometry.Tick, pad geometry.Pad, source chart.Action, n chart.Note, cfg *config.Config) bool {
	switch note := n.(type) {
	case *chart.Tap:
		return simpleNotePadDown(now, pad, source, &note.NoteCommon, note.Pad, geometry.TapAvailable, geometry.TapCritical)
	case *chart.Hold:
		return simpleNotePadDown(now, pad, source, &note.NoteCommon, note.Pad, geometry.TapAvailable, geometry.TapCritical)
	case *chart.Touch:
		return simpleNotePadDown(now, pad, source, &note.NoteCommon, note.Pad, geometry.TouchAvailable, geometry.TouchCritical)
	case *chart.TouchHold:
		return simpleNotePadDown(now, pad, source, &note.NoteCommon, note.Pad, geometry.TouchAvailable, geometry.TouchCritical)
	case *chart.TouchGroup:
		return touchGroupPadDown(now, pad, source, note, cfg)
	default:
		return false
	}
}

func simpleNotePadDown(now geometry.Tick, pad geometry.Pad, source chart.Action, common *chart.NoteCommon, notePad geometry.Pad, available, critical geometry.Tick) bool {
	if common.Judge != chart.NotYet || pad != notePad {
		return false
	}
	if now < common.Moment-available {
		return false
	}
	if (now - common.Moment).Abs() <= critical {
		common.Judge = chart.Critical
	} else {
		common.Judge = chart.Bad
	}
	common.JudgeMoment = now
	common.JudgeAction = source
	return true
}

func touchGroupPadDown(now geometry.Tick, pad geometry.Pad, source chart.Action, group *chart.TouchGroup, cfg *config.Config) bool {
	consumed := false
	for _, child := range group.Children {
		if simpleNotePadDown(now, pad, source, &child.NoteCommon, child.Pad, geometry.TouchAvailable, geometry.TouchCritical) {
			consumed = true
			break
		}
	}

	judged := 0
	for _, child := range group.Children {
		if child.Judge != chart.NotYet {
			judged++
		}
	}
	if judged >= group.Threshold {
		for _, child := range group.Children {
			if child.Judge == chart.NotYet {
				child.Judge = chart.Critical
				child.JudgeMoment = now
				child.JudgeAction = source
			}
		}
	}
	return consumed
}

// updateSimpleNote times the note out if no pad-down has arrived (spec
// §4.4): Hold/TouchHold stay active until past end_moment regardless
// of judgement so the engine's pad map can keep reporting holding
// state.
func updateSimpleNote(now geometry.Tick, common *chart.NoteCommon, available geometry.Tick) {
	if common.Judge == chart.NotYet && now-common.Moment > available {
		common.Judge = chart.Bad
		common.JudgeMoment = now
	}
}

// finishSimple reports whether a Tap/Touch is done (judged).
func finishSimple(common *chart.NoteCommon) bool { return common.Judge != chart.NotYet }

// finishSpanning reports whether a Hold/TouchHold is done: judged at
// the head, but kept alive through end_moment.
func finishSpanning(now geometry.Tick, common *chart.NoteCommon, endMoment geometry.Tick) bool {
	return common.Judge != chart.NotYet && now > endMoment
}

func finishTouchGroup(group *chart.TouchGroup) bool {
	for _, c := range group.Children {
		if c.Judge == chart.NotYet {
			return false
		}
	}
	return true
}
