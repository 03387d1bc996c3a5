package engine

import (
	"math/cmplx"

	"simaimuri/internal/chart"
	"simaimuri/internal/geometry"
)

// touchCircle is the momentary shape an action's hand presents on the
// playfield this tick (spec §4.4 step 2).
type touchCircle struct {
	center  complex128
	radius  float64
	tangent complex128 // zero when the action has no meaningful orientation (Press)
	source  chart.Action
}

// merger is implemented by actions that carry a merge-eligibility key
// (spec §4.4 step 2). A nil key means the action never merges; a
// non-nil key merges against any other touch sharing the same key.
type merger interface {
	MergeKey() any
}

// evalAction produces this tick's touch circle for a live action, if
// any, and reports whether the action has finished (spec §4.4 step 2).
func evalAction(now geometry.Tick, a chart.Action) (touchCircle, bool, bool) {
	switch action := a.(type) {
	case *chart.Press:
		if now < action.Moment || now > action.EndMoment {
			return touchCircle{}, false, now > action.EndMoment
		}
		return touchCircle{center: action.Position, radius: action.Radius, source: action}, true, now > action.EndMoment

	case *chart.Slide:
		if now < action.Moment || now > action.EndMoment {
			return touchCircle{}, false, now > action.EndMoment
		}
		t := 0.0
		if action.Duration > 0 {
			t = float64((now - action.Moment) / action.Duration)
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		pos := action.Path.Point(t)
		tan := action.Path.Tangent(t)
		return touchCircle{center: pos, radius: action.Radius, tangent: tan, source: action}, true, now > action.EndMoment

	case *chart.ExtraPadDown:
		return touchCircle{}, false, now >= action.Moment

	default:
		return touchCircle{}, false, true
	}
}

// mergeTouches drops touches whose emitting action shares a merge key
// with, and lands near, an already-kept touch from the same tick
// (spec §4.4 step 2): non-wifi slides share one key and so merge with
// any other non-wifi slide touch; wifi slides key on their source note,
// so only the two real-hand lanes of the same wifi note can merge.
func mergeTouches(touches []touchCircle, distanceMerge, tangentMerge float64) []touchCircle {
	var kept []touchCircle
	for _, t := range touches {
		m, ok := t.source.(merger)
		if !ok {
			kept = append(kept, t)
			continue
		}
		key := m.MergeKey()
		if key == nil {
			kept = append(kept, t)
			continue
		}

		merged := false
		for _, k := range kept {
			km, ok := k.source.(merger)
			if !ok || km.MergeKey() != key {
				continue
			}
			if t.tangent == 0 || k.tangent == 0 {
				continue
			}
			if cmplx.Abs(t.center-k.center) < distanceMerge && cmplx.Abs(t.tangent-k.tangent) < tangentMerge {
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, t)
		}
	}
	return kept
}
