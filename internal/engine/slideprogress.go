package engine

import (
	"simaimuri/internal/chart"
	"simaimuri/internal/geometry"
)

// padEdges is what a tick's pad-resolution step hands to note update
// logic: which action currently lives on each pad, and which pads just
// transitioned high->low this tick (spec §4.4 step 7).
type padEdges struct {
	source map[geometry.Pad]chart.Action
	padUp  map[geometry.Pad]bool
}

func (e padEdges) liveSourceIn(set interimPadSet) (geometry.Pad, chart.Action, bool) {
	for _, p := range set.pads {
		if a, ok := e.source[p]; ok {
			return p, a, true
		}
	}
	return 0, nil, false
}

func (e padEdges) padUpOrLiveIn(set interimPadSet) (geometry.Pad, chart.Action, bool) {
	if p, a, ok := e.liveSourceIn(set); ok {
		return p, a, true
	}
	for _, p := range set.pads {
		if e.padUp[p] {
			if a, ok := e.source[p]; ok {
				return p, a, true
			}
			return p, nil, true
		}
	}
	return 0, nil, false
}

// interimPadSet is a judge area reduced to its member pads, for the
// progression helpers above.
type interimPadSet struct{ pads []geometry.Pad }

// updateSlideChain runs _progress_once until it stops making progress,
// then checks for final judgement or timeout (spec §4.4's SlideChain
// state machine).
func updateSlideChain(now geometry.Tick, n *chart.SlideChain, edges padEdges) {
	if n.Judge != chart.NotYet {
		return
	}

	for i := 0; i < len(n.JudgeSequence)+2; i++ {
		if !progressSlideOnce(now, n, edges) {
			break
		}
	}

	if n.CurAreaIdx >= n.TotalAreaNum() {
		judgeSlideCompletion(now, &n.NoteCommon, n.CriticalMoment, n.CriticalDelta)
		return
	}
	if now > n.EndMoment+geometry.SlideAvailable {
		n.Judge = chart.Bad
		n.JudgeMoment = now
	}
}

func progressSlideOnce(now geometry.Tick, n *chart.SlideChain, edges padEdges) bool {
	total := n.TotalAreaNum()
	if n.CurAreaIdx >= total {
		return false
	}
	area := interimPadSet{pads: n.JudgeSequence[n.CurAreaIdx].Pads()}

	if n.Pressing == nil {
		if p, a, ok := edges.liveSourceIn(area); ok {
			n.Pressing = &p
			n.AreaJudgeActions[n.CurAreaIdx] = chart.AreaJudgeLog{Action: a, Time: now}
			if n.CurAreaIdx == total-1 {
				n.JudgeAction = a
			}
			if n.Partition[n.CurAreaIdx] {
				n.CurSegmentIdx++
			}
			return true
		}
	} else {
		if _, ok := edges.source[*n.Pressing]; !ok {
			n.Pressing = nil
			n.CurAreaIdx++
			return true
		}
	}

	if n.CanSkipArea() && n.CurAreaIdx+1 < total {
		next := interimPadSet{pads: n.JudgeSequence[n.CurAreaIdx+1].Pads()}
		if p, a, ok := edges.padUpOrLiveIn(next); ok {
			n.Pressing = &p
			n.AreaJudgeActions[n.CurAreaIdx+1] = chart.AreaJudgeLog{Action: a, Time: now}
			n.CurAreaIdx += 2
			return true
		}
	}
	return false
}

func judgeSlideCompletion(now geometry.Tick, n *chart.NoteCommon, criticalMoment, criticalDelta geometry.Tick) {
	delta := now - criticalMoment
	shifted := delta + geometry.SlideDeltaShift
	if delta.Abs() <= criticalDelta || shifted.Abs() <= geometry.SlideCritical {
		n.Judge = chart.Critical
	} else {
		n.Judge = chart.Bad
	}
	n.JudgeMoment = now
}

// updateWifi runs each lane's progression independently, then checks
// for the FLAG_WIFI_NEED_C gate and final judgement (spec §4.4's Wifi
// state machine).
func updateWifi(now geometry.Tick, n *chart.Wifi, edges padEdges, needC bool) {
	if n.Judge != chart.NotYet {
		return
	}

	for lane := 0; lane < 3; lane++ {
		progressWifiLane(now, n, lane, edges)
	}

	if needC && n.Lanes[1].CurAreaIdx >= 1 && edges.padUp[geometry.PadC] {
		n.PadCPassed = true
	}

	if n.AllLanesFinished() && (!needC || n.PadCPassed) {
		judgeSlideCompletion(now, &n.NoteCommon, n.CriticalMoment, n.CriticalDelta)
		return
	}
	if now > n.EndMoment+geometry.SlideAvailable {
		n.Judge = chart.Bad
		n.JudgeMoment = now
	}
}

func progressWifiLane(now geometry.Tick, n *chart.Wifi, lane int, edges padEdges) {
	ls := &n.Lanes[lane]
	if ls.Finished {
		return
	}
	seq := n.Shape.Lanes[lane].JudgeSequence
	for i := 0; i < len(seq)+2; i++ {
		if ls.CurAreaIdx >= len(seq) {
			ls.Finished = true
			return
		}
		area := interimPadSet{pads: seq[ls.CurAreaIdx].Pads()}
		if ls.Pressing == nil {
			if p, _, ok := edges.liveSourceIn(area); ok {
				ls.Pressing = &p
				continue
			}
			return
		}
		if _, ok := edges.source[*ls.Pressing]; !ok {
			ls.Pressing = nil
			ls.CurAreaIdx++
			continue
		}
		return
	}
}
