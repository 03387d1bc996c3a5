package chart

import (
	"fmt"

	"simaimuri/internal/catalogue"
	"simaimuri/internal/geometry"
)

// SegmentInfo is one leg of a SlideChain: the catalogue shape it
// follows and how long it takes to traverse.
type SegmentInfo struct {
	Shape    *catalogue.Shape
	Duration geometry.Tick
}

// AreaJudgeLog records what satisfied one judge-sequence area, or that
// it was skipped (spec §4.4's skip rules; spec §8 invariant 2).
type AreaJudgeLog struct {
	Action  Action
	Time    geometry.Tick
	Skipped bool
}

// SlideChain is a (possibly multi-segment) slide note (spec §3 table,
// §4.4). Segments must share boundary pads where they join — this is
// a contract error (spec §7) if violated, checked by NewSlideChain.
type SlideChain struct {
	NoteCommon

	Segments     []SegmentInfo
	WaitDuration geometry.Tick

	ShootMoment         geometry.Tick
	SegmentShootMoments []geometry.Tick
	EndMoment           geometry.Tick
	CriticalMoment      geometry.Tick
	CriticalDelta       geometry.Tick
	AvailableMoment     geometry.Tick

	// JudgeSequence is the flattened concatenation of every segment's
	// own judge sequence, with shared boundary areas collapsed to one
	// (spec §3, §8 invariant 5). Partition[i] marks an area that was a
	// segment boundary. SegmentIdxBias[k] is the starting flat index of
	// segment k.
	JudgeSequence  []catalogue.PadSet
	PadEntryTimes  []float64 // absolute ticks, parallel to JudgeSequence
	Partition      []bool
	SegmentIdxBias []int

	BeforeSlide bool
	AfterSlide  bool

	CurAreaIdx    int
	CurSegmentIdx int
	Pressing      *geometry.Pad

	AreaJudgeActions []AreaJudgeLog
}

func (n *SlideChain) Common() *NoteCommon { return &n.NoteCommon }
func (n *SlideChain) JudgementMomentKey() geometry.Tick { return n.CriticalMoment }

// NewSlideChain builds a SlideChain from its segment shapes/durations
// and derives every field the §3 invariants require. It is a contract
// error (spec §7) for adjacent segments not to share a boundary pad
// set, since that indicates a parser bug or a stale catalogue.
func NewSlideChain(cursor Cursor, moment, waitDuration geometry.Tick, segments []SegmentInfo) (*SlideChain, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("chart: slide chain at %v has no segments", cursor)
	}

	durations := make([]geometry.Tick, len(segments))
	for i, seg := range segments {
		durations[i] = seg.Duration
	}

	shootMoment := moment + waitDuration
	segmentShootMoments := make([]geometry.Tick, len(segments))
	running := shootMoment
	for i, d := range durations {
		running += d
		segmentShootMoments[i] = running
	}
	endMoment := segmentShootMoments[len(segmentShootMoments)-1]

	var flatSeq []catalogue.PadSet
	var flatTimes []float64
	var partition []bool
	segBias := make([]int, len(segments))

	for segIdx, seg := range segments {
		segBias[segIdx] = len(flatSeq)
		shape := seg.Shape
		start := 0
		if segIdx > 0 {
			// Adjacent segments must share their boundary pad set: the
			// previous segment's last area and this segment's first.
			prevLast := flatSeq[len(flatSeq)-1]
			if !prevLast.Intersects(shape.JudgeSequence[0]) {
				return nil, fmt.Errorf("chart: slide chain at %v: segment %d does not join segment %d on a shared boundary pad", cursor, segIdx-1, segIdx)
			}
			segBias[segIdx] = len(flatSeq) - 1 // segment starts on the shared area
			partition[len(partition)-1] = true
			start = 1 // drop the duplicated boundary area
		}
		segStart := segmentShootMoments[segIdx] - durations[segIdx]
		for i := start; i < len(shape.JudgeSequence); i++ {
			flatSeq = append(flatSeq, shape.JudgeSequence[i])
			t := segStart + geometry.Tick(shape.PadEntryTimes[i])*durations[segIdx]
			flatTimes = append(flatTimes, float64(t))
			partition = append(partition, i == 0 && segIdx > 0)
		}
	}

	lastSeg := segments[len(segments)-1]
	lastDuration := durations[len(durations)-1]
	criticalMoment := endMoment - geometry.Tick(1-lastSeg.Shape.CriticalProportion)*lastDuration
	lastAreaDuration := lastDuration
	if n := len(flatTimes); n >= 2 {
		lastAreaDuration = endMoment - geometry.Tick(flatTimes[n-2])
	}
	criticalDelta := geometry.SlideCritical + lastAreaDuration/4
	if criticalDelta > geometry.SlideAvailable {
		criticalDelta = geometry.SlideAvailable
	}

	sc := &SlideChain{
		NoteCommon:          NoteCommon{Cursor: cursor, Moment: moment},
		Segments:            segments,
		WaitDuration:        waitDuration,
		ShootMoment:         shootMoment,
		SegmentShootMoments: segmentShootMoments,
		EndMoment:           endMoment,
		CriticalMoment:      criticalMoment,
		CriticalDelta:       criticalDelta,
		AvailableMoment:     shootMoment - geometry.SlideLeading,
		JudgeSequence:       flatSeq,
		PadEntryTimes:       flatTimes,
		Partition:           partition,
		SegmentIdxBias:      segBias,
		AreaJudgeActions:    make([]AreaJudgeLog, len(flatSeq)),
	}
	return sc, nil
}

// TotalAreaNum is the flattened judge sequence's length.
func (n *SlideChain) TotalAreaNum() int { return len(n.JudgeSequence) }

// CanSkipArea implements the skip-eligibility rule of spec §4.4: the
// current area must not be the last one, and the shape's L/special-L
// flags must not forbid skipping this particular area.
func (n *SlideChain) CanSkipArea() bool {
	if n.CurAreaIdx >= n.TotalAreaNum()-1 {
		return false
	}
	seg := n.segmentForArea(n.CurAreaIdx)
	if seg == nil {
		return true
	}
	localIdx := n.CurAreaIdx - n.SegmentIdxBias[n.segmentIndexForArea(n.CurAreaIdx)]
	if seg.Shape.IsL && localIdx == 1 {
		return false // L-shapes forbid skipping their second area
	}
	if seg.Shape.IsSpecialL && localIdx == 3 {
		return false // special L-shapes additionally forbid skipping the fourth
	}
	if n.Pressing != nil {
		return true
	}
	return n.TotalAreaNum() >= 4
}

func (n *SlideChain) segmentIndexForArea(areaIdx int) int {
	seg := 0
	for i, bias := range n.SegmentIdxBias {
		if areaIdx >= bias {
			seg = i
		}
	}
	return seg
}

func (n *SlideChain) segmentForArea(areaIdx int) *SegmentInfo {
	seg := n.segmentIndexForArea(areaIdx)
	if seg < 0 || seg >= len(n.Segments) {
		return nil
	}
	return &n.Segments[seg]
}
