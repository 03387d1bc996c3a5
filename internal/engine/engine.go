package engine

import (
	"math/cmplx"
	"sort"

	"golang.org/x/exp/slices"

	"simaimuri/internal/catalogue"
	"simaimuri/internal/chart"
	"simaimuri/internal/config"
	"simaimuri/internal/diag"
	"simaimuri/internal/geometry"
)

// Engine is the single-threaded, cooperative dynamic judge simulator
// (spec §4.4, §5): the caller drives it entirely through Tick, one
// simulated tick at a time. No goroutines, no internal scheduling.
type Engine struct {
	cfg    *config.Config
	logger *diag.Logger

	notes   []chart.Note
	actions []chart.Action

	noteIdx   int
	actionIdx int

	activeNotes   []chart.Note
	activeActions []chart.Action

	now     geometry.Tick
	lastNow geometry.Tick

	prevPad       catalogue.PadSet
	prevPadSource [64]chart.Action

	multiTouchSeen map[string]bool

	Records []MuriRecord
}

// New builds an Engine over a note list and the action list produced
// by chart.Convert. It copies both lists and stable-sorts each by
// moment itself, since Engine only ever walks forward.
func New(notes []chart.Note, actions []chart.Action, cfg *config.Config, logger *diag.Logger) *Engine {
	sortedNotes := make([]chart.Note, len(notes))
	copy(sortedNotes, notes)
	sort.SliceStable(sortedNotes, func(i, j int) bool {
		return sortedNotes[i].Common().Moment < sortedNotes[j].Common().Moment
	})

	sortedActions := make([]chart.Action, len(actions))
	copy(sortedActions, actions)
	sort.SliceStable(sortedActions, func(i, j int) bool {
		return sortedActions[i].Common().Moment < sortedActions[j].Common().Moment
	})

	return &Engine{
		cfg:            cfg,
		logger:         logger,
		notes:          sortedNotes,
		actions:        sortedActions,
		multiTouchSeen: make(map[string]bool),
		now:            -2 * geometry.JudgeTPS, // lead-in, per spec §4.4's activation window
	}
}

// Done reports whether the simulation has nothing left to process:
// every note has been activated and retired.
func (e *Engine) Done() bool {
	return e.noteIdx >= len(e.notes) && len(e.activeNotes) == 0
}

// Tick advances the simulated timer by delta ticks and runs one pass
// of the engine's 8-step ordering (spec §4.4, §5): activation, action
// evaluation, touch merging, pad resolution, multi-touch detection,
// edge events, pad-down dispatch, note updates, retirement.
func (e *Engine) Tick(delta geometry.Tick) {
	e.lastNow = e.now
	e.now += delta

	e.activate()

	touches, extraPadDowns := e.evaluateActions()
	touches = mergeTouches(touches, e.cfg.DistanceMergeSlide, e.cfg.DeltaTangentMergeSlide)

	nextPad, padSource, handCount := e.resolvePads(touches)
	e.detectMultiTouch(handCount, touches)

	padDown, padUp := e.computeEdges(nextPad, padSource)
	for pad, src := range extraPadDowns {
		padDown[pad] = src
	}

	e.dispatchPadDowns(padDown)
	live := make(map[geometry.Pad]chart.Action)
	for _, pad := range geometry.AllPads() {
		if src := padSource[pad.Code()]; src != nil {
			live[pad] = src
		}
	}
	e.updateNotes(padEdges{source: live, padUp: padUp})
	e.retire()

	e.prevPad = nextPad
	e.prevPadSource = padSource
}

func (e *Engine) activate() {
	for e.noteIdx < len(e.notes) && e.now >= e.notes[e.noteIdx].Common().Moment-2*geometry.JudgeTPS {
		e.activeNotes = append(e.activeNotes, e.notes[e.noteIdx])
		e.noteIdx++
	}
	for e.actionIdx < len(e.actions) && e.now >= e.actions[e.actionIdx].Common().Moment-geometry.JudgeTPS {
		e.activeActions = append(e.activeActions, e.actions[e.actionIdx])
		e.actionIdx++
	}
}

func (e *Engine) evaluateActions() ([]touchCircle, map[geometry.Pad]chart.Action) {
	var touches []touchCircle
	extraPadDowns := make(map[geometry.Pad]chart.Action)
	var kept []chart.Action

	for _, a := range e.activeActions {
		if epd, ok := a.(*chart.ExtraPadDown); ok {
			if epd.Moment > e.lastNow && epd.Moment <= e.now {
				extraPadDowns[epd.TargetPad] = epd
			}
		}

		touch, hasTouch, finished := evalAction(e.now, a)
		if hasTouch {
			touches = append(touches, touch)
		}
		if !finished {
			kept = append(kept, a)
		}
	}
	e.activeActions = kept
	return touches, extraPadDowns
}

func (e *Engine) resolvePads(touches []touchCircle) (catalogue.PadSet, [64]chart.Action, int) {
	var next catalogue.PadSet
	var source [64]chart.Action
	handCount := 0

	for _, t := range touches {
		cost := 1
		if t.source.Common().RequireTwoHands {
			cost = 2
		}
		handCount += cost

		for _, pad := range geometry.AllPads() {
			if cmplx.Abs(pad.Vec(e.cfg.CanvasSize)-t.center) <= pad.DetectRadius(e.cfg.CanvasSize)+t.radius {
				next |= catalogue.NewPadSet(pad)
				source[pad.Code()] = t.source
			}
		}
	}
	return next, source, handCount
}

func (e *Engine) detectMultiTouch(handCount int, touches []touchCircle) {
	if handCount <= 2 {
		return
	}
	cursors := make([]string, 0, len(touches))
	for _, t := range touches {
		if src := t.source.Common().Source; src != nil {
			cursors = append(cursors, src.Common().Cursor.Text)
		}
	}
	slices.Sort(cursors)
	key := ""
	for _, c := range cursors {
		key += c + "\x00"
	}
	if e.multiTouchSeen[key] {
		return
	}
	e.multiTouchSeen[key] = true

	var affected chart.Cursor
	if len(touches) > 0 {
		if src := touches[0].source.Common().Source; src != nil {
			affected = src.Common().Cursor
		}
	}
	e.logger.Logf(diag.ComponentEngine, diag.LevelInfo,
		"multi-touch at tick %v: hand_count=%d affected=%s", e.now, handCount, affected.Text)

	e.Records = append(e.Records, MuriRecord{
		Kind:      MuriMultiTouch,
		Time:      e.now,
		Affected:  affected,
		HandCount: handCount,
	})
}

func (e *Engine) computeEdges(next catalogue.PadSet, source [64]chart.Action) (map[geometry.Pad]chart.Action, map[geometry.Pad]bool) {
	padDown := make(map[geometry.Pad]chart.Action)
	padUp := make(map[geometry.Pad]bool)
	for _, pad := range geometry.AllPads() {
		wasOn := e.prevPad.Contains(pad)
		isOn := next.Contains(pad)
		if !wasOn && isOn {
			padDown[pad] = source[pad.Code()]
		}
		if wasOn && !isOn {
			padUp[pad] = true
		}
	}
	return padDown, padUp
}

func (e *Engine) dispatchPadDowns(padDown map[geometry.Pad]chart.Action) {
	for _, pad := range geometry.AllPads() {
		src, ok := padDown[pad]
		if !ok {
			continue
		}
		for _, n := range e.activeNotes {
			if onPadDown(e.now, pad, src, n, e.cfg) {
				break
			}
		}
	}
}

func (e *Engine) updateNotes(edges padEdges) {
	for _, n := range e.activeNotes {
		switch note := n.(type) {
		case *chart.Tap:
			updateSimpleNote(e.now, &note.NoteCommon, geometry.TapAvailable)
		case *chart.Hold:
			updateSimpleNote(e.now, &note.NoteCommon, geometry.TapAvailable)
		case *chart.Touch:
			updateSimpleNote(e.now, &note.NoteCommon, geometry.TouchAvailable)
		case *chart.TouchHold:
			updateSimpleNote(e.now, &note.NoteCommon, geometry.TouchAvailable)
		case *chart.TouchGroup:
			for _, child := range note.Children {
				updateSimpleNote(e.now, &child.NoteCommon, geometry.TouchAvailable)
			}
		case *chart.SlideChain:
			updateSlideChain(e.now, note, edges)
		case *chart.Wifi:
			updateWifi(e.now, note, edges, e.cfg.WifiNeedC)
		}
	}
}

func (e *Engine) retire() {
	var remaining []chart.Note
	for _, n := range e.activeNotes {
		if !e.isFinished(n) {
			remaining = append(remaining, n)
			continue
		}
		e.classifyAndRetire(n)
	}
	e.activeNotes = remaining
}

func (e *Engine) isFinished(n chart.Note) bool {
	switch note := n.(type) {
	case *chart.Tap:
		return finishSimple(&note.NoteCommon)
	case *chart.Touch:
		return finishSimple(&note.NoteCommon)
	case *chart.Hold:
		return finishSpanning(e.now, &note.NoteCommon, note.EndMoment)
	case *chart.TouchHold:
		return finishSpanning(e.now, &note.NoteCommon, note.EndMoment)
	case *chart.TouchGroup:
		return finishTouchGroup(note)
	case *chart.SlideChain:
		return note.Judge != chart.NotYet
	case *chart.Wifi:
		return note.Judge != chart.NotYet
	default:
		return true
	}
}

func (e *Engine) classifyAndRetire(n chart.Note) {
	sc, isSlide := n.(*chart.SlideChain)
	if isSlide && sc.Judge == chart.Bad {
		e.logger.Logf(diag.ComponentEngine, diag.LevelInfo,
			"slide-too-fast at tick %v: cursor=%s", e.now, sc.Cursor.Text)
		e.Records = append(e.Records, slideTooFastRecord(sc.Cursor, e.now, sc.AreaJudgeActions))
		return
	}
	if n.Common().Judge == chart.Bad {
		// Simple-note/Wifi Bad outcomes without a slide-progression log
		// are covered by the static checker's own categories; nothing
		// further to classify dynamically here.
		return
	}
}

func slideTooFastRecord(cursor chart.Cursor, now geometry.Tick, log []chart.AreaJudgeLog) MuriRecord {
	areas := make([]AreaJudgeEntry, len(log))
	for i, l := range log {
		if l.Action == nil {
			areas[i] = AreaJudgeEntry{Skipped: true}
			continue
		}
		cause := ""
		if src := l.Action.Common().Source; src != nil {
			cause = src.Common().Cursor.Text
		}
		areas[i] = AreaJudgeEntry{Cause: cause, Time: l.Time}
	}
	return MuriRecord{
		Kind:       MuriSlideTooFast,
		Time:       now,
		Affected:   cursor,
		JudgeAreas: areas,
	}
}
