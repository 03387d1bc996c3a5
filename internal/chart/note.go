// Package chart is the note/action data model (spec §3, §4.2, §4.3):
// immutable-after-parse note records, the actions a perfect player's
// hands take in response to them, and the derivations (touch
// grouping, slide chaining flags, combo numbers, the note-to-action
// converter) that turn a bare note list into something the judge
// engine can tick.
package chart

import (
	"sort"

	"simaimuri/internal/geometry"
)

// JudgeState is a note's outcome as the dynamic engine sees it.
type JudgeState int

const (
	NotYet JudgeState = iota
	Critical
	Bad
)

func (j JudgeState) String() string {
	switch j {
	case NotYet:
		return "NotYet"
	case Critical:
		return "Critical"
	case Bad:
		return "Bad"
	default:
		return "?"
	}
}

// Cursor locates a note in its source chart text, carried only for
// reporting (spec §3) — the core never parses or re-derives it.
type Cursor struct {
	Line   int
	Column int
	Text   string
}

// NoteCommon holds the fields every note variant shares. The dynamic
// engine mutates Judge/JudgeMoment/JudgeAction in place as it
// processes pad-down events; everything else is set once at parse
// time and never changes.
type NoteCommon struct {
	Cursor      Cursor
	Moment      geometry.Tick
	Judge       JudgeState
	JudgeMoment geometry.Tick
	JudgeAction Action
	ComboNumber int
}

// Note is implemented by every note variant in the §3 table. The
// engine type-switches on the concrete type to run each variant's
// state machine; this interface only exposes what's common and what's
// needed to sort/group notes before simulation starts.
type Note interface {
	Common() *NoteCommon
	// JudgementMomentKey is the sort key used for combo numbering
	// (spec §4.2): slides key on critical_moment, holds on end_moment,
	// everything else on moment.
	JudgementMomentKey() geometry.Tick
}

// Tap is a single-pad note (spec §3 table).
type Tap struct {
	NoteCommon
	Pad         geometry.Pad
	IsSlideHead bool
}

func (n *Tap) Common() *NoteCommon                { return &n.NoteCommon }
func (n *Tap) JudgementMomentKey() geometry.Tick  { return n.Moment }

// Hold is a Tap held for Duration.
type Hold struct {
	NoteCommon
	Pad             geometry.Pad
	Duration        geometry.Tick
	EndMoment       geometry.Tick
	TailOnSlideHead bool
}

func (n *Hold) Common() *NoteCommon               { return &n.NoteCommon }
func (n *Hold) JudgementMomentKey() geometry.Tick { return n.EndMoment }

// Touch is a Tap on any of the 33 pads (not just the 8 star keys),
// with touch-specific timing windows.
type Touch struct {
	NoteCommon
	Pad     geometry.Pad
	OnSlide bool
	Group   *TouchGroup // nil unless clustered (spec §4.2)
}

func (n *Touch) Common() *NoteCommon               { return &n.NoteCommon }
func (n *Touch) JudgementMomentKey() geometry.Tick { return n.Moment }

// TouchHold is a Touch held for Duration.
type TouchHold struct {
	NoteCommon
	Pad       geometry.Pad
	Duration  geometry.Tick
	EndMoment geometry.Tick
}

func (n *TouchHold) Common() *NoteCommon               { return &n.NoteCommon }
func (n *TouchHold) JudgementMomentKey() geometry.Tick { return n.EndMoment }

// SortByJudgementMoment assigns 1..N combo numbers in judgement-moment
// order (spec §4.2), breaking ties by original slice order (stable).
func SortByJudgementMoment(notes []Note) []Note {
	sorted := make([]Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].JudgementMomentKey() < sorted[j].JudgementMomentKey()
	})
	for i, n := range sorted {
		n.Common().ComboNumber = i + 1
	}
	return sorted
}
