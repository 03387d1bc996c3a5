// Package engine is the dynamic judgement engine and the static muri
// checker (spec §4.4, §4.5): the discrete-time simulator that plays a
// chart the way a perfect player would, and the note-list-only
// analysis that flags configurations no player could ever play
// Critical.
package engine

import (
	"simaimuri/internal/chart"
	"simaimuri/internal/geometry"
)

// MuriKind is the classification of an unplayable-perfectly outcome.
type MuriKind int

const (
	MuriOverlap MuriKind = iota
	MuriSlideHeadTap
	MuriTapOnSlide
	MuriSlideTooFast
	MuriMultiTouch
)

func (k MuriKind) String() string {
	switch k {
	case MuriOverlap:
		return "Overlap"
	case MuriSlideHeadTap:
		return "SlideHeadTap"
	case MuriTapOnSlide:
		return "TapOnSlide"
	case MuriSlideTooFast:
		return "SlideTooFast"
	case MuriMultiTouch:
		return "MultiTouch"
	default:
		return "?"
	}
}

// AreaJudgeEntry renders one area's judgement log for a SlideTooFast
// record: either what consumed it, or that it was skipped.
type AreaJudgeEntry struct {
	Cause   string
	Time    geometry.Tick
	Skipped bool
}

// MuriRecord is one flagged configuration (spec §6's output contract).
// Not every field is populated for every Kind; see the static/dynamic
// checkers for which fields each Kind sets.
type MuriRecord struct {
	Kind     MuriKind
	Time     geometry.Tick // the moment the record anchors to
	Affected chart.Cursor
	Other    *chart.Cursor // second note, for Overlap/SlideHeadTap/TapOnSlide pairs

	Cause     string        // what produced the conflicting edge
	Delta     geometry.Tick // signed; positive == late
	HandCount int           // MultiTouch only

	JudgeAreas []AreaJudgeEntry // SlideTooFast only
}

// Seconds converts Time to real seconds for report rendering.
func (r MuriRecord) Seconds() float64 { return r.Time.Seconds() }

// DeltaSeconds converts Delta to real seconds for report rendering.
func (r MuriRecord) DeltaSeconds() float64 { return r.Delta.Seconds() }
