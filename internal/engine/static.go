package engine

import (
	"simaimuri/internal/chart"
	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

// simpleNote is the subset of the Note variants the overlap check
// treats uniformly: everything with a single pad and a moment.
type simpleNote struct {
	cursor    chart.Cursor
	pad       geometry.Pad
	moment    geometry.Tick
	endMoment geometry.Tick // equals moment for Tap/Touch
	isHold    bool
}

func collectSimpleNotes(notes []chart.Note) []simpleNote {
	var out []simpleNote
	for _, n := range notes {
		switch note := n.(type) {
		case *chart.Tap:
			out = append(out, simpleNote{cursor: note.Cursor, pad: note.Pad, moment: note.Moment, endMoment: note.Moment})
		case *chart.Hold:
			out = append(out, simpleNote{cursor: note.Cursor, pad: note.Pad, moment: note.Moment, endMoment: note.EndMoment, isHold: true})
		case *chart.Touch:
			out = append(out, simpleNote{cursor: note.Cursor, pad: note.Pad, moment: note.Moment, endMoment: note.Moment})
		case *chart.TouchHold:
			out = append(out, simpleNote{cursor: note.Cursor, pad: note.Pad, moment: note.Moment, endMoment: note.EndMoment, isHold: true})
		}
	}
	return out
}

// CheckOverlap flags pairs of simple notes sharing a pad within
// OVERLAY_THRESHOLD, plus Hold x Hold span overlap (spec §4.5).
func CheckOverlap(notes []chart.Note, cfg *config.Config) []MuriRecord {
	simples := collectSimpleNotes(notes)
	var records []MuriRecord

	for i := 0; i < len(simples); i++ {
		for j := i + 1; j < len(simples); j++ {
			a, b := simples[i], simples[j]
			if a.pad != b.pad {
				continue
			}

			flagged := (a.moment - b.moment).Abs() <= cfg.OverlayThreshold
			if !flagged && a.isHold && b.isHold {
				flagged = withinHoldSpan(a, b) || withinHoldSpan(b, a)
			}
			if !flagged {
				continue
			}

			other := b.cursor
			records = append(records, MuriRecord{
				Kind:     MuriOverlap,
				Time:     a.moment,
				Affected: a.cursor,
				Other:    &other,
				Delta:    b.moment - a.moment,
			})
		}
	}
	return records
}

func withinHoldSpan(a, b simpleNote) bool {
	lo := b.moment
	hi := b.endMoment
	return a.moment >= lo && a.moment <= hi
}

// CheckSlideHeadTap flags a Tap/Hold sharing a slide's start pad whose
// moment falls in [TAP_ON_SLIDE_THRESHOLD, COLLIDE_THRESHOLD] ticks
// after the slide's shoot_moment (spec §4.5).
func CheckSlideHeadTap(notes []chart.Note, cfg *config.Config) []MuriRecord {
	var records []MuriRecord
	for _, slide := range slideStartInfo(notes) {
		for _, n := range notes {
			var cursor chart.Cursor
			var pad geometry.Pad
			var moment geometry.Tick
			switch note := n.(type) {
			case *chart.Tap:
				cursor, pad, moment = note.Cursor, note.Pad, note.Moment
			case *chart.Hold:
				cursor, pad, moment = note.Cursor, note.Pad, note.Moment
			default:
				continue
			}
			if pad != slide.startPad {
				continue
			}
			delta := moment - slide.shootMoment
			if delta >= cfg.TapOnSlideThreshold && delta <= cfg.CollideThreshold {
				records = append(records, MuriRecord{
					Kind:     MuriSlideHeadTap,
					Time:     moment,
					Affected: cursor,
					Other:    &slide.cursor,
					Delta:    delta,
				})
			}
		}
	}
	return records
}

type slideInfo struct {
	cursor      chart.Cursor
	startPad    geometry.Pad
	shootMoment geometry.Tick
	endMoment   geometry.Tick
	// collidePads/enterTimes describe the per-pad collide intervals
	// along the path, in traversal order; the last entry's interval is
	// stretched to endMoment+CollideExtraDelta.
	collidePads []geometry.Pad
	enterTimes  []geometry.Tick
	isWifi      bool
}

func slideStartInfo(notes []chart.Note) []slideInfo {
	var out []slideInfo
	for _, n := range notes {
		switch note := n.(type) {
		case *chart.SlideChain:
			if len(note.Segments) == 0 {
				continue
			}
			var pads []geometry.Pad
			var times []geometry.Tick
			for i, area := range note.JudgeSequence {
				ps := area.Pads()
				if len(ps) == 0 {
					continue
				}
				pads = append(pads, ps[0])
				times = append(times, geometry.Tick(note.PadEntryTimes[i])-note.ShootMoment)
			}
			out = append(out, slideInfo{
				cursor:      note.Cursor,
				startPad:    note.Segments[0].Shape.Start,
				shootMoment: note.ShootMoment,
				endMoment:   note.EndMoment,
				collidePads: pads,
				enterTimes:  times,
			})
		case *chart.Wifi:
			// Wifi's tap-on-slide interval only covers the start pad
			// and the three lane end pads (spec §4.5).
			pads := []geometry.Pad{note.Shape.Start}
			times := []geometry.Tick{0}
			for _, lane := range note.Shape.Lanes {
				ps := lane.JudgeSequence[len(lane.JudgeSequence)-1].Pads()
				if len(ps) == 0 {
					continue
				}
				pads = append(pads, ps[0])
				times = append(times, note.EndMoment-note.ShootMoment)
			}
			out = append(out, slideInfo{
				cursor:      note.Cursor,
				startPad:    note.Shape.Start,
				shootMoment: note.ShootMoment,
				endMoment:   note.EndMoment,
				collidePads: pads,
				enterTimes:  times,
				isWifi:      true,
			})
		}
	}
	return out
}

// CheckTapOnSlide flags a Tap whose pad and moment fall inside a
// slide's per-pad collide interval along its path (spec §4.5).
func CheckTapOnSlide(notes []chart.Note, cfg *config.Config) []MuriRecord {
	var records []MuriRecord
	for _, slide := range slideStartInfo(notes) {
		for i, pad := range slide.collidePads {
			enter := slide.shootMoment + slide.enterTimes[i]
			lo := enter - geometry.CollideExtraDelta
			if floor := slide.shootMoment + cfg.TapOnSlideThreshold; lo < floor {
				lo = floor
			}
			hi := enter + cfg.CollideThreshold
			if i == len(slide.collidePads)-1 {
				hi = slide.endMoment + geometry.CollideExtraDelta
			}

			for _, n := range notes {
				tap, ok := n.(*chart.Tap)
				if !ok || tap.Pad != pad {
					continue
				}
				if tap.Moment >= lo && tap.Moment <= hi {
					slideCursor := slide.cursor
					records = append(records, MuriRecord{
						Kind:     MuriTapOnSlide,
						Time:     tap.Moment,
						Affected: tap.Cursor,
						Other:    &slideCursor,
						Delta:    tap.Moment - enter,
					})
				}
			}
		}
	}
	return records
}

// CheckAll runs every static check and concatenates the results.
func CheckAll(notes []chart.Note, cfg *config.Config) []MuriRecord {
	var out []MuriRecord
	out = append(out, CheckOverlap(notes, cfg)...)
	out = append(out, CheckSlideHeadTap(notes, cfg)...)
	out = append(out, CheckTapOnSlide(notes, cfg)...)
	return out
}
