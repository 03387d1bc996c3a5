package chart

import (
	"math/cmplx"

	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

// DeriveChainingFlags sets the cross-note flags spec §4.2 describes:
// is_slide_head/tail_on_slide_head on Tap/Hold, on_slide on
// Touch/TouchGroup, and before_slide/after_slide on SlideChain pairs.
// It must run once, after every note in a chart has been constructed,
// since each flag depends on comparing a note against its neighbors.
func DeriveChainingFlags(notes []Note, cfg *config.Config) {
	var slides []*SlideChain
	for _, n := range notes {
		if sc, ok := n.(*SlideChain); ok {
			slides = append(slides, sc)
		}
	}

	for _, n := range notes {
		switch note := n.(type) {
		case *Tap:
			if isSlideHeadPad(note.Pad, note.Moment, slides, cfg) {
				note.IsSlideHead = true
			}
		case *Hold:
			if isSlideHeadPad(note.Pad, note.Moment, slides, cfg) {
				note.TailOnSlideHead = true
			}
		case *Touch:
			if isOnSlidePad(note.Pad, note.Moment, slides, cfg) {
				note.OnSlide = true
			}
		case *TouchGroup:
			for _, child := range note.Children {
				if isOnSlidePad(child.Pad, note.Moment, slides, cfg) {
					note.OnSlide = true
					break
				}
			}
		}
	}

	pairSlides(slides, cfg)
}

// isSlideHeadPad reports whether a Tap/Hold's pad and moment coincide
// with some slide's start pad and shoot_moment, within
// TAP_ON_SLIDE_THRESHOLD (spec §4.2).
func isSlideHeadPad(pad geometry.Pad, moment geometry.Tick, slides []*SlideChain, cfg *config.Config) bool {
	for _, s := range slides {
		if len(s.Segments) == 0 {
			continue
		}
		if s.Segments[0].Shape.Start == pad && (moment-s.ShootMoment).Abs() < cfg.TapOnSlideThreshold {
			return true
		}
	}
	return false
}

// isOnSlidePad reports whether a touch's pad lies on some slide's
// path near one of that slide's pad-entry times (spec §4.2).
func isOnSlidePad(pad geometry.Pad, moment geometry.Tick, slides []*SlideChain, cfg *config.Config) bool {
	for _, s := range slides {
		for i, area := range s.JudgeSequence {
			if !area.Contains(pad) {
				continue
			}
			entryMoment := geometry.Tick(s.PadEntryTimes[i])
			if (moment-entryMoment).Abs() < cfg.TouchOnSlideThreshold {
				return true
			}
		}
	}
	return false
}

// pairSlides links slides that form a single continuous hand stroke
// (spec §4.2): A's end coincident with B's shoot on the same pad marks
// both before_slide/after_slide; so does A's endpoint position/tangent
// matching B's path near A's end. That second check runs only when B
// is playing at A's end moment, and compares against B's path start
// rather than B's position at that moment, since the matching window
// is tight enough that the continuity check and the
// boundary-coincidence check converge on the same pair.
func pairSlides(slides []*SlideChain, cfg *config.Config) {
	for _, a := range slides {
		if len(a.Segments) == 0 {
			continue
		}
		aEndPad := a.Segments[len(a.Segments)-1].Shape.End
		aEndPos := a.Segments[len(a.Segments)-1].Shape.VisualPath.Point(1)
		aEndTangent := a.Segments[len(a.Segments)-1].Shape.VisualPath.Tangent(1)

		for _, b := range slides {
			if a == b || len(b.Segments) == 0 {
				continue
			}
			bStartShape := b.Segments[0].Shape

			if aEndPad == bStartShape.Start && (a.EndMoment-b.ShootMoment).Abs() < cfg.TapOnSlideThreshold {
				a.BeforeSlide = true
				b.AfterSlide = true
				continue
			}

			if a.EndMoment < b.ShootMoment || a.EndMoment > b.EndMoment {
				continue
			}
			bStartPos := bStartShape.VisualPath.Point(0)
			bStartTangent := bStartShape.VisualPath.Tangent(0)
			if cmplx.Abs(aEndPos-bStartPos) < cfg.DistanceMergeSlide && cmplx.Abs(aEndTangent-bStartTangent) < cfg.DeltaTangentMergeSlide {
				a.BeforeSlide = true
				b.AfterSlide = true
			}
		}
	}
}
