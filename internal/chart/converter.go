package chart

import (
	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

// Convert produces a time-ordered action list from a note list (spec
// §4.3). The caller must have already run GroupTouches and
// DeriveChainingFlags over notes, since the conversion rules below
// read IsSlideHead/TailOnSlideHead/OnSlide/BeforeSlide/AfterSlide.
func Convert(notes []Note, cfg *config.Config) []Action {
	var actions []Action
	for _, n := range notes {
		switch note := n.(type) {
		case *Tap:
			if note.IsSlideHead {
				continue // covered by the slide's own star + ExtraPadDown
			}
			actions = append(actions, newPress(note, note.Moment, 0, note.Pad.Vec(cfg.CanvasSize), cfg.HandRadiusNormal, false, cfg))

		case *Touch:
			if note.OnSlide {
				continue
			}
			actions = append(actions, newPress(note, note.Moment, 0, note.Pad.Vec(cfg.CanvasSize), cfg.HandRadiusNormal, false, cfg))

		case *TouchGroup:
			if note.OnSlide {
				continue
			}
			actions = append(actions, newPress(note, note.Moment, 0, note.Center, note.Radius, false, cfg))

		case *Hold:
			actions = append(actions, newPress(note, note.Moment, note.Duration, note.Pad.Vec(cfg.CanvasSize), cfg.HandRadiusNormal, note.TailOnSlideHead, cfg))

		case *TouchHold:
			actions = append(actions, newPress(note, note.Moment, note.Duration, note.Pad.Vec(cfg.CanvasSize), cfg.HandRadiusNormal, false, cfg))

		case *SlideChain:
			actions = append(actions, convertSlideChain(note, cfg)...)

		case *Wifi:
			actions = append(actions, convertWifi(note, cfg)...)
		}
	}
	return StableSortActionsByMoment(actions)
}

func newPress(source Note, moment, duration geometry.Tick, position complex128, radius float64, tailless bool, cfg *config.Config) *Press {
	extra := geometry.Tick(0)
	if !tailless {
		extra = cfg.ReleaseDelay
	}
	return &Press{
		ActionCommon: ActionCommon{Source: source, Moment: moment, RequireTwoHands: radius > cfg.HandRadiusMax},
		Position:     position,
		Radius:       radius,
		Duration:     duration,
		EndMoment:    moment + duration + extra,
	}
}

func newSlide(source Note, moment, duration geometry.Tick, path geometry.Curve, radius float64, tailless, isWifi bool, cfg *config.Config) *Slide {
	extra := geometry.Tick(0)
	if !tailless {
		extra = cfg.ReleaseDelay
	}
	return &Slide{
		ActionCommon: ActionCommon{Source: source, Moment: moment, RequireTwoHands: radius > cfg.HandRadiusMax},
		Path:         path,
		Duration:     duration,
		Radius:       radius,
		EndMoment:    moment + duration + extra,
		IsWifi:       isWifi,
	}
}

func convertSlideChain(note *SlideChain, cfg *config.Config) []Action {
	var actions []Action

	if !note.AfterSlide {
		firstAreaDuration := geometry.Tick(note.PadEntryTimes[0])
		if len(note.PadEntryTimes) > 1 {
			firstAreaDuration = geometry.Tick(note.PadEntryTimes[1] - note.PadEntryTimes[0])
		}
		delay := cfg.ExtraPaddownDelay
		if firstAreaDuration < delay {
			delay = firstAreaDuration
		}
		actions = append(actions, &ExtraPadDown{
			ActionCommon: ActionCommon{Source: note, Moment: note.ShootMoment + delay},
			TargetPad:    note.Segments[0].Shape.Start,
		})
	}

	segmentStart := note.ShootMoment
	for i, seg := range note.Segments {
		isLast := i == len(note.Segments)-1
		tailless := !isLast || note.BeforeSlide
		actions = append(actions, newSlide(note, segmentStart, seg.Duration, seg.Shape.VisualPath, cfg.HandRadiusNormal, tailless, false, cfg))
		segmentStart += seg.Duration
	}
	return actions
}

func convertWifi(note *Wifi, cfg *config.Config) []Action {
	actions := []Action{&ExtraPadDown{
		ActionCommon: ActionCommon{Source: note, Moment: note.ShootMoment + cfg.ExtraPaddownDelay},
		TargetPad:    note.Shape.Start,
	}}

	duration := note.EndMoment - note.ShootMoment
	outerLanes := []int{0, 2}
	for _, laneIdx := range outerLanes {
		lane := note.Shape.Lanes[laneIdx]
		actions = append(actions, newSlide(note, note.ShootMoment, duration, lane.RealHandPath, cfg.HandRadiusWifi, true, true, cfg))
	}
	return actions
}
