package chart

import (
	"fmt"

	"simaimuri/internal/catalogue"
	"simaimuri/internal/geometry"
)

// WifiLaneState is one lane's live progress through its own
// lane-specific judge sequence (spec §4.4).
type WifiLaneState struct {
	CurAreaIdx int
	Pressing   *geometry.Pad
	Finished   bool
}

// Wifi is the three-lane fan-shaped slide (spec §3 table, §4.4).
// FLAG_WIFI_NEED_C gates judgement on an additional pad-C release
// edge when the configured legacy rule is enabled (spec §6) — that
// rule is a global config toggle (`config.Config.WifiNeedC`), not a
// per-note property, so it is read by the engine at judgement time
// rather than stored here.
type Wifi struct {
	NoteCommon

	Shape *catalogue.Shape // IsWifi shape, carries Lanes

	WaitDuration    geometry.Tick
	ShootMoment     geometry.Tick
	EndMoment       geometry.Tick
	CriticalMoment  geometry.Tick
	CriticalDelta   geometry.Tick
	AvailableMoment geometry.Tick

	Lanes [3]WifiLaneState

	PadCPassed bool
}

func (n *Wifi) Common() *NoteCommon              { return &n.NoteCommon }
func (n *Wifi) JudgementMomentKey() geometry.Tick { return n.CriticalMoment }

// NewWifi builds a Wifi note from its catalogue shape and timing,
// deriving the same moment family a SlideChain does (spec §3).
func NewWifi(cursor Cursor, moment, waitDuration, duration geometry.Tick, shape *catalogue.Shape) (*Wifi, error) {
	if !shape.IsWifi {
		return nil, fmt.Errorf("chart: wifi note at %v references non-wifi shape %q", cursor, shape.Key)
	}
	shootMoment := moment + waitDuration
	endMoment := shootMoment + duration
	criticalMoment := endMoment - geometry.Tick(1-shape.CriticalProportion)*duration
	criticalDelta := geometry.SlideCritical + duration/4
	if criticalDelta > geometry.SlideAvailable {
		criticalDelta = geometry.SlideAvailable
	}
	return &Wifi{
		NoteCommon:      NoteCommon{Cursor: cursor, Moment: moment},
		Shape:           shape,
		WaitDuration:    waitDuration,
		ShootMoment:     shootMoment,
		EndMoment:       endMoment,
		CriticalMoment:  criticalMoment,
		CriticalDelta:   criticalDelta,
		AvailableMoment: shootMoment - geometry.SlideLeading,
	}, nil
}

// AllLanesFinished reports whether every lane has completed its
// progression.
func (n *Wifi) AllLanesFinished() bool {
	for _, l := range n.Lanes {
		if !l.Finished {
			return false
		}
	}
	return true
}
