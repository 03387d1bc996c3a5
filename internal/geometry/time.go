package geometry

// Tick is the engine's time quantum: 1/180 s, three ticks per 60 Hz
// display frame. All note/action timestamps and durations are ticks.
type Tick float64

// Fixed constants (spec §6). These are never part of runtime
// configuration — they describe the engine's time base and the
// game's judgement windows, which do not vary per chart.
const (
	JudgeTPF Tick = 3   // ticks per 60 Hz frame
	JudgeTPS Tick = 180 // ticks per second

	TapCritical   Tick = 3
	TapAvailable  Tick = 27
	TouchCritical Tick = 27
	TouchAvailable Tick = 27

	SlideCritical    Tick = 42
	SlideAvailable   Tick = 108
	SlideLeading     Tick = 15
	SlideDeltaShift  Tick = 9
	FakeHoldDuration Tick = 3

	// CollideExtraDelta extends the tap-on-slide collide interval past
	// a judge area's own window (spec §4.5, §9 open question on
	// COLLIDE_TAIL_THRESHOLD). Resolved as one judge frame (JudgeTPF
	// ticks), a fixed constant rather than a configuration key.
	CollideExtraDelta Tick = JudgeTPF
)

// Seconds converts a tick duration to real seconds.
func (t Tick) Seconds() float64 {
	return float64(t) / float64(JudgeTPS)
}

// Abs returns the absolute value of a tick duration.
func (t Tick) Abs() Tick {
	if t < 0 {
		return -t
	}
	return t
}
