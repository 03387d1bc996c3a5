// Package catalogue is the slide geometry catalogue (spec §2, §4.1):
// the parametric paths, judge-area progressions and pad-entry-time
// tables for every slide shape a chart can reference, generated once
// from a handful of canonical templates by rotation and reflection.
package catalogue

import "simaimuri/internal/geometry"

// Shape is one entry of the catalogue: a slide's visual path, the
// "real hand" path a perfect player's hand actually follows (may
// differ from the visual path, spec §4.1), and the ordered judge-area
// progression the dynamic engine advances the slide note through.
type Shape struct {
	Key   string
	Start geometry.Pad
	End   geometry.Pad

	VisualPath   geometry.Curve
	RealHandPath geometry.Curve

	// JudgeSequence and PadEntryTimes are parallel: JudgeSequence[i] is
	// the set of pads that satisfy progression step i, and
	// PadEntryTimes[i] is the path parameter t in [0,1] at which the
	// path reaches that step's area. Both monotonic in i.
	JudgeSequence []PadSet
	PadEntryTimes []float64

	IsL        bool
	IsSpecialL bool

	IsWifi bool
	Lanes  []WifiLane // populated only when IsWifi

	// CriticalProportion is the fraction of the shape's final segment
	// duration over which the critical judgement window still applies
	// (spec §3's critical_moment formula). Straight and circular shapes
	// resolve critical all the way to the end (1.0); bending shapes
	// (curves, L-shapes, wifi) tighten slightly because the last bit of
	// travel is harder to land exactly on time.
	CriticalProportion float64
}

// WifiLane is one of a wifi slide's three parallel paths (spec §4.1,
// §12): the real hand sometimes follows a tighter path than the
// rendered one, which is why each lane carries its own RealHandPath.
type WifiLane struct {
	VisualPath    geometry.Curve
	RealHandPath  geometry.Curve
	JudgeSequence []PadSet
	PadEntryTimes []float64
}

// LastPadEntry returns the shape's final (pad, t) pair, used by the
// slide path sanity check (spec §8): the path's endpoint at that t
// must land within the last judge area's pad radius.
func (s *Shape) LastPadEntry() (PadSet, float64) {
	n := len(s.JudgeSequence)
	return s.JudgeSequence[n-1], s.PadEntryTimes[n-1]
}

// PointAt and TangentAt evaluate the shape's visual path scaled to
// canvasSize; catalogue curves are authored in reference (1080-canvas)
// units, same convention as geometry.Pad.Vec.
func (s *Shape) PointAt(t, canvasSize float64) complex128 {
	return s.VisualPath.Point(t) * complex(canvasSize/geometry.ReferenceCanvas, 0)
}

func (s *Shape) TangentAt(t float64) complex128 {
	return s.VisualPath.Tangent(t)
}

// RealHandPointAt evaluates the real-hand path (which may diverge
// from the visual one), scaled to canvasSize.
func (s *Shape) RealHandPointAt(t, canvasSize float64) complex128 {
	return s.RealHandPath.Point(t) * complex(canvasSize/geometry.ReferenceCanvas, 0)
}
