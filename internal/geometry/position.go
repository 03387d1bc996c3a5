package geometry

import (
	"math"
	"math/cmplx"
)

// ReferenceCanvas is the canvas side (in pixels) all reference
// distances below are expressed in; callers scale by canvasSize/1080
// per spec §3/§6.
const ReferenceCanvas = 1080.0

// ring holds the reference-canvas geometry for one pad group.
type ring struct {
	radius       float64 // distance from canvas center, reference units
	detectRadius float64 // touch detection radius, reference units
	angleOffset  float64 // degrees added to the group-aligned angle
}

var rings = map[Group]ring{
	GroupA: {radius: 450, detectRadius: 100, angleOffset: 0},
	GroupE: {radius: 370, detectRadius: 70, angleOffset: 22.5},
	GroupD: {radius: 300, detectRadius: 70, angleOffset: 0},
	GroupB: {radius: 230, detectRadius: 80, angleOffset: 0},
	GroupC: {radius: 0, detectRadius: 100, angleOffset: 0},
}

// angleSlot maps a ring index (0..7, 0 == key "8") to its 45°-multiple
// slot such that key 1 sits on the positive real axis (slot 0). This
// places the 1-5 axis on the real axis, so reflection about it is
// exactly complex conjugation — matching the slide catalogue's own
// reflection rule (§4.1).
func angleSlot(index int) int {
	return (index + 7) % 8
}

// angleDegrees returns the pad's angular position in degrees, CCW from
// the positive real axis.
func (p Pad) angleDegrees() float64 {
	r := rings[p.Group()]
	return float64(angleSlot(p.Index()))*45.0 + r.angleOffset
}

// RefVec returns the pad's center position, in reference (1080-canvas) units.
func (p Pad) RefVec() complex128 {
	r := rings[p.Group()]
	if r.radius == 0 {
		return 0
	}
	rad := p.angleDegrees() * math.Pi / 180.0
	return complex(r.radius*math.Cos(rad), r.radius*math.Sin(rad))
}

// RefDetectRadius returns the pad's detection radius, in reference (1080-canvas) units.
func (p Pad) RefDetectRadius() float64 {
	return rings[p.Group()].detectRadius
}

// CenterOffset returns the pad's center offset vector. All pads in
// this implementation are offset-free (their detection disc is
// centered exactly on RefVec); the field exists so callers matching
// spec §3's per-pad data ("a center offset vector") have somewhere to
// plug in asymmetric calibration data if it's ever needed.
func (p Pad) CenterOffset() complex128 {
	return 0
}

// Vec returns the pad's center position scaled to canvasSize.
func (p Pad) Vec(canvasSize float64) complex128 {
	scale := canvasSize / ReferenceCanvas
	return p.RefVec()*complex(scale, 0) + p.CenterOffset()*complex(scale, 0)
}

// DetectRadius returns the pad's detection radius scaled to canvasSize.
func (p Pad) DetectRadius(canvasSize float64) float64 {
	return p.RefDetectRadius() * canvasSize / ReferenceCanvas
}

// UnitVec returns the unit vector from canvas center to the pad (zero for C).
func (p Pad) UnitVec() complex128 {
	v := p.RefVec()
	if v == 0 {
		return 0
	}
	return v / complex(cmplx.Abs(v), 0)
}
