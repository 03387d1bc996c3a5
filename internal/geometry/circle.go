package geometry

import (
	"math/cmplx"
	"math/rand"
)

// Circle is a minimal bounding disc: Center plus Radius.
type Circle struct {
	Center complex128
	Radius float64
}

func (c Circle) contains(p complex128, eps float64) bool {
	return cmplx.Abs(p-c.Center) <= c.Radius+eps
}

const circleEps = 1e-7

func circleFromOne(p complex128) Circle {
	return Circle{Center: p, Radius: 0}
}

func circleFromTwo(a, b complex128) Circle {
	center := (a + b) / 2
	return Circle{Center: center, Radius: cmplx.Abs(a - center)}
}

// circleFromThree returns the unique circle through three points,
// degenerating gracefully (returning the two-point circle covering
// all three) when the points are collinear.
func circleFromThree(a, b, c complex128) Circle {
	ax, ay := real(a), imag(a)
	bx, by := real(b), imag(b)
	cx, cy := real(c), imag(c)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		// Collinear: fall back to the widest of the three pairwise circles.
		candidates := []Circle{circleFromTwo(a, b), circleFromTwo(a, c), circleFromTwo(b, c)}
		best := candidates[0]
		for _, cand := range candidates[1:] {
			if cand.Radius > best.Radius {
				best = cand
			}
		}
		return best
	}

	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := complex(ux, uy)
	return Circle{Center: center, Radius: cmplx.Abs(a - center)}
}

// SmallestEnclosingCircle computes the minimum-radius disc covering
// every point, via Welzl's randomized incremental algorithm
// (expected linear time). Used for TouchGroup centers (spec §4.2) and
// for any other min-enclosing-circle need.
func SmallestEnclosingCircle(points []complex128) Circle {
	if len(points) == 0 {
		return Circle{}
	}
	shuffled := make([]complex128, len(points))
	copy(shuffled, points)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	circle := circleFromOne(shuffled[0])
	for i := 1; i < len(shuffled); i++ {
		p := shuffled[i]
		if circle.contains(p, circleEps) {
			continue
		}
		circle = circleFromOne(p)
		for j := 0; j < i; j++ {
			q := shuffled[j]
			if circle.contains(q, circleEps) {
				continue
			}
			circle = circleFromTwo(p, q)
			for k := 0; k < j; k++ {
				r := shuffled[k]
				if circle.contains(r, circleEps) {
					continue
				}
				circle = circleFromThree(p, q, r)
			}
		}
	}
	return circle
}
