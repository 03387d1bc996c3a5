package catalogue

import (
	"math/cmplx"

	"simaimuri/internal/geometry"
)

// angleOf returns a pad's angular position (radians) used to build
// circle-shape arcs; C has no meaningful angle and is never passed here.
func angleOf(p geometry.Pad) float64 {
	return cmplx.Phase(p.RefVec())
}

func vecAbs(z complex128) float64 {
	return cmplx.Abs(z)
}
