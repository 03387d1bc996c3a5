package catalogue

import "simaimuri/internal/geometry"

// canonicalRecipes lists the catalogue's base templates, each anchored
// at start key 1. Init rotates and reflects every one of these into
// its full set of board positions (straight and circle templates are
// rotated only; see instantiate).
func canonicalRecipes() []recipe {
	var out []recipe
	out = append(out, straightRecipes()...)
	out = append(out, circleRecipes()...)
	out = append(out, uCurveRecipes()...)
	out = append(out, cupCurveRecipes()...)
	out = append(out, lightningRecipe())
	out = append(out, vShapeRecipes()...)
	out = append(out, lShapeRecipes()...)
	out = append(out, wifiRecipe())
	return out
}

func key(idx int) pt { return pt{geometry.GroupA, idx} }
func midB(idx int) pt { return pt{geometry.GroupB, idx} }
func midD(idx int) pt { return pt{geometry.GroupD, idx} }
func midE(idx int) pt { return pt{geometry.GroupE, idx} }
func center() pt       { return pt{geometry.GroupC, 0} }

func fractions(n int) []float64 {
	fs := make([]float64, n)
	for i := range fs {
		fs[i] = float64(i) / float64(n-1)
	}
	return fs
}

func linePath(a, b pt) func(resolve func(pt) geometry.Pad) geometry.Curve {
	return func(resolve func(pt) geometry.Pad) geometry.Curve {
		return geometry.Line{P0: resolve(a).RefVec(), P1: resolve(b).RefVec()}
	}
}

// straightRecipes covers "1-k" for k in {3,4,5,6,7}, i.e. distance
// 2..6 steps around the A ring, passing through the B ring on the way.
func straightRecipes() []recipe {
	var recipes []recipe
	for d := 2; d <= 6; d++ {
		d := d
		end := 1 + d
		judgePoints := make([][]pt, d+1)
		judgePoints[0] = []pt{key(1)}
		for i := 1; i < d; i++ {
			judgePoints[i] = []pt{midB(1 + i)}
		}
		judgePoints[d] = []pt{key(end)}

		recipes = append(recipes, recipe{
			shapeChar:      "-",
			start:          key(1),
			end:            key(end),
			judgePoints:    judgePoints,
			entryFractions: fractions(d + 1),
			path: func(resolve func(pt) geometry.Pad) geometry.Curve {
				return geometry.Line{P0: resolve(key(1)).RefVec(), P1: resolve(key(end)).RefVec()}
			},
		})
	}
	return recipes
}

// circleRecipes covers "1>k" (clockwise) and "1<k" (counterclockwise)
// arcs around the board center, for every reachable distance 1..7.
func circleRecipes() []recipe {
	var recipes []recipe
	for _, cw := range []bool{false, true} {
		shapeChar := "<"
		sign := 1
		if cw {
			shapeChar = ">"
			sign = -1
		}
		for d := 1; d <= 7; d++ {
			d := d
			sign := sign
			end := ((1+sign*d)%8 + 8) % 8
			if end == 0 {
				end = 8
			}
			judgePoints := make([][]pt, d+1)
			for i := 0; i <= d; i++ {
				idx := ((1+sign*i)%8 + 8) % 8
				judgePoints[i] = []pt{key(idx)}
			}
			recipes = append(recipes, recipe{
				shapeChar:      shapeChar,
				start:          key(1),
				end:            key(end),
				judgePoints:    judgePoints,
				entryFractions: fractions(d + 1),
				path: func(resolve func(pt) geometry.Pad) geometry.Curve {
					startAngle := angleOf(resolve(key(1)))
					endAngle := angleOf(resolve(key(end)))
					if sign > 0 && endAngle < startAngle {
						endAngle += 2 * 3.141592653589793
					}
					if sign < 0 && endAngle > startAngle {
						endAngle -= 2 * 3.141592653589793
					}
					r := geometry.NewPad(geometry.GroupA, 1)
					radius := vecAbs(r.RefVec())
					return geometry.Arc{Center: 0, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
				},
			})
		}
	}
	return recipes
}

// uCurveRecipes covers "1p k": the path bows out through a single
// E-ring waypoint before reaching the end pad.
func uCurveRecipes() []recipe {
	var recipes []recipe
	for _, d := range []int{2, 3} {
		d := d
		end := 1 + d
		recipes = append(recipes, recipe{
			shapeChar:          "p",
			start:              key(1),
			criticalProportion: 0.9,
			end:                key(end),
			judgePoints: [][]pt{
				{key(1)},
				{midE(1)},
				{key(end)},
			},
			entryFractions: []float64{0, 0.5, 1},
			path: func(resolve func(pt) geometry.Pad) geometry.Curve {
				return geometry.CubicBezier{
					P0: resolve(key(1)).RefVec(),
					P1: resolve(midE(1)).RefVec(),
					P2: resolve(midE(1)).RefVec(),
					P3: resolve(key(end)).RefVec(),
				}
			},
		})
	}
	return recipes
}

// cupCurveRecipes covers "1pp k": a deeper bow than the U-curve,
// passing through both the D and E rings.
func cupCurveRecipes() []recipe {
	var recipes []recipe
	for _, d := range []int{3, 4} {
		d := d
		end := 1 + d
		recipes = append(recipes, recipe{
			shapeChar:          "pp",
			start:              key(1),
			criticalProportion: 0.9,
			end:                key(end),
			judgePoints: [][]pt{
				{key(1)},
				{midD(1)},
				{midE(1)},
				{key(end)},
			},
			entryFractions: []float64{0, 1.0 / 3, 2.0 / 3, 1},
			path: func(resolve func(pt) geometry.Pad) geometry.Curve {
				return geometry.CubicBezier{
					P0: resolve(key(1)).RefVec(),
					P1: resolve(midD(1)).RefVec(),
					P2: resolve(midE(1)).RefVec(),
					P3: resolve(key(end)).RefVec(),
				}
			},
		})
	}
	return recipes
}

// lightningRecipe covers "1s5": the single zigzag shape, fixed at
// distance 4 (diametrically opposite), bending through the D ring.
func lightningRecipe() recipe {
	return recipe{
		shapeChar:          "s",
		start:              key(1),
		criticalProportion: 0.9,
		end:                key(5),
		judgePoints: [][]pt{
			{key(1)},
			{midD(3)},
			{key(5)},
		},
		entryFractions: []float64{0, 0.5, 1},
		path: func(resolve func(pt) geometry.Pad) geometry.Curve {
			return geometry.Chained{Curves: []geometry.Curve{
				geometry.Line{P0: resolve(key(1)).RefVec(), P1: resolve(midD(3)).RefVec()},
				geometry.Line{P0: resolve(midD(3)).RefVec(), P1: resolve(key(5)).RefVec()},
			}}
		},
	}
}

// vShapeRecipes covers "1v k": straight in to the center pad, then
// straight back out to the end pad.
func vShapeRecipes() []recipe {
	var recipes []recipe
	for _, d := range []int{3, 4, 5} {
		d := d
		end := ((1+d)%8 + 8) % 8
		if end == 0 {
			end = 8
		}
		recipes = append(recipes, recipe{
			shapeChar: "v",
			start:     key(1),
			end:       key(end),
			judgePoints: [][]pt{
				{key(1)},
				{center()},
				{key(end)},
			},
			entryFractions: []float64{0, 0.5, 1},
			path: func(resolve func(pt) geometry.Pad) geometry.Curve {
				return geometry.Chained{Curves: []geometry.Curve{
					geometry.Line{P0: resolve(key(1)).RefVec(), P1: resolve(center()).RefVec()},
					geometry.Line{P0: resolve(center()).RefVec(), P1: resolve(key(end)).RefVec()},
				}}
			},
		})
	}
	return recipes
}

// lShapeRecipes covers the L-shape from key 1 bending at key 7:
// straight out to the bend key, then a second straight leg to the end
// key. Registry keys have the form "1V<end>" and do not include the
// bend key. IsSpecialL marks the variant where the second leg spans 4
// keys (a "grand" L).
func lShapeRecipes() []recipe {
	bend := 7
	var recipes []recipe
	for _, endOffsetFromBend := range []int{3, 4, 5} {
		endOffsetFromBend := endOffsetFromBend
		end := ((bend+endOffsetFromBend)%8 + 8) % 8
		if end == 0 {
			end = 8
		}
		recipes = append(recipes, recipe{
			shapeChar:          "V",
			start:              key(1),
			criticalProportion: 0.9,
			end:                key(end),
			isL:                true,
			isSpecialL:         endOffsetFromBend == 4,
			judgePoints: [][]pt{
				{key(1)},
				{midB(4)},
				{key(bend)},
				{midB(((bend+end)/2)%8 + 1)},
				{key(end)},
			},
			entryFractions: fractions(5),
			path: func(resolve func(pt) geometry.Pad) geometry.Curve {
				return geometry.Chained{Curves: []geometry.Curve{
					geometry.Line{P0: resolve(key(1)).RefVec(), P1: resolve(key(bend)).RefVec()},
					geometry.Line{P0: resolve(key(bend)).RefVec(), P1: resolve(key(end)).RefVec()},
				}}
			},
		})
	}
	return recipes
}

// wifiRecipe covers "1w5": a three-lane fan, the center lane straight
// across and two outer lanes bowing to either side. Each lane carries
// its own 4-area judge sequence and its own real-hand path (spec §4.1,
// §12): a perfect player's outer-lane hand cuts slightly inside the
// rendered curve.
func wifiRecipe() recipe {
	start, end := 1, 5
	return recipe{
		shapeChar:          "w",
		start:              key(start),
		criticalProportion: 0.9,
		end:                key(end),
		judgePoints: [][]pt{
			{key(start)},
			{center()},
			{key(end)},
		},
		entryFractions: []float64{0, 0.5, 1},
		path: func(resolve func(pt) geometry.Pad) geometry.Curve {
			return geometry.Chained{Curves: []geometry.Curve{
				geometry.Line{P0: resolve(key(start)).RefVec(), P1: resolve(center()).RefVec()},
				geometry.Line{P0: resolve(center()).RefVec(), P1: resolve(key(end)).RefVec()},
			}}
		},
		wifiLanes: func(resolve func(pt) geometry.Pad) []WifiLane {
			lanes := make([]WifiLane, 3)
			offsets := [3]int{-1, 0, 1}
			tighten := [3]float64{0.92, 1.0, 0.92}
			for i, o := range offsets {
				laneStart := key(start)
				laneMid1 := midB(((start+o)%8 + 8) % 8)
				laneMid2 := midB(((end-o)%8 + 8) % 8)
				laneEnd := key(end)

				p0 := resolve(laneStart).RefVec()
				p1 := resolve(laneMid1).RefVec()
				p2 := resolve(laneMid2).RefVec()
				p3 := resolve(laneEnd).RefVec()

				visual := geometry.Chained{Curves: []geometry.Curve{
					geometry.Line{P0: p0, P1: p1},
					geometry.Line{P0: p1, P1: p2},
					geometry.Line{P0: p2, P1: p3},
				}}
				scale := tighten[i]
				real := geometry.Chained{Curves: []geometry.Curve{
					geometry.Line{P0: p0, P1: p1 * complex(scale, 0)},
					geometry.Line{P0: p1 * complex(scale, 0), P1: p2 * complex(scale, 0)},
					geometry.Line{P0: p2 * complex(scale, 0), P1: p3},
				}}

				lanes[i] = WifiLane{
					VisualPath:   visual,
					RealHandPath: real,
					JudgeSequence: []PadSet{
						NewPadSet(resolve(laneStart)),
						NewPadSet(resolve(laneMid1)),
						NewPadSet(resolve(laneMid2)),
						NewPadSet(resolve(laneEnd)),
					},
					PadEntryTimes: fractions(4),
				}
			}
			return lanes
		},
	}
}
