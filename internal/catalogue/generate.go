package catalogue

import (
	"fmt"
	"sync"

	"simaimuri/internal/geometry"
)

// pt names a pad by (group, index offset from the canonical start key
// 1, i.e. index 0). Recipes are authored entirely in these relative
// coordinates so that rotating or reflecting a recipe is just a
// transform applied uniformly to every pt it references.
type pt struct {
	group  geometry.Group
	offset int
}

func (p pt) resolve(reflect bool, k int) geometry.Pad {
	pad := geometry.NewPad(p.group, p.offset)
	if reflect {
		pad = geometry.Reflect1c5(pad)
	}
	return geometry.Rotate45CW(pad, k)
}

// recipe is a canonical slide template, anchored at start key 1,
// before the rotation/reflection transforms that populate the
// registry are applied.
type recipe struct {
	shapeChar string
	start     pt
	end       pt
	isL       bool
	isSpecialL bool

	// criticalProportion defaults to 1.0 (the zero value is overridden
	// in instantiate) when a recipe doesn't set it explicitly.
	criticalProportion float64

	// judgePoints and entryFractions describe the progression; same
	// length, parallel, entryFractions monotonically increasing.
	judgePoints    [][]pt // each step may union more than one pt (unused here, but kept general)
	entryFractions []float64

	// path builds the visual (and, if different, real-hand) curve
	// from the resolved points. realHand may be nil to mean "same as visual".
	path     func(resolve func(pt) geometry.Pad) geometry.Curve
	realHand func(resolve func(pt) geometry.Pad) geometry.Curve

	wifiLanes func(resolve func(pt) geometry.Pad) []WifiLane
}

var (
	registry     map[string]*Shape
	registryOnce sync.Once
)

// Init builds the catalogue registry. It is idempotent: later calls
// are no-ops. Callers must invoke Init before Lookup; Lookup never
// builds the registry itself (explicit initialization, not implicit
// lazy init, keeps catalogue construction visible in a caller's
// startup sequence rather than hidden behind the first lookup).
func Init() {
	registryOnce.Do(func() {
		registry = make(map[string]*Shape)
		for _, r := range canonicalRecipes() {
			instantiate(r)
		}
	})
}

// Lookup returns the shape registered under key, if any. Returns
// false if Init has not been called or the key is unknown.
func Lookup(key string) (*Shape, bool) {
	if registry == nil {
		return nil, false
	}
	s, ok := registry[key]
	return s, ok
}

// All returns every registered shape, for tests that want to sweep
// the whole catalogue.
func All() []*Shape {
	out := make([]*Shape, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	return out
}

func instantiate(r recipe) {
	for k := 0; k < 8; k++ {
		for _, reflect := range []bool{false, true} {
			if reflect && (r.shapeChar == "-" || r.shapeChar == "<" || r.shapeChar == ">") {
				// Straight and circle recipes already list every distance
				// (circles in both directions); a reflected copy would land
				// on another recipe's key and overwrite it.
				continue
			}
			resolve := func(p pt) geometry.Pad { return p.resolve(reflect, k) }

			start := resolve(r.start)
			end := resolve(r.end)

			seq := make([]PadSet, len(r.judgePoints))
			for i, group := range r.judgePoints {
				pads := make([]geometry.Pad, len(group))
				for j, p := range group {
					pads[j] = resolve(p)
				}
				seq[i] = NewPadSet(pads...)
			}
			entries := append([]float64(nil), r.entryFractions...)

			visual := r.path(resolve)
			realHand := visual
			if r.realHand != nil {
				realHand = r.realHand(resolve)
			}

			criticalProportion := r.criticalProportion
			if criticalProportion == 0 {
				criticalProportion = 1.0
			}
			shape := &Shape{
				Key:                fmt.Sprintf("%d%s%d", start.Key(), r.shapeChar, end.Key()),
				Start:              start,
				End:                end,
				VisualPath:         visual,
				RealHandPath:       realHand,
				JudgeSequence:      seq,
				PadEntryTimes:      entries,
				IsL:                r.isL,
				IsSpecialL:         r.isSpecialL,
				CriticalProportion: criticalProportion,
			}
			if r.wifiLanes != nil {
				shape.IsWifi = true
				shape.Lanes = r.wifiLanes(resolve)
			}
			registry[shape.Key] = shape
		}
	}
}
