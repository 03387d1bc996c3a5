package catalogue

import "simaimuri/internal/geometry"

// PadSet is a judge area: the set of pads that jointly satisfy one
// step of a slide's progression (spec glossary, "Judge area"). Backed
// by a bitmask over pad codes (0..32), mirroring the engine's own
// pad-state bitmap (spec §4.4 step 3).
type PadSet uint64

// NewPadSet builds a PadSet from individual pads.
func NewPadSet(pads ...geometry.Pad) PadSet {
	var s PadSet
	for _, p := range pads {
		s |= 1 << p.Code()
	}
	return s
}

// Contains reports whether p is a member of the set.
func (s PadSet) Contains(p geometry.Pad) bool {
	return s&(1<<p.Code()) != 0
}

// Intersects reports whether s and other share any pad.
func (s PadSet) Intersects(other PadSet) bool {
	return s&other != 0
}

// Pads returns the set's members in pad-code order.
func (s PadSet) Pads() []geometry.Pad {
	var out []geometry.Pad
	for _, p := range geometry.AllPads() {
		if s.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
