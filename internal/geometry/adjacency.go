package geometry

// adjacency rules are expressed as sets of allowed index deltas
// (j - i, mod 8) between two groups. Each set is closed under
// negation mod 8, which is what makes NextTo invariant under
// Rotate45CW and Reflect1c5 (both act on indices in ways that negate
// or shift deltas uniformly — see transform.go).
var ringDelta = map[int]bool{1: true, 7: true}       // same-group ring neighbors
var diagonalDelta = map[int]bool{0: true, 1: true, 7: true} // A/D <-> E

func deltaIn(a, b int, allowed map[int]bool) bool {
	d := ((b-a)%8 + 8) % 8
	return allowed[d]
}

// NextTo reports whether two distinct pads are adjacent on the
// game's fixed touch graph: B rings connect along themselves, A/B/D
// are radially aligned, A and D each border E diagonally, and B
// borders the center C.
func NextTo(p, q Pad) bool {
	if p == q {
		return false
	}
	gp, gq := p.Group(), q.Group()
	if gp == gq {
		if gp == GroupC {
			return false
		}
		return deltaIn(p.Index(), q.Index(), ringDelta)
	}
	// Normalize so (gp, gq) comparisons don't need both orders below.
	a, b := p, q
	if gp > gq {
		a, b = q, p
	}
	ga, gb := a.Group(), b.Group()

	switch {
	case ga == GroupA && gb == GroupB:
		return a.Index() == b.Index()
	case ga == GroupA && gb == GroupD:
		return a.Index() == b.Index()
	case ga == GroupB && gb == GroupD:
		return a.Index() == b.Index()
	case ga == GroupA && gb == GroupE:
		return deltaIn(a.Index(), b.Index(), diagonalDelta)
	case ga == GroupD && gb == GroupE:
		return deltaIn(a.Index(), b.Index(), diagonalDelta)
	case ga == GroupB && gb == GroupC:
		return true
	default:
		return false
	}
}

// AdjacentPads returns every pad next to p.
func AdjacentPads(p Pad) []Pad {
	var out []Pad
	for _, q := range AllPads() {
		if NextTo(p, q) {
			out = append(out, q)
		}
	}
	return out
}
