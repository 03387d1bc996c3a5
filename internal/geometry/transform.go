package geometry

// Rotate45CW rotates a pad by k*45° (clockwise in game convention,
// which is a positive index shift in our CCW-from-real-axis layout).
// Rotating adds k (mod 8) to the index and preserves the group —
// rotate45cw(p, 8) is therefore always the identity.
func Rotate45CW(p Pad, k int) Pad {
	if p.Group() == GroupC {
		return p
	}
	idx := ((p.Index()+k)%8 + 8) % 8
	return NewPad(p.Group(), idx)
}

// Reflect1c5 reflects a pad about the 1-5 axis. The axis runs through
// key 1 and key 5 on every ring, which in this package's angle
// convention (key 1 on the positive real axis) is the real axis
// itself: reflection maps index i to (2-i) mod 8, keeping 1 and 5
// fixed and swapping 2<->8, 3<->7, 4<->6, group-preserving. C maps to
// itself. Applying it twice is the identity.
func Reflect1c5(p Pad) Pad {
	if p.Group() == GroupC {
		return p
	}
	idx := ((2-p.Index())%8 + 8) % 8
	return NewPad(p.Group(), idx)
}
