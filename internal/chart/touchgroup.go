package chart

import (
	"math"

	"simaimuri/internal/config"
	"simaimuri/internal/geometry"
)

// TouchGroup clusters touches that land on the same "each" beat and
// sit on adjacent pads (spec §4.2). Its children all finish together:
// once at least Threshold of them are judged, the rest auto-judge —
// modeling maimai's "51% hit" group rule.
type TouchGroup struct {
	NoteCommon
	Children  []*Touch
	Center    complex128
	Radius    float64
	OnSlide   bool
	Threshold int
}

func (n *TouchGroup) Common() *NoteCommon               { return &n.NoteCommon }
func (n *TouchGroup) JudgementMomentKey() geometry.Tick { return n.Moment }

// touchUnionFind is a small disjoint-set over slice indices, used only
// to cluster candidate touches by pad adjacency. Standard library has
// no union-find, and nothing in the retrieval pack ships one either;
// the structure is small enough that hand-rolling it is the direct
// thing to do.
type touchUnionFind struct {
	parent []int
	rank   []int
}

func newTouchUnionFind(n int) *touchUnionFind {
	uf := &touchUnionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *touchUnionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *touchUnionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// GroupTouches clusters touches that share the same moment (the
// practical proxy for simai's "each" grouping token, since that raw
// source annotation isn't part of this package's data model) and sit
// on mutually adjacent pads, via union-find over geometry.NextTo.
// Singleton clusters are returned unchanged as plain Touches;
// multi-member clusters become a TouchGroup (spec §4.2).
func GroupTouches(touches []*Touch, cfg *config.Config) (singles []*Touch, groups []*TouchGroup) {
	byMoment := map[geometry.Tick][]int{}
	for i, t := range touches {
		byMoment[t.Moment] = append(byMoment[t.Moment], i)
	}

	for _, idxs := range byMoment {
		uf := newTouchUnionFind(len(idxs))
		for a := 0; a < len(idxs); a++ {
			for b := a + 1; b < len(idxs); b++ {
				if geometry.NextTo(touches[idxs[a]].Pad, touches[idxs[b]].Pad) {
					uf.union(a, b)
				}
			}
		}

		clusters := map[int][]int{}
		for i := range idxs {
			root := uf.find(i)
			clusters[root] = append(clusters[root], i)
		}

		for _, members := range clusters {
			if len(members) == 1 {
				singles = append(singles, touches[idxs[members[0]]])
				continue
			}
			children := make([]*Touch, len(members))
			points := make([]complex128, len(members))
			for i, m := range members {
				t := touches[idxs[m]]
				children[i] = t
				points[i] = t.Pad.Vec(cfg.CanvasSize)
			}
			circle := geometry.SmallestEnclosingCircle(points)
			threshold := int(math.Ceil(0.51 * float64(len(children))))
			group := &TouchGroup{
				NoteCommon: NoteCommon{Moment: children[0].Moment},
				Children:   children,
				Center:     circle.Center,
				Radius:     circle.Radius,
				Threshold:  threshold,
			}
			for _, t := range children {
				t.Group = group
			}
			groups = append(groups, group)
		}
	}
	return singles, groups
}
