package chart

import (
	"sort"

	"simaimuri/internal/geometry"
)

// ActionCommon holds the fields every action variant shares (spec §3).
type ActionCommon struct {
	Source          Note
	Moment          geometry.Tick
	RequireTwoHands bool
}

// Action is implemented by every action variant (Press, Slide,
// ExtraPadDown). Merge-eligibility and touch-circle production are
// engine concerns (spec §4.4); this package only carries the
// immutable parameters the converter computes.
type Action interface {
	Common() *ActionCommon
}

// Press produces a constant touch circle for its whole lifetime.
type Press struct {
	ActionCommon
	Position  complex128
	Radius    float64
	Duration  geometry.Tick
	EndMoment geometry.Tick
}

func (a *Press) Common() *ActionCommon { return &a.ActionCommon }

// MergeKey implements the engine's merge-eligibility model (spec §4.4,
// design notes §9): nil/zero means "never merge". Press actions never
// merge with anything.
func (a *Press) MergeKey() any { return nil }

// Slide produces a touch circle that travels along Path as time
// advances from Moment to EndMoment.
type Slide struct {
	ActionCommon
	Path      geometry.Curve
	Duration  geometry.Tick
	Radius    float64
	EndMoment geometry.Tick
	IsWifi    bool
}

func (a *Slide) Common() *ActionCommon { return &a.ActionCommon }

// nonWifiSlideMergeKey is the shared key every non-wifi Slide reports:
// spec §4.4 step 2 makes non-wifi slides unconditionally merge-eligible
// against one another, so they all compare equal here regardless of
// which note produced them.
var nonWifiSlideMergeKey = new(struct{})

// MergeKey: non-wifi slides are always merge-eligible against each
// other (key nil would instead mean "never merge", per the Press
// convention, so a shared sentinel is used); wifi slides are eligible
// only against another wifi touch from the same source note, keyed on
// Source, so the two real-hand lanes of one wifi note can coalesce
// without also coalescing across unrelated wifi notes that happen to
// land nearby.
func (a *Slide) MergeKey() any {
	if a.IsWifi {
		return a.Source
	}
	return nonWifiSlideMergeKey
}

// ExtraPadDown is a marker action: it produces no touch circle and
// exists purely to inject a pad-down event on TargetPad at Moment
// (spec §3, §4.3) — modeling the outer-button press a real player
// makes when launching a slide star.
type ExtraPadDown struct {
	ActionCommon
	TargetPad geometry.Pad
}

func (a *ExtraPadDown) Common() *ActionCommon { return &a.ActionCommon }

// StableSortActionsByMoment returns actions ordered by moment,
// preserving relative order for ties (spec §4.3, testable property 7).
func StableSortActionsByMoment(actions []Action) []Action {
	sorted := make([]Action, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Common().Moment < sorted[j].Common().Moment
	})
	return sorted
}
