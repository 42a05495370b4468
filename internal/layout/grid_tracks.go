package layout

import "math"

// gridTrack is one column or row during track sizing. Sizing functions are
// normalized when the track is built: percentages are resolved to lengths,
// or treated as auto when the grid size is indefinite, and fit-content
// percentages become pixel limits.
type gridTrack struct {
	min, max Dimension

	base    float64
	limit   float64
	planned float64
	offset  float64
}

func newGridTrack(ts TrackSizing, ref float64) gridTrack {
	norm := func(d Dimension) Dimension {
		switch d.Unit {
		case UnitPercent:
			if !isDefined(ref) {
				return Auto()
			}
			return Length(d.Resolve(ref))
		case UnitFitContentPercent:
			if !isDefined(ref) {
				return Auto()
			}
			return FitContent(d.Value * ref / 100)
		case UnitNone:
			return Auto()
		}
		return d
	}
	return gridTrack{min: norm(ts.Min), max: norm(ts.Max)}
}

func (tr *gridTrack) isFlexible() bool {
	return tr.max.Unit == UnitFr
}

func (tr *gridTrack) flexFactor() float64 {
	if tr.isFlexible() {
		return tr.max.Value
	}
	return 0
}

func (tr *gridTrack) minIntrinsic() bool {
	switch tr.min.Unit {
	case UnitMinContent, UnitMaxContent, UnitAuto:
		return true
	}
	return false
}

func (tr *gridTrack) maxIntrinsic() bool {
	switch tr.max.Unit {
	case UnitMinContent, UnitMaxContent, UnitAuto, UnitFitContentPx:
		return true
	}
	return false
}

// growthLimit treats an infinite limit as the base size.
func (tr *gridTrack) growthLimit() float64 {
	if math.IsInf(tr.limit, 1) {
		return tr.base
	}
	return tr.limit
}

// buildTracks lists the tracks of one axis: implicit tracks before the
// explicit grid, the template, then implicit tracks after it. Implicit
// tracks cycle through auto, backwards for those before the grid.
func buildTracks(template, auto []TrackSizing, before, after int, ref float64) []gridTrack {
	if len(auto) == 0 {
		auto = []TrackSizing{Track(Auto())}
	}
	tracks := make([]gridTrack, 0, before+len(template)+after)
	for j := before; j >= 1; j-- {
		tracks = append(tracks, newGridTrack(auto[len(auto)-1-(j-1)%len(auto)], ref))
	}
	for _, ts := range template {
		tracks = append(tracks, newGridTrack(ts, ref))
	}
	for k := range after {
		tracks = append(tracks, newGridTrack(auto[k%len(auto)], ref))
	}
	return tracks
}

func sumBase(tracks []gridTrack) float64 {
	var sum float64
	for i := range tracks {
		sum += tracks[i].base
	}
	return sum
}

// sizeTracks runs the track sizing algorithm for one axis.
func (g *gridState) sizeTracks(axis AbsoluteAxis) {
	tracks := g.tracks[axis]
	for i := range tracks {
		tr := &tracks[i]
		tr.base = 0
		if tr.min.Unit == UnitLength {
			tr.base = tr.min.Value
		}
		tr.limit = math.Inf(1)
		if tr.max.Unit == UnitLength {
			tr.limit = math.Max(tr.max.Value, tr.base)
		}
	}

	g.resolveIntrinsicTracks(axis)

	space := g.expansionSpace(axis)
	g.maximizeTracks(axis, space)
	g.expandFlexibleTracks(axis, space)
	g.stretchAutoTracks(axis, space)
}

// expansionSpace is the space tracks grow into once intrinsic sizes are
// known: the definite inner size, else the min size, else the content
// constraint the grid is sized under.
func (g *gridState) expansionSpace(axis AbsoluteAxis) AvailableSpace {
	if v := g.inner.Get(axis); isDefined(v) {
		return Definite(v)
	}
	if v := g.minInner.Get(axis); isDefined(v) {
		return Definite(v)
	}
	if g.available.Get(axis).Kind == SpaceMinContent {
		return MinContentSpace
	}
	return MaxContentSpace
}

func (g *gridState) resolveIntrinsicTracks(axis AbsoluteAxis) {
	tracks := g.tracks[axis]
	space := g.available.Get(axis)
	constrained := !space.IsDefinite()

	// Items spanning a single non-flexible track.
	maxSpan := 1
	touched := make([]bool, len(tracks))
	for i := range g.items {
		it := &g.items[i]
		maxSpan = max(maxSpan, it.area[axis].len())
		if it.area[axis].len() != 1 || it.crossesFlex[axis] {
			continue
		}
		idx := it.area[axis].start + g.negImplicit[axis]
		tr := &tracks[idx]
		switch tr.min.Unit {
		case UnitMinContent:
			tr.base = math.Max(tr.base, g.minContent(it, axis))
		case UnitMaxContent:
			tr.base = math.Max(tr.base, g.maxContent(it, axis))
		case UnitAuto:
			if constrained {
				tr.base = math.Max(tr.base, g.minContent(it, axis))
			} else {
				tr.base = math.Max(tr.base, g.minimumContribution(it, axis))
			}
		}

		var contribution float64
		switch tr.max.Unit {
		case UnitMinContent:
			contribution = g.minContent(it, axis)
		case UnitMaxContent, UnitAuto:
			contribution = g.maxContent(it, axis)
		case UnitFitContentPx:
			contribution = math.Min(g.maxContent(it, axis), math.Max(g.minContent(it, axis), tr.max.Value))
		default:
			continue
		}
		if touched[idx] {
			tr.limit = math.Max(tr.limit, contribution)
		} else {
			tr.limit = contribution
			touched[idx] = true
		}
	}
	for i := range tracks {
		if tracks[i].limit < tracks[i].base {
			tracks[i].limit = tracks[i].base
		}
	}

	// Items spanning several tracks, none flexible, by increasing span.
	for span := 2; span <= maxSpan; span++ {
		var group []*gridItem
		for i := range g.items {
			if it := &g.items[i]; it.area[axis].len() == span && !it.crossesFlex[axis] {
				group = append(group, it)
			}
		}
		if len(group) == 0 {
			continue
		}
		minimum := func(it *gridItem) float64 {
			if constrained {
				return g.minContent(it, axis)
			}
			return g.minimumContribution(it, axis)
		}
		minC := func(it *gridItem) float64 { return g.minContent(it, axis) }
		maxC := func(it *gridItem) float64 { return g.maxContent(it, axis) }

		g.distribute(axis, group, (*gridTrack).minIntrinsic, minimum, false)
		g.distribute(axis, group, func(tr *gridTrack) bool {
			return tr.min.Unit == UnitMinContent || tr.min.Unit == UnitMaxContent
		}, minC, false)
		g.distribute(axis, group, func(tr *gridTrack) bool {
			return tr.min.Unit == UnitMaxContent || (tr.min.Unit == UnitAuto && space.Kind == SpaceMaxContent)
		}, maxC, false)
		g.distribute(axis, group, (*gridTrack).maxIntrinsic, minC, true)
		g.distribute(axis, group, func(tr *gridTrack) bool {
			switch tr.max.Unit {
			case UnitMaxContent, UnitAuto, UnitFitContentPx:
				return true
			}
			return false
		}, maxC, true)
	}

	// Items crossing flexible tracks grow those tracks by flex factor.
	for i := range tracks {
		tracks[i].planned = 0
	}
	for i := range g.items {
		it := &g.items[i]
		if !it.crossesFlex[axis] {
			continue
		}
		spanned := g.spanned(it, axis)
		extra := g.minimumContribution(it, axis) - sumBase(spanned) - gapSum(g.gap.Get(axis), len(spanned))
		if extra <= 0 {
			continue
		}
		var factors float64
		var flexible int
		for j := range spanned {
			if spanned[j].isFlexible() {
				factors += spanned[j].flexFactor()
				flexible++
			}
		}
		for j := range spanned {
			tr := &spanned[j]
			if !tr.isFlexible() {
				continue
			}
			share := extra / float64(flexible)
			if factors > 0 {
				share = extra * tr.flexFactor() / factors
			}
			tr.planned = math.Max(tr.planned, share)
		}
	}
	for i := range tracks {
		tr := &tracks[i]
		tr.base += tr.planned
		tr.planned = 0
		if math.IsInf(tr.limit, 1) || tr.limit < tr.base {
			tr.limit = tr.base
		}
	}
}

// spanned returns the tracks covered by an item along axis.
func (g *gridState) spanned(it *gridItem, axis AbsoluteAxis) []gridTrack {
	lo := it.area[axis].start + g.negImplicit[axis]
	hi := it.area[axis].end + g.negImplicit[axis]
	return g.tracks[axis][lo:hi]
}

// distribute grows the base sizes, or growth limits when limits is set, of
// the affected tracks spanned by each item in group so that the tracks fit
// the item's contribution. Increases are planned per item and the largest
// applied once the whole group is seen.
func (g *gridState) distribute(axis AbsoluteAxis, group []*gridItem, affected func(*gridTrack) bool, contribution func(*gridItem) float64, limits bool) {
	tracks := g.tracks[axis]
	for i := range tracks {
		tracks[i].planned = 0
	}
	gap := g.gap.Get(axis)

	for _, it := range group {
		spanned := g.spanned(it, axis)
		sum := gapSum(gap, len(spanned))
		var targets []*gridTrack
		for j := range spanned {
			tr := &spanned[j]
			if limits {
				sum += tr.growthLimit()
			} else {
				sum += tr.base
			}
			if affected(tr) {
				targets = append(targets, tr)
			}
		}
		if len(targets) == 0 {
			continue
		}
		extra := contribution(it) - sum
		if extra <= 0 {
			continue
		}
		for k, inc := range shareSpace(targets, extra, limits) {
			targets[k].planned = math.Max(targets[k].planned, inc)
		}
	}

	for i := range tracks {
		tr := &tracks[i]
		if tr.planned == 0 {
			continue
		}
		if limits {
			tr.limit = tr.growthLimit() + tr.planned
		} else {
			tr.base += tr.planned
			if tr.limit < tr.base {
				tr.limit = tr.base
			}
		}
		tr.planned = 0
	}
}

// shareSpace splits extra equally between targets, each capped by the room
// left before its limit. Space beyond every cap goes to targets whose max
// sizing function is intrinsic and not fit-content.
func shareSpace(targets []*gridTrack, extra float64, limits bool) []float64 {
	room := func(tr *gridTrack) float64 {
		if limits {
			if tr.max.Unit == UnitFitContentPx {
				return math.Max(tr.max.Value-tr.growthLimit(), 0)
			}
			return math.Inf(1)
		}
		if math.IsInf(tr.limit, 1) {
			return math.Inf(1)
		}
		return math.Max(tr.limit-tr.base, 0)
	}

	inc := make([]float64, len(targets))
	remaining := extra
	for remaining > epsilon {
		var open int
		for k, tr := range targets {
			if inc[k] < room(tr) {
				open++
			}
		}
		if open == 0 {
			break
		}
		share := remaining / float64(open)
		for k, tr := range targets {
			if inc[k] >= room(tr) {
				continue
			}
			add := math.Min(share, room(tr)-inc[k])
			inc[k] += add
			remaining -= add
		}
	}

	if remaining > epsilon {
		var beyond []int
		for k, tr := range targets {
			if tr.maxIntrinsic() && tr.max.Unit != UnitFitContentPx {
				beyond = append(beyond, k)
			}
		}
		if len(beyond) == 0 && !limits {
			for k := range targets {
				beyond = append(beyond, k)
			}
		}
		for _, k := range beyond {
			inc[k] += remaining / float64(len(beyond))
		}
	}
	return inc
}

const epsilon = 1e-9

// maximizeTracks grows base sizes toward growth limits.
func (g *gridState) maximizeTracks(axis AbsoluteAxis, space AvailableSpace) {
	tracks := g.tracks[axis]
	switch {
	case space.Kind == SpaceMaxContent:
		for i := range tracks {
			tracks[i].base = tracks[i].growthLimit()
		}
	case space.IsDefinite():
		free := space.Value - sumBase(tracks) - gapSum(g.gap.Get(axis), len(tracks))
		if free <= 0 {
			return
		}
		targets := make([]*gridTrack, len(tracks))
		for i := range tracks {
			targets[i] = &tracks[i]
		}
		inc := make([]float64, len(tracks))
		for free > epsilon {
			var open int
			for i, tr := range targets {
				if tr.base+inc[i] < tr.limit {
					open++
				}
			}
			if open == 0 {
				break
			}
			share := free / float64(open)
			for i, tr := range targets {
				if room := tr.limit - tr.base - inc[i]; room > 0 {
					add := math.Min(share, room)
					inc[i] += add
					free -= add
				}
			}
		}
		for i := range tracks {
			tracks[i].base += inc[i]
		}
	}
}

// expandFlexibleTracks sizes fr tracks.
func (g *gridState) expandFlexibleTracks(axis AbsoluteAxis, space AvailableSpace) {
	tracks := g.tracks[axis]
	gap := g.gap.Get(axis)
	flexible := false
	for i := range tracks {
		flexible = flexible || tracks[i].isFlexible()
	}
	if !flexible || space.Kind == SpaceMinContent {
		return
	}

	var fraction float64
	if space.IsDefinite() {
		fraction = findFrSize(tracks, gap, space.Value)
	} else {
		for i := range tracks {
			tr := &tracks[i]
			if !tr.isFlexible() {
				continue
			}
			if f := tr.flexFactor(); f > 1 {
				fraction = math.Max(fraction, tr.base/f)
			} else {
				fraction = math.Max(fraction, tr.base)
			}
		}
		for i := range g.items {
			it := &g.items[i]
			if it.crossesFlex[axis] {
				fraction = math.Max(fraction, findFrSize(g.spanned(it, axis), gap, g.maxContent(it, axis)))
			}
		}
		total := gapSum(gap, len(tracks))
		for i := range tracks {
			total += math.Max(tracks[i].base, fraction*tracks[i].flexFactor())
		}
		if lo := g.minInner.Get(axis); isDefined(lo) && total < lo {
			fraction = findFrSize(tracks, gap, lo)
		} else if hi := g.maxInner.Get(axis); isDefined(hi) && total > hi {
			fraction = findFrSize(tracks, gap, hi)
		}
	}

	for i := range tracks {
		tr := &tracks[i]
		if v := fraction * tr.flexFactor(); tr.isFlexible() && v > tr.base {
			tr.base = v
			tr.limit = math.Max(tr.limit, v)
		}
	}
}

// findFrSize returns the size of one fr when tracks fill space. Flexible
// tracks whose base size exceeds their share are treated as inflexible.
func findFrSize(tracks []gridTrack, gap, space float64) float64 {
	inflexible := make([]bool, len(tracks))
	for {
		leftover := space - gapSum(gap, len(tracks))
		var factors float64
		for i := range tracks {
			if tracks[i].isFlexible() && !inflexible[i] {
				factors += tracks[i].flexFactor()
			} else {
				leftover -= tracks[i].base
			}
		}
		fr := leftover / math.Max(factors, 1)

		again := false
		for i := range tracks {
			if tracks[i].isFlexible() && !inflexible[i] && fr*tracks[i].flexFactor() < tracks[i].base {
				inflexible[i] = true
				again = true
			}
		}
		if !again {
			return math.Max(fr, 0)
		}
	}
}

// stretchAutoTracks shares remaining definite space between tracks with an
// auto max sizing function.
func (g *gridState) stretchAutoTracks(axis AbsoluteAxis, space AvailableSpace) {
	mode := g.contentAlign[axis]
	if (mode != ContentStretch && mode != ContentAuto) || !space.IsDefinite() {
		return
	}
	tracks := g.tracks[axis]
	free := space.Value - sumBase(tracks) - gapSum(g.gap.Get(axis), len(tracks))
	if free <= 0 {
		return
	}
	var autos []int
	for i := range tracks {
		if tracks[i].max.Unit == UnitAuto {
			autos = append(autos, i)
		}
	}
	for _, i := range autos {
		tracks[i].base += free / float64(len(autos))
		tracks[i].limit = math.Max(tracks[i].limit, tracks[i].base)
	}
}
