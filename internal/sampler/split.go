package sampler

import (
	"math/rand"
	"sort"

	"github.com/avolkmann/cantor/internal/segments"
)

// Split divides a selection into train and validation sets, stratified
// by tier so each tier contributes proportionally to both sets. The
// shuffle within each tier is seeded, so identical inputs always split
// identically.
func Split(selection []segments.Segment, trainRatio float64, seed int64) (train, val []segments.Segment) {
	byTier := make(map[int][]segments.Segment)
	var tiers []int
	for _, seg := range selection {
		if _, ok := byTier[seg.Tier]; !ok {
			tiers = append(tiers, seg.Tier)
		}
		byTier[seg.Tier] = append(byTier[seg.Tier], seg)
	}
	sort.Ints(tiers)

	rng := rand.New(rand.NewSource(seed))

	for _, tier := range tiers {
		group := byTier[tier]
		sortStable(group)
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})

		cut := int(float64(len(group)) * trainRatio)
		if cut == 0 && len(group) > 0 {
			cut = 1
		}

		train = append(train, group[:cut]...)
		val = append(val, group[cut:]...)
	}

	sortStable(train)
	sortStable(val)
	return train, val
}
