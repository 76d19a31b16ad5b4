// Package sampler selects segments for export by weighted sampling
// without replacement. Selection is fully deterministic for a fixed
// seed so training sets can be reproduced from a corpus snapshot.
package sampler

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/avolkmann/cantor/internal/segments"
)

// ErrInsufficientCorpus is returned when the eligible sampling pool is empty.
var ErrInsufficientCorpus = errors.New("insufficient corpus: eligible pool is empty")

// Request controls one sampling pass.
type Request struct {
	// TargetSize is the number of segments to select. When it exceeds
	// the eligible pool, the whole pool is returned.
	TargetSize int `json:"target_size"`

	// OversampleTier1Factor multiplies the selection weight of tier-1
	// segments. 1.0 means no oversampling.
	OversampleTier1Factor float64 `json:"oversample_tier1_factor"`

	// Seed fixes the random stream for reproducible selection.
	Seed int64 `json:"seed"`

	// Negative selects from the weight-zero pool instead of the default
	// pool. Negative candidates are drawn uniformly.
	Negative bool `json:"negative"`
}

// Selection is the ordered result of one sampling pass.
type Selection struct {
	Segments []segments.Segment `json:"segments"`
	PoolSize int                `json:"pool_size"`
	Seed     int64              `json:"seed"`
	Negative bool               `json:"negative"`
}

// Sample runs weighted sampling without replacement over the corpus.
// Exact-duplicate content across sources is collapsed first, keeping the
// highest-tier provenance. Weight-zero sources are excluded from the
// default pool and form the explicit negative pool.
func Sample(corpus []segments.Segment, req Request) (*Selection, error) {
	pool := eligible(Dedupe(corpus), req.Negative)
	if len(pool) == 0 {
		return nil, ErrInsufficientCorpus
	}

	sortStable(pool)

	if req.TargetSize >= len(pool) {
		return &Selection{
			Segments: pool,
			PoolSize: len(pool),
			Seed:     req.Seed,
			Negative: req.Negative,
		}, nil
	}

	selected := drawWithoutReplacement(pool, req)
	return &Selection{
		Segments: selected,
		PoolSize: len(pool),
		Seed:     req.Seed,
		Negative: req.Negative,
	}, nil
}

// Dedupe collapses exact-duplicate segment content across sources,
// keeping the segment from the most authoritative tier. Ties keep the
// first segment in stable corpus order.
func Dedupe(corpus []segments.Segment) []segments.Segment {
	ordered := make([]segments.Segment, len(corpus))
	copy(ordered, corpus)
	sortStable(ordered)

	byHash := make(map[string]int, len(ordered))
	result := make([]segments.Segment, 0, len(ordered))

	for _, seg := range ordered {
		idx, seen := byHash[seg.ContentHash]
		if !seen {
			byHash[seg.ContentHash] = len(result)
			result = append(result, seg)
			continue
		}
		if seg.Tier < result[idx].Tier {
			result[idx] = seg
		}
	}

	return result
}

func eligible(pool []segments.Segment, negative bool) []segments.Segment {
	result := make([]segments.Segment, 0, len(pool))
	for _, seg := range pool {
		zero := seg.Weight == 0
		if zero == negative {
			result = append(result, seg)
		}
	}
	return result
}

// drawWithoutReplacement implements weighted reservoir selection with
// exponential keys. Each candidate draws u in (0, 1) and ranks by
// u^(1/w); the top TargetSize keys win. Candidates are visited in
// stable corpus order so the random stream assignment is reproducible.
func drawWithoutReplacement(pool []segments.Segment, req Request) []segments.Segment {
	rng := rand.New(rand.NewSource(req.Seed))

	type keyed struct {
		seg segments.Segment
		key float64
	}

	keys := make([]keyed, len(pool))
	for i, seg := range pool {
		w := selectionWeight(seg, req)
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		keys[i] = keyed{seg: seg, key: math.Pow(u, 1/w)}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].key > keys[j].key
	})

	selected := make([]segments.Segment, req.TargetSize)
	for i := range selected {
		selected[i] = keys[i].seg
	}
	return selected
}

func selectionWeight(seg segments.Segment, req Request) float64 {
	if req.Negative {
		return 1.0
	}

	w := seg.Weight
	if seg.Tier == 1 && req.OversampleTier1Factor > 0 {
		w *= req.OversampleTier1Factor
	}
	return w
}

// sortStable orders segments by (source slug, ordering), the canonical
// corpus order used as the deterministic tie-break everywhere.
func sortStable(pool []segments.Segment) {
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].SourceSlug != pool[j].SourceSlug {
			return pool[i].SourceSlug < pool[j].SourceSlug
		}
		return pool[i].Ordering < pool[j].Ordering
	})
}
