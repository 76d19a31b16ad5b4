package catalog

// Tier bounds for the 8-row reliability table.
const (
	MinTier = 1
	MaxTier = 8
)

// tierWeights maps each reliability tier to its sampling weight.
// Tier 1 is Cantor's own words; tier 8 is excluded fabrication.
var tierWeights = [MaxTier + 1]float64{
	1: 1.00,
	2: 0.85,
	3: 0.70,
	4: 0.65,
	5: 0.55,
	6: 0.35,
	7: 0.15,
	8: 0.00,
}

// tierConfidence maps each tier to the annotation confidence ceiling.
var tierConfidence = [MaxTier + 1]float64{
	1: 0.95,
	2: 0.85,
	3: 0.70,
	4: 0.65,
	5: 0.55,
	6: 0.35,
	7: 0.15,
	8: 0.00,
}

// WeightForTier returns the sampling weight for a tier.
// Fails with ErrInvalidTier for tiers outside 1..8.
func WeightForTier(tier int) (float64, error) {
	if tier < MinTier || tier > MaxTier {
		return 0, ErrInvalidTier
	}
	return tierWeights[tier], nil
}

// ConfidenceForTier returns the annotation confidence ceiling for a tier.
// Fails with ErrInvalidTier for tiers outside 1..8.
func ConfidenceForTier(tier int) (float64, error) {
	if tier < MinTier || tier > MaxTier {
		return 0, ErrInvalidTier
	}
	return tierConfidence[tier], nil
}
