package catalog_test

import (
	"errors"
	"testing"

	"github.com/avolkmann/cantor/internal/catalog"
)

func TestWeightForTier(t *testing.T) {
	expected := map[int]float64{
		1: 1.00,
		2: 0.85,
		3: 0.70,
		4: 0.65,
		5: 0.55,
		6: 0.35,
		7: 0.15,
		8: 0.00,
	}

	for tier, want := range expected {
		got, err := catalog.WeightForTier(tier)
		if err != nil {
			t.Fatalf("tier %d: unexpected error: %v", tier, err)
		}
		if got != want {
			t.Errorf("tier %d: got %v, want %v", tier, got, want)
		}
	}
}

func TestWeightForTierInvalid(t *testing.T) {
	for _, tier := range []int{0, -1, 9, 100} {
		if _, err := catalog.WeightForTier(tier); !errors.Is(err, catalog.ErrInvalidTier) {
			t.Errorf("tier %d: got %v, want ErrInvalidTier", tier, err)
		}
	}
}

func TestConfidenceForTier(t *testing.T) {
	expected := map[int]float64{
		1: 0.95,
		2: 0.85,
		3: 0.70,
		4: 0.65,
		5: 0.55,
		6: 0.35,
		7: 0.15,
		8: 0.00,
	}

	for tier, want := range expected {
		got, err := catalog.ConfidenceForTier(tier)
		if err != nil {
			t.Fatalf("tier %d: unexpected error: %v", tier, err)
		}
		if got != want {
			t.Errorf("tier %d: got %v, want %v", tier, got, want)
		}
	}

	if _, err := catalog.ConfidenceForTier(0); !errors.Is(err, catalog.ErrInvalidTier) {
		t.Errorf("tier 0: got %v, want ErrInvalidTier", err)
	}
}

func TestConfidenceDescending(t *testing.T) {
	prev := 2.0
	for tier := catalog.MinTier; tier <= catalog.MaxTier; tier++ {
		c, err := catalog.ConfidenceForTier(tier)
		if err != nil {
			t.Fatalf("tier %d: unexpected error: %v", tier, err)
		}
		if c > prev {
			t.Errorf("confidence not descending at tier %d: %v > %v", tier, c, prev)
		}
		prev = c
	}
}
