package catalog_test

import (
	"testing"

	"github.com/avolkmann/cantor/internal/catalog"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{catalog.StatusNotAcquired, catalog.StatusAcquired, true},
		{catalog.StatusNotAcquired, catalog.StatusFailed, true},
		{catalog.StatusNotAcquired, catalog.StatusManualRequired, true},
		{catalog.StatusFailed, catalog.StatusAcquired, true},
		{catalog.StatusFailed, catalog.StatusManualRequired, true},
		{catalog.StatusFailed, catalog.StatusNotAcquired, false},
		{catalog.StatusManualRequired, catalog.StatusAcquired, true},
		{catalog.StatusManualRequired, catalog.StatusNotAcquired, true},
		{catalog.StatusManualRequired, catalog.StatusFailed, false},
		{catalog.StatusAcquired, catalog.StatusNotAcquired, true},
		{catalog.StatusAcquired, catalog.StatusFailed, false},
		{catalog.StatusAcquired, catalog.StatusManualRequired, false},
		{catalog.StatusAcquired, catalog.StatusAcquired, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			if got := catalog.CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if catalog.CanTransition("bogus", catalog.StatusAcquired) {
		t.Error("transition from unknown status should not be allowed")
	}
}
