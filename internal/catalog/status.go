package catalog

// Acquisition statuses for a cataloged source.
const (
	StatusNotAcquired    = "not-acquired"
	StatusAcquired       = "acquired"
	StatusFailed         = "failed"
	StatusManualRequired = "manual-required"
)

// transitions defines the allowed acquisition status graph.
// Acquired is terminal for an attempt; re-acquisition re-enters not-acquired.
var transitions = map[string][]string{
	StatusNotAcquired:    {StatusAcquired, StatusFailed, StatusManualRequired},
	StatusFailed:         {StatusAcquired, StatusManualRequired},
	StatusManualRequired: {StatusAcquired, StatusNotAcquired},
	StatusAcquired:       {StatusNotAcquired},
}

// CanTransition reports whether moving from one acquisition status to another is allowed.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	switch status {
	case StatusNotAcquired, StatusAcquired, StatusFailed, StatusManualRequired:
		return true
	}
	return false
}
