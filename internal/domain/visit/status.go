package visit

import "agroconsult/internal/domain"

// transitions lists the statuses reachable from each status. REALIZADA and
// CANCELADA are terminal.
var transitions = map[domain.VisitStatus][]domain.VisitStatus{
	domain.VisitScheduled: {domain.VisitDone, domain.VisitCancelled},
	domain.VisitDone:      nil,
	domain.VisitCancelled: nil,
}

// CanTransition reports whether a visit may move from one status to another.
// Keeping the current status is always allowed.
func CanTransition(from, to domain.VisitStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to domain.VisitStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
