package salesorder

import "agroconsult/internal/domain"

// Statuses in lifecycle order.
var Statuses = []string{
	string(domain.OrderQuote),
	string(domain.OrderApproved),
	string(domain.OrderClosed),
	string(domain.OrderInvoiced),
	string(domain.OrderDelivered),
	string(domain.OrderCancelled),
}

// An order moves one step forward or is cancelled. ENTREGUE and CANCELADO
// are terminal.
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderQuote:     {domain.OrderApproved, domain.OrderCancelled},
	domain.OrderApproved:  {domain.OrderClosed, domain.OrderCancelled},
	domain.OrderClosed:    {domain.OrderInvoiced, domain.OrderCancelled},
	domain.OrderInvoiced:  {domain.OrderDelivered, domain.OrderCancelled},
	domain.OrderDelivered: nil,
	domain.OrderCancelled: nil,
}

func CanTransition(from, to domain.OrderStatus) bool {
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

func checkTransition(from, to domain.OrderStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
