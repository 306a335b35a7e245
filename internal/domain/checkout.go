package domain

type CheckoutState string

const (
	CheckoutStateStart            CheckoutState = "START"
	CheckoutStateValidated        CheckoutState = "VALIDATED"
	CheckoutStateOrderCreated     CheckoutState = "ORDER_CREATED"
	CheckoutStateInventoryApplied CheckoutState = "INVENTORY_APPLIED"
	CheckoutStateStatsApplied     CheckoutState = "STATS_APPLIED"
	CheckoutStateCartCleared      CheckoutState = "CART_CLEARED"
	CheckoutStateCommitted        CheckoutState = "COMMITTED"
)

var checkoutTransitions = map[CheckoutState]CheckoutState{
	CheckoutStateStart:            CheckoutStateValidated,
	CheckoutStateValidated:        CheckoutStateOrderCreated,
	CheckoutStateOrderCreated:     CheckoutStateInventoryApplied,
	CheckoutStateInventoryApplied: CheckoutStateStatsApplied,
	CheckoutStateStatsApplied:     CheckoutStateCartCleared,
	CheckoutStateCartCleared:      CheckoutStateCommitted,
}

// CanTransitionTo allows only the single forward step; there are no
// intermediate terminal states because a failure aborts the transaction.
func CanTransitionTo(from, to CheckoutState) bool {
	next, ok := checkoutTransitions[from]
	return ok && next == to
}

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutStateCommitted
}

func (s CheckoutState) String() string {
	return string(s)
}
