package entity

// TicketLimit is the exclusive upper bound on tickets in a single purchase.
const TicketLimit = 20

// PurchaseSummary is derived per call and never stored.
type PurchaseSummary struct {
	TotalCost        int
	TotalTickets     int
	AdultTickets     int
	HasChildOrInfant bool
	// OverLimit is set once the requested tickets reach TicketLimit.
	OverLimit        bool
}
