package request

import (
	"cinema-tickets/internal/data/entity"
)

type TicketTypeRequest struct {
	Type        string `json:"type" validate:"required"`
	NoOfTickets *int   `json:"no_of_tickets" validate:"required,max=1000"`
}

type PurchaseTicketsRequest struct {
	TicketRequests []TicketTypeRequest `json:"ticket_requests" validate:"required,dive"`
}

// ToTicketRequests builds entity requests in body order. It fails on the first
// unknown type or negative count. Call it only after ValidateStruct has passed.
func (r *PurchaseTicketsRequest) ToTicketRequests() ([]entity.TicketRequest, error) {
	out := make([]entity.TicketRequest, 0, len(r.TicketRequests))
	for _, tr := range r.TicketRequests {
		category, err := entity.ParseTicketCategory(tr.Type)
		if err != nil {
			return nil, err
		}

		req, err := entity.NewTicketRequest(category, *tr.NoOfTickets)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}
