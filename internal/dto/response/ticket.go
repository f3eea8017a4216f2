package response

import (
	"cinema-tickets/internal/data/entity"
)

type PurchaseResponse struct {
	AccountID    int64  `json:"account_id"`
	TotalCost    int    `json:"total_cost"`
	TotalTickets int    `json:"total_tickets"`
	AdultTickets int    `json:"adult_tickets"`
	Message      string `json:"message"`
}

type TicketPriceResponse struct {
	Type  entity.TicketCategory `json:"type"`
	Price int                   `json:"price"`
}
