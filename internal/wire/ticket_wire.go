package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	// GET /api/ticket-prices - price per ticket type (public)
	r.Get("/api/ticket-prices", ticketHandler.GetTicketPrices)

	// POST /api/accounts/{accountID}/tickets - validate, pay and reserve in one call
	r.Post("/api/accounts/{accountID}/tickets", ticketHandler.PurchaseTickets)
}
