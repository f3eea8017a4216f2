package usecase

import (
	"cinema-tickets/internal/data/entity"

	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(prices entity.PriceTable, payment TicketPaymentService, seats SeatReservationService, log *zap.Logger) *Service {
	return &Service{
		Ticket: NewTicketService(prices, payment, seats, log),
	}
}
