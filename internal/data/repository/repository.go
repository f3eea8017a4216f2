package repository

import (
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Payment     PaymentRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Payment:     NewPaymentRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
