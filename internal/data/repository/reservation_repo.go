package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.SeatReservation) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.SeatReservation) error {
	query := `
		INSERT INTO seat_reservations (id, reference, account_id, seat_count, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Reference,
		reservation.AccountID,
		reservation.SeatCount,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat reservation",
			zap.Error(err),
			zap.Int64("account_id", reservation.AccountID),
			zap.Int("seat_count", reservation.SeatCount),
		)
		return fmt.Errorf("create seat reservation for account %d: %w", reservation.AccountID, err)
	}

	return nil
}
