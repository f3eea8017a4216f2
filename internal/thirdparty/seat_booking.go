package thirdparty

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

// SeatBooking is a sandbox seat reservation service. It only counts seats;
// there is no seat map.
type SeatBooking struct {
	repo repository.ReservationRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewSeatBooking(repo repository.ReservationRepository, log *zap.Logger) *SeatBooking {
	return &SeatBooking{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "seat_booking")),
	}
}

func (b *SeatBooking) ReserveSeat(ctx context.Context, accountID int64, seatCount int) error {
	if accountID <= 0 {
		return fmt.Errorf("seat booking: invalid account id %d", accountID)
	}
	if seatCount < 0 {
		return fmt.Errorf("seat booking: invalid seat count %d", seatCount)
	}

	id := utils.GenerateUUID()
	now := b.now()

	reservation := &entity.SeatReservation{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: now,
		},
		Reference: utils.GenerateReservationReference(id, now),
		AccountID: accountID,
		SeatCount: seatCount,
	}

	if err := b.repo.Create(ctx, reservation); err != nil {
		return fmt.Errorf("reserve %d seats for account %d: %w", seatCount, accountID, err)
	}

	b.log.Info("Seats reserved",
		zap.Int64("account_id", accountID),
		zap.Int("seat_count", seatCount),
		zap.String("reference", reservation.Reference),
	)

	return nil
}
