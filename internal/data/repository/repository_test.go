package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	calls []execCall
	err   error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) Ping(context.Context) error { return nil }

func (f *fakeDB) Close() {}

func TestPaymentRepository_Create(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Reference:  "PAY-20260504-120000-0001",
		AccountID:  11,
		Amount:     70,
		Status:     entity.PaymentStatusCompleted,
	}

	t.Run("inserts row", func(t *testing.T) {
		db := &fakeDB{}
		repo := NewRepository(db, zap.NewNop())

		require.NoError(t, repo.Payment.Create(context.Background(), payment))
		require.Len(t, db.calls, 1)
		assert.Contains(t, db.calls[0].sql, "INSERT INTO payments")
		assert.Equal(t, []any{
			payment.ID, payment.Reference, payment.AccountID, payment.Amount, payment.Status, payment.CreatedAt,
		}, db.calls[0].args)
	})

	t.Run("wraps error", func(t *testing.T) {
		dbErr := errors.New("unique violation")
		repo := NewPaymentRepository(&fakeDB{err: dbErr}, zap.NewNop())

		err := repo.Create(context.Background(), payment)
		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "create payment for account 11")
	})
}

func TestReservationRepository_Create(t *testing.T) {
	t.Parallel()

	reservation := &entity.SeatReservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Reference:  "SEAT-20260504-120000-0001",
		AccountID:  11,
		SeatCount:  4,
	}

	t.Run("inserts row", func(t *testing.T) {
		db := &fakeDB{}
		repo := NewReservationRepository(db, zap.NewNop())

		require.NoError(t, repo.Create(context.Background(), reservation))
		require.Len(t, db.calls, 1)
		assert.Contains(t, db.calls[0].sql, "INSERT INTO seat_reservations")
		assert.Equal(t, 4, db.calls[0].args[3])
	})

	t.Run("wraps error", func(t *testing.T) {
		dbErr := errors.New("timeout")
		repo := NewReservationRepository(&fakeDB{err: dbErr}, zap.NewNop())

		err := repo.Create(context.Background(), reservation)
		require.ErrorIs(t, err, dbErr)
	})
}
