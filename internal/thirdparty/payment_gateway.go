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

// PaymentGateway is a sandbox ticket payment service that books every charge
// into the payments table.
type PaymentGateway struct {
	repo repository.PaymentRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewPaymentGateway(repo repository.PaymentRepository, log *zap.Logger) *PaymentGateway {
	return &PaymentGateway{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "payment_gateway")),
	}
}

func (g *PaymentGateway) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if accountID <= 0 {
		return fmt.Errorf("payment gateway: invalid account id %d", accountID)
	}
	if amount < 0 {
		return fmt.Errorf("payment gateway: invalid amount %d", amount)
	}

	id := utils.GenerateUUID()
	now := g.now()

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: now,
		},
		Reference: utils.GeneratePaymentReference(id, now),
		AccountID: accountID,
		Amount:    amount,
		Status:    entity.PaymentStatusCompleted,
	}

	if err := g.repo.Create(ctx, payment); err != nil {
		return fmt.Errorf("charge account %d: %w", accountID, err)
	}

	g.log.Info("Payment taken",
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
		zap.String("reference", payment.Reference),
	)

	return nil
}
