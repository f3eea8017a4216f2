package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/response"

	"go.uber.org/zap"
)

// TicketPaymentService charges an account. It either succeeds or returns an error.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

// SeatReservationService reserves a number of seats for an account.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seatCount int) error
}

type TicketService interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests []entity.TicketRequest) (*response.PurchaseResponse, error)
	GetTicketPrices(ctx context.Context) []response.TicketPriceResponse
}

type ticketService struct {
	prices  entity.PriceTable
	payment TicketPaymentService
	seats   SeatReservationService
	log     *zap.Logger
}

func NewTicketService(prices entity.PriceTable, payment TicketPaymentService, seats SeatReservationService, log *zap.Logger) TicketService {
	return &ticketService{
		prices:  prices,
		payment: payment,
		seats:   seats,
		log:     log.With(zap.String("service", "ticket")),
	}
}

// PurchaseTickets validates the whole batch before anything is charged. Payment is
// taken first, then seats are reserved; a reservation failure does not refund the payment.
func (s *ticketService) PurchaseTickets(ctx context.Context, accountID int64, requests []entity.TicketRequest) (*response.PurchaseResponse, error) {
	if accountID <= 0 {
		s.log.Warn("Purchase rejected", zap.Int64("account_id", accountID), zap.String("reason", "invalid account"))
		return nil, invalidPurchase("accountId should be greater than 0")
	}

	summary, err := s.summarize(requests)
	if err != nil {
		s.log.Warn("Purchase rejected - malformed request",
			zap.Int64("account_id", accountID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := validateTicketLimit(summary); err != nil {
		s.log.Warn("Purchase rejected",
			zap.Int64("account_id", accountID),
			zap.Int("total_tickets", summary.TotalTickets),
			zap.Error(err),
		)
		return nil, err
	}

	if err := validateAdultPresence(summary); err != nil {
		s.log.Warn("Purchase rejected",
			zap.Int64("account_id", accountID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.payment.MakePayment(ctx, accountID, summary.TotalCost); err != nil {
		s.log.Error("Failed to take payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("total_cost", summary.TotalCost),
		)
		return nil, fmt.Errorf("make payment: %w", err)
	}

	if err := s.seats.ReserveSeat(ctx, accountID, summary.TotalTickets); err != nil {
		s.log.Error("Failed to reserve seats after payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("total_tickets", summary.TotalTickets),
			zap.Int("total_cost", summary.TotalCost),
		)
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	s.log.Info("Tickets purchased",
		zap.Int64("account_id", accountID),
		zap.Int("total_tickets", summary.TotalTickets),
		zap.Int("adult_tickets", summary.AdultTickets),
		zap.Int("total_cost", summary.TotalCost),
	)

	return &response.PurchaseResponse{
		AccountID:    accountID,
		TotalCost:    summary.TotalCost,
		TotalTickets: summary.TotalTickets,
		AdultTickets: summary.AdultTickets,
		Message:      confirmationMessage(summary.TotalCost),
	}, nil
}

func (s *ticketService) GetTicketPrices(ctx context.Context) []response.TicketPriceResponse {
	prices := make([]response.TicketPriceResponse, 0, len(entity.TicketCategories))
	for _, c := range entity.TicketCategories {
		if p, ok := s.prices.Price(c); ok {
			prices = append(prices, response.TicketPriceResponse{Type: c, Price: p})
		}
	}
	return prices
}

// summarize walks the requests once. Adult tickets are summed across requests.
// TotalTickets never reaches TicketLimit, so TotalCost stays bounded.
func (s *ticketService) summarize(requests []entity.TicketRequest) (entity.PurchaseSummary, error) {
	var summary entity.PurchaseSummary

	for i, req := range requests {
		if !req.WellFormed() {
			return entity.PurchaseSummary{}, &ContractViolationError{
				Reason: fmt.Sprintf("ticket request %d is not a well-formed ticket request", i),
			}
		}

		price, ok := s.prices.Price(req.Category())
		if !ok {
			return entity.PurchaseSummary{}, &ContractViolationError{
				Reason: fmt.Sprintf("unsupported ticket type: %s", req.Category()),
			}
		}

		if req.Category().RequiresAdult() {
			summary.HasChildOrInfant = true
		}

		// Once the limit is reached the sums stop growing; the remaining
		// requests are still checked for well-formedness.
		if summary.OverLimit || req.Count() >= entity.TicketLimit-summary.TotalTickets {
			summary.OverLimit = true
			continue
		}

		summary.TotalCost += price * req.Count()
		summary.TotalTickets += req.Count()

		if req.Category() == entity.TicketCategoryAdult {
			summary.AdultTickets += req.Count()
		}
	}

	return summary, nil
}

func validateTicketLimit(summary entity.PurchaseSummary) error {
	if summary.OverLimit || summary.TotalTickets >= entity.TicketLimit {
		return invalidPurchase(fmt.Sprintf("Maximum ticket limit is %d", entity.TicketLimit))
	}
	return nil
}

func validateAdultPresence(summary entity.PurchaseSummary) error {
	if summary.HasChildOrInfant && summary.AdultTickets == 0 {
		return invalidPurchase("Adult should be there with child or infant")
	}
	return nil
}

func confirmationMessage(totalCost int) string {
	return fmt.Sprintf("Tickets purchased successfully. Total cost: %d.", totalCost)
}
