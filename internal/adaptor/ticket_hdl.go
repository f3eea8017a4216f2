package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/accounts/{accountID}/tickets
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	accountID, err := utils.ParseInt64(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid account ID", nil)
		return
	}

	var req request.PurchaseTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("purchase tickets validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticketRequests, err := req.ToTicketRequests()
	if err != nil {
		h.handleServiceError(w, usecase.NewContractViolation(err), "purchase tickets")
		return
	}

	purchase, err := h.service.PurchaseTickets(r.Context(), accountID, ticketRequests)
	if err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseCreated(w, purchase.Message, purchase)
}

// GetTicketPrices handles GET /api/ticket-prices
func (h *TicketHandler) GetTicketPrices(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetTicketPrices(r.Context()))
}

func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var invalid *usecase.InvalidPurchaseError
	var violation *usecase.ContractViolationError

	switch {
	case errors.As(err, &invalid):
		h.log.Warn(operation+" failed - invalid purchase",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, invalid.Reason, nil)

	case errors.As(err, &violation):
		h.log.Warn(operation+" failed - malformed request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, violation.Reason, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
