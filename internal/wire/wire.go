// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/thirdparty"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/middleware"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds the sandbox collaborators, services and handlers
func Wiring(repo *repository.Repository, db Pinger, logger *zap.Logger) *App {
	payment := thirdparty.NewPaymentGateway(repo.Payment, logger)
	seats := thirdparty.NewSeatBooking(repo.Reservation, logger)

	service := usecase.NewService(entity.StandardPrices, payment, seats, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, logger),
	}
}

func setupRouter(handler *adaptor.Handler, db Pinger, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireTicket(r, handler.Ticket)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
