package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/bills"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/imports"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/rules"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/status"
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage *storage.Storage
	Service *service.Service
}

// Handler builds the mux with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	api := humago.New(mux, huma.DefaultConfig("Budget Reconciler", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	imports.NewCreateImportHandler(r.Service.Import).Register(api)
	imports.NewListImportsHandler(r.Service.Import).Register(api)
	imports.NewCalendarEventsHandler(r.Service.Import).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Reconcile).Register(api)
	rules.NewRuleStatusHandler(r.Service.Reconcile).Register(api)
	rules.NewRuleHandler(r.Service.Rule).Register(api)
	rules.NewRecurringBillHandler(r.Service.Rule).Register(api)
	bills.NewBillHandler(r.Service.Bill).Register(api)
	bills.NewGenerateBillsHandler(r.Service.Bill).Register(api)

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
