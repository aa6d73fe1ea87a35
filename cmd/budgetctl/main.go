package main

import (
	"context"
	"os"

	"github.com/carson-networks/budget-reconciler/internal/commands"
	"github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
)

func main() {
	if err := commands.NewRootCommand(openBackend).Execute(); err != nil {
		os.Exit(1)
	}
}

// openBackend wires the same storage, write queue and services as the server.
func openBackend(ctx context.Context) (*commands.Backend, func(), error) {
	logger := logging.SetupLogging()
	logger.SetOutput(os.Stderr)

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.SetLevel(logger, env.LogLevel); err != nil {
		return nil, nil, err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers, logger)
	delegator.Start()

	svc := service.NewService(store, delegator, env.UploadDir, logger)
	release := func() {
		delegator.Stop()
		_ = store.Close()
	}

	return &commands.Backend{
		Imports:      svc.Import,
		Bills:        svc.Bill,
		Reconcile:    svc.Reconcile,
		Transactions: svc.Transaction,
		UploadDir:    env.UploadDir,
	}, release, nil
}
