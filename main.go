package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/api"
	"github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("budget-reconciler starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	migrationStatus, err := storage.RunMigrations(dbStorage.DB, envConfig.MigrationsPath)
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}
	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  migrationStatus.PreMigrationVersion,
		"postMigrationVersion": migrationStatus.PostMigrationVersion,
	}).Info("Migration status")

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.UploadDir, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if envConfig.AutoImport {
		autoImport(ctx, logger, svc, envConfig.UploadDir)
	}

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Storage: dbStorage,
		Service: svc,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Rest.Serve")
	}
}

// autoImport picks up statements dropped into the upload directory while
// the server was down. Already imported files are skipped by the ledger.
func autoImport(ctx context.Context, logger *logrus.Logger, svc *service.Service, dir string) {
	results, err := svc.Import.ImportDir(ctx, dir)
	if err != nil {
		logger.WithError(err).Error("main.autoImport")
		return
	}

	counts := map[service.ImportStatus]int{}
	for _, result := range results {
		counts[result.Status]++
	}
	logger.WithFields(logrus.Fields{
		"dir":      dir,
		"imported": counts[service.ImportStatusImported],
		"skipped":  counts[service.ImportStatusSkipped],
		"empty":    counts[service.ImportStatusEmpty],
		"failed":   counts[service.ImportStatusFailed],
	}).Info("main.autoImport.Complete")
}
