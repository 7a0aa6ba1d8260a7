package main

import (
	"context"
	"fmt"

	"github.com/duka-eats/payflow/internal/adapter/collaborator"
	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/duka-eats/payflow/internal/adapter/gateway/momo"
	"github.com/duka-eats/payflow/internal/adapter/handler/http"
	"github.com/duka-eats/payflow/internal/adapter/logger"
	"github.com/duka-eats/payflow/internal/adapter/scheduler"
	"github.com/duka-eats/payflow/internal/adapter/storage"
	"github.com/duka-eats/payflow/internal/adapter/storage/repository"
	"github.com/duka-eats/payflow/internal/core/service"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("logger error:%s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	gateway, err := momo.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	rates, err := collaborator.NewAgreementRates(db, conf.Fees)
	if err != nil {
		log.Error("commission rates creating error", zap.Error(err))
		return
	}
	fees, err := collaborator.NewFlatCourierFees(conf.Fees)
	if err != nil {
		log.Error("courier fees creating error", zap.Error(err))
		return
	}
	notifier := collaborator.NewLogNotifier(log.Named("Events"))

	svc, err := service.NewService(repo, gateway, rates, fees, notifier,
		service.Options{
			Currency:               conf.Gateway.Currency,
			CallbackURL:            conf.Gateway.CallbackURL,
			MaxDisbursementRetries: conf.Jobs.MaxRetries,
			RetryBaseDelay:         conf.Jobs.RetryBaseDelay,
		}, log.Named("Service"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}

	reconciler, err := scheduler.NewReconciler(repo, gateway, svc, conf.Jobs, log.Named("Reconciler"))
	if err != nil {
		log.Error("reconciler creating error", zap.Error(err))
		return
	}
	retryWorker, err := scheduler.NewRetryWorker(repo, svc, log.Named("RetryWorker"))
	if err != nil {
		log.Error("retry worker creating error", zap.Error(err))
		return
	}

	jobs := cron.New()
	if err := reconciler.Schedule(ctx, jobs, conf.Jobs.ReconcileSpec); err != nil {
		log.Error("scheduling reconciler error", zap.Error(err))
		return
	}
	if err := retryWorker.Schedule(ctx, jobs, conf.Jobs.RetrySpec); err != nil {
		log.Error("scheduling retry worker error", zap.Error(err))
		return
	}
	jobs.Start()
	defer jobs.Stop()

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	webhookHandler, err := http.NewWebhookHandler(svc, log.Named("Webhook handler"))
	if err != nil {
		log.Error("webhook handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(svc, log.Named("Admin handler"))
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.Gateway, orderHandler, webhookHandler, adminHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
