package main

import (
	"context"
	"fmt"

	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/auth"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/client/gateway"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/config"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/handler/http"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/logger"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/storage"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/storage/repository"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
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
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	reference, err := repository.NewReferenceData(db)
	if err != nil {
		log.Error("reference data creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gatewayClient, err := gateway.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, gatewayClient, reference, reference,
		conf.Gateway.CallbackURL(), log.Named("Service"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}

	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, paymentHandler)
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
