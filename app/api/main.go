package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/database/mongoclient"
	"github.com/meterex/goapi/base/database/redisclient"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/base/metrics"
	bValidator "github.com/meterex/goapi/base/validator"
	"github.com/meterex/goapi/domain"
	mmiddleware "github.com/meterex/goapi/middleware"
	"github.com/meterex/goapi/service/chain"
	"github.com/meterex/goapi/service/query"
	"github.com/meterex/goapi/service/redis"
	audit_repository "github.com/meterex/goapi/stores/audit/repository"
	audit_usecase "github.com/meterex/goapi/stores/audit/usecase"
	auth_delivery "github.com/meterex/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/meterex/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/meterex/goapi/stores/auth/usecase"
	hc_delivery "github.com/meterex/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/meterex/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/meterex/goapi/stores/healthcheck/usecase"
	ledger_delivery "github.com/meterex/goapi/stores/ledger/delivery/http"
	ledger_repository "github.com/meterex/goapi/stores/ledger/repository"
	ledger_usecase "github.com/meterex/goapi/stores/ledger/usecase"
	listing_delivery "github.com/meterex/goapi/stores/listing/delivery/http"
	listing_repository "github.com/meterex/goapi/stores/listing/repository"
	listing_usecase "github.com/meterex/goapi/stores/listing/usecase"
	marketplace_delivery "github.com/meterex/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/meterex/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/meterex/goapi/stores/marketplace/usecase"
	registry_delivery "github.com/meterex/goapi/stores/registry/delivery/http"
	registry_repository "github.com/meterex/goapi/stores/registry/repository"
	registry_usecase "github.com/meterex/goapi/stores/registry/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	context.Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:   viper.GetString("chain.rpcUrl"),
		CacheTtl: viper.GetDuration("chain.heightCacheTtl"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain client failed to start")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListingRepo(q)
	saleRepo := listing_repository.NewSaleRepo(q)
	sellerIndexRepo := listing_repository.NewSellerIndexRepo(q)
	sequenceRepo := listing_repository.NewSequenceRepo(q)
	registryRepo := registry_repository.NewRegistryRepo(q)
	settingsRepo := marketplace_repository.NewSettingsRepo(q)
	balanceRepo := ledger_repository.NewBalanceRepo(q)
	auditRepo := audit_repository.NewAuditRepo(q)

	auditEmitter := audit_usecase.NewEmitter(auditRepo)
	hc := hc_usecase.New(hcRepo)
	registry := registry_usecase.New(&registry_usecase.RegistryUseCaseCfg{
		RegistryRepo: registryRepo,
		AuditEmitter: auditEmitter,
	})
	marketplace := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		SettingsRepo: settingsRepo,
		AuditEmitter: auditEmitter,
	})
	ledger := ledger_usecase.New(&ledger_usecase.LedgerUseCaseCfg{
		BalanceRepo:  balanceRepo,
		AuditEmitter: auditEmitter,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:           listingRepo,
		SaleRepo:              saleRepo,
		SellerIndexRepo:       sellerIndexRepo,
		SequenceRepo:          sequenceRepo,
		RegistryUC:            registry,
		MarketplaceUC:         marketplace,
		LedgerUC:              ledger,
		HeightClock:           chainService,
		AuditEmitter:          auditEmitter,
		Query:                 q,
		PaymentToken:          domain.Address(viper.GetString("marketplace.paymentToken")).ToLower(),
		DefaultDurationBlocks: viper.GetUint64("marketplace.defaultDurationBlocks"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	ownerAddresses := viper.GetStringSlice("owner.addresses")
	authMiddleware := auth_middleware.New(auth, ownerAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listing, authMiddleware, viper.GetInt32("marketplace.paymentTokenDecimals"))
	marketplace_delivery.New(e, marketplace, authMiddleware)
	registry_delivery.New(e, registry, authMiddleware)
	ledger_delivery.New(e, ledger, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
