package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/log"
	bValidator "github.com/auctionloft/goapi/base/validator"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/keys"
	mmiddleware "github.com/auctionloft/goapi/middleware"
	"github.com/auctionloft/goapi/service/cache"
	"github.com/auctionloft/goapi/service/cache/provider"
	"github.com/auctionloft/goapi/service/cache/provider/compound"
	"github.com/auctionloft/goapi/service/cache/provider/primitive"
	redisCache "github.com/auctionloft/goapi/service/cache/provider/redis"
	"github.com/auctionloft/goapi/service/insight"
	auction_delivery "github.com/auctionloft/goapi/stores/auction/delivery/http"
	auction_usecase "github.com/auctionloft/goapi/stores/auction/usecase"
	hc_delivery "github.com/auctionloft/goapi/stores/healthcheck/delivery/http"
	hc_usecase "github.com/auctionloft/goapi/stores/healthcheck/usecase"
	nft_delivery "github.com/auctionloft/goapi/stores/nft/delivery/http"
	nft_usecase "github.com/auctionloft/goapi/stores/nft/usecase"
)

func init() {
	configPath := pflag.StringP("config", "c", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// mustAddress validates a configured contract address. Empty is allowed,
// the usecases answer with a config error until it is filled in.
func mustAddress(key string) domain.Address {
	raw := viper.GetString(key)
	if raw == "" {
		log.Log().WithField("key", key).Warn("address not configured")
		return ""
	}
	if !bValidator.IsHexAddress(raw) {
		log.Log().WithField("key", key).WithField("address", raw).Panic("invalid address in config")
	}
	return domain.Address(raw).ToLower()
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

	// init cache provider, local always, redis layered in front of refetch
	// when configured so replicas share one copy of the auction map
	context.Info("init cache")
	var cacheProvider provider.Provider = primitive.NewPrimitive("api", 16)
	if viper.GetBool("redis_cache.enabled") {
		pool := redisCache.NewPool(viper.GetString("redis_cache.uri"), viper.GetString("redis_cache.password"))
		cacheProvider = compound.NewCompound([]provider.Provider{
			cacheProvider,
			redisCache.NewRedis(pool),
		})
	}

	// init insight client
	context.Info("init insight client")
	httpTimeout := viper.GetDuration("http.timeout")
	insightClient := insight.NewClient(&insight.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("insight.baseUrl"),
		ClientId:   viper.GetString("insight.clientId"),
		ChainId:    domain.ChainId(viper.GetInt32("insight.chainId")),
		Timeout:    httpTimeout,
		PageLimit:  viper.GetInt("insight.pageLimit"),
		MaxPages:   viper.GetInt("insight.maxPages"),
	})

	marketplace := mustAddress("marketplace.address")
	collection := mustAddress("collection.address")

	skipTokenIds := make(map[domain.TokenId]struct{})
	for _, id := range viper.GetStringSlice("auction.skipTokenIds") {
		skipTokenIds[domain.TokenId(id)] = struct{}{}
	}
	sellerAllowlist := make(map[domain.Address]struct{})
	for _, addr := range viper.GetStringSlice("auction.sellerAllowlist") {
		sellerAllowlist[domain.Address(addr).ToLower()] = struct{}{}
	}

	auctionCacheTtl := viper.GetDuration("auction.cacheTtl")
	if auctionCacheTtl == 0 {
		auctionCacheTtl = time.Minute
	}

	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Insight: insightClient,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   auctionCacheTtl,
			Pfx:   keys.PfxAuctionMap,
			Cache: cacheProvider,
		}),
		Marketplace:      marketplace,
		ClientId:         viper.GetString("insight.clientId"),
		CreatedSignature: viper.GetString("marketplace.createdSignature"),
		BidSignature:     viper.GetString("marketplace.bidSignature"),
		ClosedSignature:  viper.GetString("marketplace.closedSignature"),
		Projector: auction_usecase.ProjectorCfg{
			MinListingId:    viper.GetInt64("auction.minListingId"),
			SkipTokenIds:    skipTokenIds,
			SellerAllowlist: sellerAllowlist,
		},
	})

	nftUC := nft_usecase.New(&nft_usecase.NftUseCaseCfg{
		Insight:    insightClient,
		Collection: collection,
		ClientId:   viper.GetString("insight.clientId"),
	})

	healthCheckUC := hc_usecase.New(cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxHealthCheck,
		Cache: cacheProvider,
	}))

	auction_delivery.New(e, auctionUC)
	nft_delivery.New(e, nftUC)
	hc_delivery.New(e, healthCheckUC)

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
	sCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(sCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
