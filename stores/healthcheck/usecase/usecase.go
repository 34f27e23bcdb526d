package usecase

import (
	"time"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/domain"
	hcdomain "github.com/auctionloft/goapi/domain/healthcheck"
	"github.com/auctionloft/goapi/service/cache"
)

type impl struct {
	cache cache.Service
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(cacheSvc cache.Service) hcdomain.HealthCheckUsecase {
	return &impl{
		cache: cacheSvc,
	}
}

// Check exercises the cache with a set/get round trip. The service has no
// database, the cache and the upstream indexer are its only dependencies and
// probing the indexer on every health poll would burn rate limit.
func (im *impl) Check(context ctx.Ctx) error {
	probe := time.Now().UnixNano()
	if err := im.cache.Set(context, "probe", probe); err != nil {
		context.WithField("err", err).Error("cache.Set failed")
		return err
	}

	var got int64
	if err := im.cache.Get(context, "probe", &got); err != nil {
		context.WithField("err", err).Error("cache.Get failed")
		return err
	}
	if got != probe {
		return domain.ErrInternalServerError
	}
	return nil
}
