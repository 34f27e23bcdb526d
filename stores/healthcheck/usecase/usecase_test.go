package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/domain/keys"
	"github.com/auctionloft/goapi/service/cache"
	"github.com/auctionloft/goapi/service/cache/provider/primitive"
)

type testSuite struct {
	suite.Suite
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCheck() {
	cacheSvc := cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxHealthCheck,
		Cache: primitive.NewPrimitive("healthCheckTest", 1),
	})

	uc := New(cacheSvc)
	s.NoError(uc.Check(ctx.Background()))
}
