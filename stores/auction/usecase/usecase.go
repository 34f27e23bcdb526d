package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/log"
	"github.com/auctionloft/goapi/base/metrics"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/auction"
	"github.com/auctionloft/goapi/service/cache"
	"github.com/auctionloft/goapi/service/insight"
)

// Default thirdweb english-auction event signatures. The deployed contract
// ABI decides the real strings; they are configuration, not assumptions.
const (
	DefaultCreatedSignature = "NewAuction(address,uint256,address,(uint256,uint256,uint256,uint256,uint256,uint64,uint64,uint64,uint64,address,address,address,uint8,uint8))"
	DefaultBidSignature     = "NewBid(uint256,address,address,uint256,(uint256,uint256,uint256,uint256,uint256,uint64,uint64,uint64,uint64,address,address,address,uint8,uint8))"
	DefaultClosedSignature  = "AuctionClosed(uint256,address,address,uint256,address,address)"
)

const auctionMapCacheKey = "live"

type AuctionUseCaseCfg struct {
	Insight     insight.Client
	Cache       cache.Service
	Marketplace domain.Address
	// ClientId is only inspected for presence: a missing credential
	// short-circuits before any outbound call
	ClientId         string
	CreatedSignature string
	BidSignature     string
	ClosedSignature  string
	Projector        ProjectorCfg
}

type impl struct {
	insight     insight.Client
	cache       cache.Service
	marketplace domain.Address
	clientId    string
	createdSig  string
	bidSig      string
	closedSig   string
	projector   *projector
	met         metrics.Service
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	createdSig := cfg.CreatedSignature
	if createdSig == "" {
		createdSig = DefaultCreatedSignature
	}
	bidSig := cfg.BidSignature
	if bidSig == "" {
		bidSig = DefaultBidSignature
	}
	closedSig := cfg.ClosedSignature
	if closedSig == "" {
		closedSig = DefaultClosedSignature
	}
	return &impl{
		insight:     cfg.Insight,
		cache:       cfg.Cache,
		marketplace: cfg.Marketplace,
		clientId:    cfg.ClientId,
		createdSig:  createdSig,
		bidSig:      bidSig,
		closedSig:   closedSig,
		projector:   newProjector(cfg.Projector),
		met:         metrics.New("auction"),
	}
}

func (im *impl) GetAuctionMap(c ctx.Ctx) (*auction.Map, error) {
	if im.clientId == "" || im.marketplace.IsEmpty() {
		return nil, domain.ErrMissingConfig
	}

	res := &auction.Map{}
	err := im.cache.GetByFunc(c, auctionMapCacheKey, res, func() (interface{}, error) {
		return im.buildMap(c)
	})
	if err != nil {
		c.WithField("err", err).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetAuctionIndex(c ctx.Ctx) (auction.TokenIndex, error) {
	m, err := im.GetAuctionMap(c)
	if err != nil {
		return nil, err
	}
	index := auction.TokenIndex{}
	for _, rec := range m.Items {
		index[rec.TokenId] = rec
	}
	return index, nil
}

type eventKind int

const (
	kindCreated eventKind = iota
	kindBid
	kindClosed
)

type fetchResult struct {
	kind   eventKind
	events []auction.RawEvent
}

// buildMap fans the three event fetches out in parallel and joins them before
// projecting, so latency is bounded by the slowest upstream call. Creation
// and closure fetches are required; a failed bid fetch degrades to zero bid
// counts instead of failing the request.
func (im *impl) buildMap(c ctx.Ctx) (*auction.Map, error) {
	defer im.met.BumpTime("buildMap.time").End()

	b := goroutines.NewBatch(3, goroutines.WithBatchSize(3))
	defer b.Close()

	b.Queue(func() (interface{}, error) {
		events, err := im.insight.GetEvents(c, im.marketplace, im.createdSig)
		if err != nil {
			return nil, xerrors.Errorf("fetch auction-created events: %w", err)
		}
		return fetchResult{kindCreated, events}, nil
	})
	b.Queue(func() (interface{}, error) {
		events, err := im.insight.GetEvents(c, im.marketplace, im.bidSig)
		if err != nil {
			// optional signal, degrade to zero bid counts
			c.WithField("err", err).Warn("bid fetch failed, degrading to zero bid counts")
			im.met.BumpSum("bidFetch.warn", 1)
			return fetchResult{kindBid, nil}, nil
		}
		return fetchResult{kindBid, events}, nil
	})
	b.Queue(func() (interface{}, error) {
		events, err := im.insight.GetEvents(c, im.marketplace, im.closedSig)
		if err != nil {
			return nil, xerrors.Errorf("fetch auction-closed events: %w", err)
		}
		return fetchResult{kindClosed, events}, nil
	})
	b.QueueComplete()

	var created, bids, closed []auction.RawEvent
	var fetchErr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("required event fetch failed")
			if fetchErr == nil {
				fetchErr = err
			}
			continue
		}
		res := ret.Value().(fetchResult)
		switch res.kind {
		case kindCreated:
			created = res.events
		case kindBid:
			bids = res.events
		case kindClosed:
			closed = res.events
		}
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	c.WithFields(log.Fields{
		"created": len(created),
		"bids":    len(bids),
		"closed":  len(closed),
	}).Info("projecting auction map")

	return im.projector.project(created, bids, closed), nil
}
