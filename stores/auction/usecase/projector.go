package usecase

import (
	"sort"
	"strconv"
	"time"

	"github.com/auctionloft/goapi/base/pricefmt"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/auction"
)

// ProjectorCfg carries the filtering rules applied while folding raw events
// into the live auction view. Now is injectable so tests don't depend on the
// wall clock.
type ProjectorCfg struct {
	// MinListingId excludes pre-production/test listings below the floor
	MinListingId int64
	// SkipTokenIds excludes known poison-pill tokens
	SkipTokenIds map[domain.TokenId]struct{}
	// SellerAllowlist, when non-empty, keeps only auctions whose extracted
	// seller is on the list; auctions with no recoverable seller still pass
	SellerAllowlist map[domain.Address]struct{}
	Now             func() time.Time
}

type projector struct {
	minListingId    int64
	skipTokenIds    map[domain.TokenId]struct{}
	sellerAllowlist map[domain.Address]struct{}
	now             func() time.Time
}

func newProjector(cfg ProjectorCfg) *projector {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &projector{
		minListingId:    cfg.MinListingId,
		skipTokenIds:    cfg.SkipTokenIds,
		sellerAllowlist: cfg.SellerAllowlist,
		now:             now,
	}
}

// project folds the three raw event streams into the token -> live auction
// mapping. Malformed events are skipped one at a time; a smaller result set
// is the only way partial data shows. Output is fully deterministic: repeated
// projection of the same inputs is byte-identical.
func (p *projector) project(created, bids, closed []auction.RawEvent) *auction.Map {
	// settled auctions are excluded no matter what else references them
	closedSet := map[auction.AuctionId]struct{}{}
	for _, ev := range closed {
		if id, ok := extractClosedAuctionId(ev); ok {
			closedSet[id] = struct{}{}
		}
	}

	// index surviving creations by auction id, later-or-equal end wins so
	// re-applying the same event never changes the result
	byId := map[auction.AuctionId]*createdAuction{}
	for _, ev := range created {
		a, ok := extractCreated(ev)
		if !ok {
			continue
		}
		if !p.aboveFloor(a.auctionId) {
			continue
		}
		if _, isClosed := closedSet[a.auctionId]; isClosed {
			continue
		}
		if _, skip := p.skipTokenIds[a.tokenId]; skip {
			continue
		}
		if !p.sellerAllowed(a.seller) {
			continue
		}
		if prev, dup := byId[a.auctionId]; !dup || a.endSec >= prev.endSec {
			byId[a.auctionId] = a
		}
	}

	// bids only count toward auctions that survived filtering
	bidCounts := map[auction.AuctionId]int{}
	for _, ev := range bids {
		id, ok := extractBidAuctionId(ev)
		if !ok {
			continue
		}
		if !p.aboveFloor(id) {
			continue
		}
		if _, isClosed := closedSet[id]; isClosed {
			continue
		}
		if _, alive := byId[id]; !alive {
			continue
		}
		bidCounts[id]++
	}

	// collapse to one record per token: the auction with the greatest
	// remaining time-to-end wins. Iterating ids in ascending numeric order
	// with >= makes the higher id win exact ties, independent of map order.
	ids := make([]auction.AuctionId, 0, len(byId))
	for id := range byId {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return numericLess(ids[i], ids[j]) })

	nowSec := p.now().Unix()
	byToken := map[domain.TokenId]*auction.Record{}
	for _, id := range ids {
		rec := p.toRecord(byId[id], bidCounts[id])
		existing := byToken[rec.TokenId]
		if existing == nil || remaining(rec.EndSec, nowSec) >= remaining(existing.EndSec, nowSec) {
			byToken[rec.TokenId] = rec
		}
	}

	items := make([]*auction.Record, 0, len(byToken))
	for _, rec := range byToken {
		items = append(items, rec)
	}
	sort.Slice(items, func(i, j int) bool {
		return numericLess(auction.AuctionId(items[i].TokenId), auction.AuctionId(items[j].TokenId))
	})

	return &auction.Map{Items: items}
}

func (p *projector) aboveFloor(id auction.AuctionId) bool {
	n, ok := id.Int64()
	return ok && n >= p.minListingId
}

func (p *projector) sellerAllowed(seller domain.Address) bool {
	if len(p.sellerAllowlist) == 0 || seller.IsEmpty() {
		return true
	}
	_, ok := p.sellerAllowlist[seller.ToLower()]
	return ok
}

func (p *projector) toRecord(a *createdAuction, bidCount int) *auction.Record {
	rec := &auction.Record{
		TokenId:       a.tokenId,
		ListingId:     a.auctionId,
		Seller:        a.seller,
		EndSec:        a.endSec,
		EndMs:         a.endSec * 1000,
		BidCount:      bidCount,
		MinimumBidWei: a.minimumBidWei,
		BuyoutWei:     a.buyoutWei,
		Status:        auction.StatusActive,
	}
	if rec.BuyoutWei == "" {
		rec.BuyoutWei = "0"
	}
	if rec.BuyoutWei != "0" {
		rec.BuyoutDisplay = pricefmt.WeiToDisplayOrZero(rec.BuyoutWei)
	}
	return rec
}

// remaining is the time-to-end in seconds, floored at zero so already-ended
// auctions compare equal instead of more negative than older ones.
func remaining(endSec, nowSec int64) int64 {
	if d := endSec - nowSec; d > 0 {
		return d
	}
	return 0
}

// numericLess orders decimal-string ids numerically, falling back to string
// order when either side does not parse.
func numericLess(a, b auction.AuctionId) bool {
	ai, err1 := strconv.ParseInt(string(a), 10, 64)
	bi, err2 := strconv.ParseInt(string(b), 10, 64)
	if err1 != nil || err2 != nil {
		return a < b
	}
	return ai < bi
}
