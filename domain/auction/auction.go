package auction

import (
	"strconv"

	bCtx "github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/domain"
)

// AuctionId is the on-chain identifier of one auction instance, normalized to
// a decimal string. Listing id and auction id are synonyms in this domain.
type AuctionId string

func (id AuctionId) String() string {
	return string(id)
}

// Int64 parses the id for numeric comparisons, e.g. the minimum listing floor.
func (id AuctionId) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RawEvent is one decoded log entry exactly as returned by the indexer. No
// shape is guaranteed; the projector probes it defensively.
type RawEvent map[string]interface{}

const StatusActive = "active"

// Record is the point-in-time projection of one live auction for one token.
type Record struct {
	TokenId       domain.TokenId `json:"tokenId"`
	ListingId     AuctionId      `json:"listingId"`
	Seller        domain.Address `json:"seller,omitempty"`
	EndSec        int64          `json:"endSec"`
	EndMs         int64          `json:"endMs"`
	BidCount      int            `json:"bidCount"`
	MinimumBidWei string         `json:"minimumBidWei,omitempty"`
	BuyoutWei     string         `json:"buyoutWei"`
	BuyoutDisplay string         `json:"buyoutDisplay,omitempty"`
	Status        string         `json:"status"`
}

// Map is the list form served by /auction-map, sorted by numeric token id so
// repeated projections of the same events are byte-identical.
type Map struct {
	Items []*Record `json:"items"`
}

// TokenIndex is the token-keyed object form served by /auction-index.
type TokenIndex map[domain.TokenId]*Record

// UseCase fetches the three event streams, folds them into the live view and
// caches the result for a short TTL.
type UseCase interface {
	GetAuctionMap(c bCtx.Ctx) (*Map, error)
	GetAuctionIndex(c bCtx.Ctx) (TokenIndex, error)
}
