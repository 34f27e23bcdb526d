package insight

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/auction"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

const (
	// MaxPageLimit is the largest page size the indexer accepts
	MaxPageLimit = 1000
	// DefaultMaxPages bounds pagination against a misbehaving upstream
	DefaultMaxPages = 20
	// DefaultTimeout caps one upstream request when no timeout is configured;
	// a zero timeout would expire the request context immediately
	DefaultTimeout = 10 * time.Second

	clientIdHeader  = "x-client-id"
	requestIdHeader = "x-request-id"
)

// Client talks to a thirdweb-Insight style blockchain indexer. Event payload
// shapes are not trusted; events come back as auction.RawEvent for the
// projector to probe.
type Client interface {
	// GetEvents returns all decoded events of the given Solidity signature
	// emitted by contract, walking pages until a short page or the page
	// ceiling. The signature string must byte-match what the indexer expects;
	// a mismatch yields zero events, not an error.
	GetEvents(ctx bCtx.Ctx, contract domain.Address, eventSignature string) ([]auction.RawEvent, error)
	// GetCollectionNfts returns one page of the collection's token metadata.
	GetCollectionNfts(ctx bCtx.Ctx, contract domain.Address, page int, limit int) (*NftsResp, error)
}

type ClientCfg struct {
	HttpClient    http.Client
	BaseUrl       string
	ClientId      string
	ChainId       domain.ChainId
	Timeout       time.Duration
	PageLimit     int
	MaxPages      int
	RetryInterval time.Duration
}

// eventsResp tolerates the indexer's payload key drift: depending on the
// deployed indexer version the event list arrives under "items", "events"
// or "data".
type eventsResp struct {
	Items  []auction.RawEvent `json:"items"`
	Events []auction.RawEvent `json:"events"`
	Data   []auction.RawEvent `json:"data"`
}

func (r *eventsResp) list() []auction.RawEvent {
	if r.Items != nil {
		return r.Items
	}
	if r.Events != nil {
		return r.Events
	}
	if r.Data != nil {
		return r.Data
	}
	return []auction.RawEvent{}
}

type NftAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

type NftExtraMetadata struct {
	Attributes []NftAttribute `json:"attributes"`
}

type NftItem struct {
	TokenId       string            `json:"token_id"`
	Name          string            `json:"name"`
	ImageUrl      string            `json:"image_url"`
	Image         string            `json:"image"`
	ExtraMetadata *NftExtraMetadata `json:"extra_metadata"`
}

type NftsResp struct {
	Data  []NftItem `json:"data"`
	Total *int      `json:"total"`
}
