package nft

import (
	bCtx "github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/domain"
)

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Item is one collection token reshaped for the storefront grid. The
// indexer's image field naming varies per chain, it is normalized to Image.
type Item struct {
	TokenId    domain.TokenId `json:"tokenId"`
	Name       string         `json:"name,omitempty"`
	Image      string         `json:"image,omitempty"`
	Attributes []Attribute    `json:"attributes,omitempty"`
}

type Page struct {
	Data  []Item `json:"data"`
	Total *int   `json:"total,omitempty"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type UseCase interface {
	GetCollectionNfts(c bCtx.Ctx, page int, limit int) (*Page, error)
}
