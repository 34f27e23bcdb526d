package usecase

import (
	"fmt"

	bCtx "github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/nft"
	"github.com/auctionloft/goapi/service/insight"
)

// allowedLimits are the page sizes the storefront grid renders cleanly;
// arbitrary client-supplied limits are clamped to the nearest not-greater
// entry (never below the smallest) so the proxy never amplifies abusive
// page sizes upstream.
var allowedLimits = []int{12, 24, 48, 96, 250, 500, 1000}

const defaultLimit = 48

type NftUseCaseCfg struct {
	Insight    insight.Client
	Collection domain.Address
	ClientId   string
}

type impl struct {
	insight    insight.Client
	collection domain.Address
	clientId   string
}

func New(cfg *NftUseCaseCfg) nft.UseCase {
	return &impl{
		insight:    cfg.Insight,
		collection: cfg.Collection,
		clientId:   cfg.ClientId,
	}
}

func (im *impl) GetCollectionNfts(c bCtx.Ctx, page int, limit int) (*nft.Page, error) {
	if im.clientId == "" || im.collection.IsEmpty() {
		return nil, domain.ErrMissingConfig
	}
	if page < 0 {
		page = 0
	}
	limit = clampLimit(limit)

	resp, err := im.insight.GetCollectionNfts(c, im.collection, page, limit)
	if err != nil {
		c.WithField("err", err).Error("insight.GetCollectionNfts failed")
		return nil, err
	}

	items := make([]nft.Item, 0, len(resp.Data))
	for _, it := range resp.Data {
		items = append(items, toItem(it))
	}
	return &nft.Page{
		Data:  items,
		Total: resp.Total,
		Page:  page,
		Limit: limit,
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	clamped := allowedLimits[0]
	for _, l := range allowedLimits {
		if l <= limit {
			clamped = l
		}
	}
	return clamped
}

// toItem normalizes indexer field naming drift: the image may arrive under
// image_url or image depending on indexer version.
func toItem(it insight.NftItem) nft.Item {
	image := it.ImageUrl
	if image == "" {
		image = it.Image
	}

	item := nft.Item{
		TokenId: domain.TokenId(it.TokenId),
		Name:    it.Name,
		Image:   image,
	}
	if it.ExtraMetadata != nil {
		for _, attr := range it.ExtraMetadata.Attributes {
			if attr.TraitType == "" || attr.Value == nil {
				continue
			}
			item.Attributes = append(item.Attributes, nft.Attribute{
				TraitType: attr.TraitType,
				Value:     fmt.Sprint(attr.Value),
			})
		}
	}
	return item
}
