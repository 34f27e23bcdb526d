package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/delivery"
	"github.com/auctionloft/goapi/domain/nft"
)

type handler struct {
	nftUC nft.UseCase
}

// New will initialize the nft listing endpoints
func New(e *echo.Echo, nftUC nft.UseCase) {
	h := &handler{nftUC}
	e.GET("/nfts", h.getNfts)
}

func (h *handler) getNfts(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	// malformed numbers fall back to defaults; the usecase clamps the rest
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	res, err := h.nftUC.GetCollectionNfts(context, page, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeCachedJsonResp(c, http.StatusOK, res)
}
