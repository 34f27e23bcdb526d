package http

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/delivery"
	"github.com/auctionloft/goapi/domain/auction"
)

type handler struct {
	auctionUC auction.UseCase
}

// New will initialize the auction endpoints
func New(e *echo.Echo, auctionUC auction.UseCase) {
	h := &handler{auctionUC}
	e.GET("/auction-map", h.getAuctionMap)
	e.GET("/auction-index", h.getAuctionIndex)
}

func (h *handler) getAuctionMap(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	m, err := h.auctionUC.GetAuctionMap(context)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	if c.QueryParam("format") == "csv" {
		return h.writeCsv(c, m)
	}
	return delivery.MakeCachedJsonResp(c, http.StatusOK, m)
}

func (h *handler) getAuctionIndex(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	index, err := h.auctionUC.GetAuctionIndex(context)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeCachedJsonResp(c, http.StatusOK, index)
}

func (h *handler) writeCsv(c echo.Context, m *auction.Map) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set("Cache-Control", delivery.CacheControlSwr)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write([]string{"tokenId", "listingId", "seller", "endSec", "bidCount", "status"}); err != nil {
		return err
	}
	for _, rec := range m.Items {
		row := []string{
			rec.TokenId.String(),
			rec.ListingId.String(),
			rec.Seller.ToLowerStr(),
			strconv.FormatInt(rec.EndSec, 10),
			strconv.Itoa(rec.BidCount),
			rec.Status,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
