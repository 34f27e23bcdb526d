package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/delivery"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/auction"
	mAuction "github.com/auctionloft/goapi/domain/auction/mocks"
)

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	uc *mAuction.UseCase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.uc = &mAuction.UseCase{}
	New(s.e, s.uc)
}

func (s *handlerSuite) TearDownTest() {
	s.uc.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func sampleMap() *auction.Map {
	return &auction.Map{Items: []*auction.Record{
		{
			TokenId:   "100",
			ListingId: "7",
			Seller:    "0xabc",
			EndSec:    1700003600,
			EndMs:     1700003600000,
			BidCount:  3,
			BuyoutWei: "0",
			Status:    auction.StatusActive,
		},
	}}
}

func (s *handlerSuite) TestGetAuctionMap() {
	s.uc.On("GetAuctionMap", mock.Anything).Return(sampleMap(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auction-map", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(delivery.CacheControlSwr, rec.Header().Get("Cache-Control"))

	resp := delivery.JsonResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(delivery.JsonResponseStatusSuccess, resp.Status)

	data := resp.Data.(map[string]interface{})
	items := data["items"].([]interface{})
	s.Require().Len(items, 1)
	item := items[0].(map[string]interface{})
	s.Equal("100", item["tokenId"])
	s.Equal("7", item["listingId"])
	s.Equal(float64(3), item["bidCount"])
}

func (s *handlerSuite) TestGetAuctionMapCsv() {
	s.uc.On("GetAuctionMap", mock.Anything).Return(sampleMap(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auction-map?format=csv", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	s.Require().Len(lines, 2)
	s.Equal("tokenId,listingId,seller,endSec,bidCount,status", lines[0])
	s.Equal("100,7,0xabc,1700003600,3,active", lines[1])
}

func (s *handlerSuite) TestGetAuctionMapError() {
	s.uc.On("GetAuctionMap", mock.Anything).Return(nil, errors.New("upstream down")).Once()

	req := httptest.NewRequest(http.MethodGet, "/auction-map", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(delivery.CacheControlNoStore, rec.Header().Get("Cache-Control"))

	resp := delivery.JsonResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(delivery.JsonResponseStatusFail, resp.Status)
	s.Equal("upstream down", resp.Data)
}

func (s *handlerSuite) TestGetAuctionMapMissingConfig() {
	s.uc.On("GetAuctionMap", mock.Anything).Return(nil, domain.ErrMissingConfig).Once()

	req := httptest.NewRequest(http.MethodGet, "/auction-map", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := delivery.JsonResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(domain.ErrMissingConfig.Error(), resp.Data)
}

func (s *handlerSuite) TestGetAuctionIndex() {
	index := auction.TokenIndex{"100": sampleMap().Items[0]}
	s.uc.On("GetAuctionIndex", mock.Anything).Return(index, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auction-index", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(delivery.CacheControlSwr, rec.Header().Get("Cache-Control"))

	resp := delivery.JsonResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	s.Contains(data, "100")
}
