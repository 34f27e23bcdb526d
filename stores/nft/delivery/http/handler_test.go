package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/delivery"
	"github.com/auctionloft/goapi/base/ptr"
	"github.com/auctionloft/goapi/domain/nft"
	mNft "github.com/auctionloft/goapi/domain/nft/mocks"
)

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	uc *mNft.UseCase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.uc = &mNft.UseCase{}
	New(s.e, s.uc)
}

func (s *handlerSuite) TearDownTest() {
	s.uc.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func samplePage() *nft.Page {
	return &nft.Page{
		Data: []nft.Item{
			{TokenId: "100", Name: "Loft #100", Image: "ipfs://img/100"},
		},
		Total: ptr.Int(1),
		Page:  2,
		Limit: 24,
	}
}

func (s *handlerSuite) TestGetNfts() {
	s.uc.On("GetCollectionNfts", mock.Anything, 2, 24).Return(samplePage(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/nfts?page=2&limit=24", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(delivery.CacheControlSwr, rec.Header().Get("Cache-Control"))

	resp := delivery.JsonResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(delivery.JsonResponseStatusSuccess, resp.Status)

	data := resp.Data.(map[string]interface{})
	s.Equal(float64(2), data["page"])
	s.Equal(float64(24), data["limit"])
	items := data["data"].([]interface{})
	s.Require().Len(items, 1)
	item := items[0].(map[string]interface{})
	s.Equal("100", item["tokenId"])
	s.Equal("Loft #100", item["name"])
}

func (s *handlerSuite) TestGetNftsDefaults() {
	// missing and malformed params fall through as zero values
	s.uc.On("GetCollectionNfts", mock.Anything, 0, 0).Return(samplePage(), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/nfts?limit=abc", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestGetNftsError() {
	s.uc.On("GetCollectionNfts", mock.Anything, 0, 0).Return(nil, errors.New("upstream down")).Once()

	req := httptest.NewRequest(http.MethodGet, "/nfts", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(delivery.CacheControlNoStore, rec.Header().Get("Cache-Control"))

	resp := delivery.JsonResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(delivery.JsonResponseStatusFail, resp.Status)
	s.Equal("upstream down", resp.Data)
}
