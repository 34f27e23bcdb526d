package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/ptr"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/service/insight"
	mInsight "github.com/auctionloft/goapi/service/insight/mocks"
)

const collection = domain.Address("0x00000000000000000000000000000000000000bb")

type nftSuite struct {
	suite.Suite

	client *mInsight.Client
	im     *impl
}

func (s *nftSuite) SetupTest() {
	s.client = &mInsight.Client{}
	s.im = New(&NftUseCaseCfg{
		Insight:    s.client,
		Collection: collection,
		ClientId:   "client-id",
	}).(*impl)
}

func (s *nftSuite) TearDownTest() {
	s.client.AssertExpectations(s.T())
}

func TestNftSuite(t *testing.T) {
	suite.Run(t, new(nftSuite))
}

func (s *nftSuite) TestClampLimit() {
	cases := []struct {
		in  int
		exp int
	}{
		{0, 48},
		{-5, 48},
		{1, 12},
		{12, 12},
		{13, 12},
		{24, 24},
		{50, 48},
		{100, 96},
		{9999, 1000},
	}
	for _, c := range cases {
		s.Equal(c.exp, clampLimit(c.in), "limit %d", c.in)
	}
}

func (s *nftSuite) TestGetCollectionNfts() {
	resp := &insight.NftsResp{
		Data: []insight.NftItem{
			{TokenId: "7", Name: "Seven", ImageUrl: "https://cdn/7.png"},
			{TokenId: "8", Name: "Eight", Image: "ipfs://8.png"},
			{
				TokenId: "9",
				ExtraMetadata: &insight.NftExtraMetadata{
					Attributes: []insight.NftAttribute{
						{TraitType: "Background", Value: "Gold"},
						{TraitType: "Rank", Value: float64(3)},
						{TraitType: "", Value: "dropped"},
						{TraitType: "Empty", Value: nil},
					},
				},
			},
		},
		Total: ptr.Int(3),
	}
	s.client.On("GetCollectionNfts", mock.Anything, collection, 0, 48).Return(resp, nil).Once()

	page, err := s.im.GetCollectionNfts(ctx.Background(), 0, 50)
	s.Require().NoError(err)
	s.Require().Len(page.Data, 3)
	s.Equal(48, page.Limit)
	s.Equal(3, *page.Total)

	// image_url preferred, image fallback
	s.Equal("https://cdn/7.png", page.Data[0].Image)
	s.Equal("ipfs://8.png", page.Data[1].Image)

	// malformed attributes dropped, values stringified
	s.Require().Len(page.Data[2].Attributes, 2)
	s.Equal("Gold", page.Data[2].Attributes[0].Value)
	s.Equal("3", page.Data[2].Attributes[1].Value)
}

func (s *nftSuite) TestNegativePageNormalized() {
	s.client.On("GetCollectionNfts", mock.Anything, collection, 0, 12).
		Return(&insight.NftsResp{}, nil).Once()

	page, err := s.im.GetCollectionNfts(ctx.Background(), -3, 12)
	s.Require().NoError(err)
	s.Equal(0, page.Page)
}

func (s *nftSuite) TestUpstreamFailure() {
	boom := errors.New("indexer down")
	s.client.On("GetCollectionNfts", mock.Anything, collection, 0, 48).Return(nil, boom).Once()

	_, err := s.im.GetCollectionNfts(ctx.Background(), 0, 0)
	s.ErrorIs(err, boom)
}

func (s *nftSuite) TestMissingConfig() {
	im := New(&NftUseCaseCfg{Insight: s.client, Collection: collection}).(*impl)
	_, err := im.GetCollectionNfts(ctx.Background(), 0, 48)
	s.ErrorIs(err, domain.ErrMissingConfig)

	im = New(&NftUseCaseCfg{Insight: s.client, ClientId: "client-id"}).(*impl)
	_, err = im.GetCollectionNfts(ctx.Background(), 0, 48)
	s.ErrorIs(err, domain.ErrMissingConfig)
}
