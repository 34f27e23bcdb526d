package insight

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/auctionloft/goapi/base/backoff"
	bCtx "github.com/auctionloft/goapi/base/ctx"
	"github.com/auctionloft/goapi/base/log"
	"github.com/auctionloft/goapi/base/metrics"
	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/auction"
)

func NewClient(cfg *ClientCfg) Client {
	pageLimit := cfg.PageLimit
	if pageLimit <= 0 || pageLimit > MaxPageLimit {
		pageLimit = MaxPageLimit
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = 500 * time.Millisecond
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &client{
		client:        cfg.HttpClient,
		baseUrl:       cfg.BaseUrl,
		clientId:      cfg.ClientId,
		chainId:       cfg.ChainId,
		timeout:       timeout,
		pageLimit:     pageLimit,
		maxPages:      maxPages,
		retryInterval: retryInterval,
		met:           metrics.New("insight"),
	}
}

type client struct {
	client        http.Client
	baseUrl       string
	clientId      string
	chainId       domain.ChainId
	timeout       time.Duration
	pageLimit     int
	maxPages      int
	retryInterval time.Duration
	met           metrics.Service
}

func (c *client) GetEvents(ctx bCtx.Ctx, contract domain.Address, eventSignature string) ([]auction.RawEvent, error) {
	all := []auction.RawEvent{}
	for page := 0; page < c.maxPages; page++ {
		u := fmt.Sprintf("%s/v1/events/%s/%s", c.baseUrl, contract.ToLowerStr(), url.PathEscape(eventSignature))
		params := url.Values{}
		params.Set("chain_id", strconv.Itoa(int(c.chainId)))
		params.Set("limit", strconv.Itoa(c.pageLimit))
		params.Set("page", strconv.Itoa(page))

		data, err := c.get(ctx, u+"?"+params.Encode())
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"signature": eventSignature,
				"page":      page,
			}).Error("c.get failed")
			return nil, err
		}

		resp := eventsResp{}
		if err := json.Unmarshal(data, &resp); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"signature": eventSignature,
			}).Error("json.Unmarshal failed")
			return nil, err
		}

		items := resp.list()
		all = append(all, items...)

		// a short page signals end-of-data
		if len(items) < c.pageLimit {
			break
		}
	}
	return all, nil
}

func (c *client) GetCollectionNfts(ctx bCtx.Ctx, contract domain.Address, page int, limit int) (*NftsResp, error) {
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	u := fmt.Sprintf("%s/v1/nfts/%s", c.baseUrl, contract.ToLowerStr())
	params := url.Values{}
	params.Set("chain_id", strconv.Itoa(int(c.chainId)))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))
	params.Set("include_owners", "false")
	params.Set("resolve_metadata_links", "true")

	data, err := c.get(ctx, u+"?"+params.Encode())
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"page": page,
		}).Error("c.get failed")
		return nil, err
	}

	resp := &NftsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

// get issues one credentialed GET with a timeout and a single bounded retry
// for transport errors. Non-2xx responses are not retried.
func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	defer c.met.BumpTime("get.latency").End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set(clientIdHeader, c.clientId)
	req.Header.Set(requestIdHeader, uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		// transient network failure, retry once after a pause
		bo := backoff.NewExponential(c.retryInterval, c.retryInterval)
		if boErr := bo.Backoff(ctx); boErr != nil {
			return nil, err
		}
		resp, err = c.client.Do(req)
		if err != nil {
			ctx.WithFields(log.Fields{
				"url": url,
				"err": err,
			}).Error("client.Do failed")
			c.met.BumpSum("get.err", 1)
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		c.met.BumpSum("get.err", 1, "status", strconv.Itoa(resp.StatusCode))
		return nil, ErrStatusCodeNotOk
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
