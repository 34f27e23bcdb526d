package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auctionloft/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// Cache-Control values served to intermediary caches. Successful payloads may
// be served stale for 30s after the 60s fresh window; failures are never cached.
const (
	CacheControlSwr     = "s-maxage=60, stale-while-revalidate=30"
	CacheControlNoStore = "no-store"
)

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, domain.ErrMissingConfig) {
			status = http.StatusInternalServerError
		} else if errors.Is(err, domain.ErrBadParamInput) {
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		c.Response().Header().Set("Cache-Control", CacheControlNoStore)
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// MakeCachedJsonResp is MakeJsonResp plus the shared success cache policy.
func MakeCachedJsonResp(c echo.Context, status int, data interface{}) error {
	if _, ok := data.(error); !ok && status >= 200 && status < 300 {
		c.Response().Header().Set("Cache-Control", CacheControlSwr)
	}
	return MakeJsonResp(c, status, data)
}
