package usecase

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/auctionloft/goapi/domain"
	"github.com/auctionloft/goapi/domain/auction"
)

// Indexer payloads drift across versions and chains: the same logical field
// may live under a named key, a differently-cased key, or a positional index
// when the decoder returns tuple args as an array. Each field below is read
// through an ordered probe list, first match wins.
//
// Probe orders per logical field:
//
//	created.auctionId:    args.auctionId, args[1]
//	created.auction:      args.auction, args.Auction, args[3]
//	created.tokenId:      auction.tokenId, args.tokenId, auction[4]
//	created.endTimestamp: auction.endTimestamp, args.endTimestamp, auction[6]
//	created.seller:       args.auctionCreator, auction.auctionCreator, args[0]
//	created.minimumBid:   auction.minimumBidAmount, args.minimumBidAmount
//	created.buyout:       auction.buyoutBidAmount, args.buyoutBidAmount
//	bid.auctionId:        args.auctionId, args[0]
//	closed.auctionId:     args.auctionId, args[0]

// argsOf locates the decoded argument container of an event, probing
// args, data.args, decoded_parameters and parameters in that order.
func argsOf(ev auction.RawEvent) interface{} {
	if ev == nil {
		return nil
	}
	if v, ok := ev["args"]; ok && v != nil {
		return v
	}
	if data, ok := ev["data"].(map[string]interface{}); ok {
		if v, ok := data["args"]; ok && v != nil {
			return v
		}
	}
	if v, ok := ev["decoded_parameters"]; ok && v != nil {
		return v
	}
	if v, ok := ev["parameters"]; ok && v != nil {
		return v
	}
	return nil
}

// pick reads one member out of a container that may be either an object or a
// positionally-indexed array. Integer probes also match objects whose keys
// are stringified indices.
func pick(container interface{}, keyOrIndex interface{}) interface{} {
	if container == nil {
		return nil
	}
	switch k := keyOrIndex.(type) {
	case int:
		if arr, ok := container.([]interface{}); ok {
			if k >= 0 && k < len(arr) {
				return arr[k]
			}
			return nil
		}
		if obj, ok := container.(map[string]interface{}); ok {
			return obj[strconv.Itoa(k)]
		}
		return nil
	case string:
		if obj, ok := container.(map[string]interface{}); ok {
			return obj[k]
		}
		return nil
	default:
		return nil
	}
}

// first returns the first probe that yields a non-nil member.
func first(container interface{}, probes ...interface{}) interface{} {
	for _, p := range probes {
		if v := pick(container, p); v != nil {
			return v
		}
	}
	return nil
}

// coerceBigish normalizes the many ways the indexer encodes big integers
// (string, number, {"hex": "0x.."}) into a decimal string.
func coerceBigish(v interface{}) (string, bool) {
	switch n := v.(type) {
	case nil:
		return "", false
	case string:
		if n == "" {
			return "", false
		}
		if strings.HasPrefix(n, "0x") || strings.HasPrefix(n, "0X") {
			return hexToDecimal(n)
		}
		return n, true
	case float64:
		return strconv.FormatInt(int64(n), 10), true
	case json.Number:
		return n.String(), true
	case map[string]interface{}:
		if hex, ok := n["hex"].(string); ok {
			return hexToDecimal(hex)
		}
		return "", false
	default:
		return "", false
	}
}

func hexToDecimal(hex string) (string, bool) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if trimmed == "" {
		return "", false
	}
	i, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return "", false
	}
	return i.String(), true
}

func coerceInt64(v interface{}) (int64, bool) {
	s, ok := coerceBigish(v)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func coerceAddress(v interface{}) (domain.Address, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return domain.Address(s).ToLower(), true
}

// createdAuction is the creation event boiled down to projection inputs.
type createdAuction struct {
	auctionId     auction.AuctionId
	tokenId       domain.TokenId
	endSec        int64
	seller        domain.Address
	minimumBidWei string
	buyoutWei     string
}

// extractCreated rejects the event when auctionId, tokenId or end timestamp
// cannot be recovered; seller and prices are optional.
func extractCreated(ev auction.RawEvent) (*createdAuction, bool) {
	args := argsOf(ev)
	if args == nil {
		return nil, false
	}

	auctionId, ok := coerceBigish(first(args, "auctionId", 1))
	if !ok {
		return nil, false
	}

	auctionStruct := first(args, "auction", "Auction", 3)

	tokenId, ok := coerceBigish(firstOf(
		pick(auctionStruct, "tokenId"),
		pick(args, "tokenId"),
		pick(auctionStruct, 4),
	))
	if !ok {
		return nil, false
	}

	endSec, ok := coerceInt64(firstOf(
		pick(auctionStruct, "endTimestamp"),
		pick(args, "endTimestamp"),
		pick(auctionStruct, 6),
	))
	if !ok {
		return nil, false
	}

	out := &createdAuction{
		auctionId: auction.AuctionId(auctionId),
		tokenId:   domain.TokenId(tokenId),
		endSec:    endSec,
	}

	if seller, ok := coerceAddress(firstOf(
		pick(args, "auctionCreator"),
		pick(auctionStruct, "auctionCreator"),
		pick(args, 0),
	)); ok {
		out.seller = seller
	}
	if minBid, ok := coerceBigish(firstOf(
		pick(auctionStruct, "minimumBidAmount"),
		pick(args, "minimumBidAmount"),
	)); ok {
		out.minimumBidWei = minBid
	}
	if buyout, ok := coerceBigish(firstOf(
		pick(auctionStruct, "buyoutBidAmount"),
		pick(args, "buyoutBidAmount"),
	)); ok {
		out.buyoutWei = buyout
	}

	return out, true
}

// extractBidAuctionId recovers which auction a bid belongs to.
func extractBidAuctionId(ev auction.RawEvent) (auction.AuctionId, bool) {
	args := argsOf(ev)
	if args == nil {
		return "", false
	}
	id, ok := coerceBigish(first(args, "auctionId", 0))
	if !ok {
		return "", false
	}
	return auction.AuctionId(id), true
}

// extractClosedAuctionId recovers the id of a settled auction.
func extractClosedAuctionId(ev auction.RawEvent) (auction.AuctionId, bool) {
	args := argsOf(ev)
	if args == nil {
		return "", false
	}
	id, ok := coerceBigish(first(args, "auctionId", 0))
	if !ok {
		return "", false
	}
	return auction.AuctionId(id), true
}

// firstOf returns the first non-nil of already-picked values, for probe
// lists that span both the args object and the nested auction struct.
func firstOf(vals ...interface{}) interface{} {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
