package metrics

import (
	"github.com/auctionloft/goapi/base/log"
)

// LogClient is the statsd fallback used when no agent is configured.
type LogClient struct{}

// Count tracks how many times something happened
func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric count")
	return nil
}

// TimeInMilliseconds tracks a duration in milliseconds
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric time")
	return nil
}
