package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// SummaryCache keeps recently built summaries around for a short while,
// so dashboard refreshes do not recompute the whole window every time.
type SummaryCache struct {
	cache      *freecache.Cache
	ttlSeconds int
}

func NewSummaryCache(ttlSeconds int) *SummaryCache {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &SummaryCache{
		cache:      freecache.NewCache(cacheSize),
		ttlSeconds: ttlSeconds,
	}
}

func summaryCacheKey(userID int64, startDate, endDate time.Time) []byte {
	return []byte(fmt.Sprintf(
		"summary::%d::%s::%s",
		userID, startDate.Format(dateLayout), endDate.Format(dateLayout),
	))
}

func (c *SummaryCache) Get(userID int64, startDate, endDate time.Time) *Summary {
	summaryBytes, err := c.cache.Get(summaryCacheKey(userID, startDate, endDate))
	if err != nil {
		return nil
	}

	var summary Summary
	if err := json.Unmarshal(summaryBytes, &summary); err != nil {
		log.Errorf("failed to unmarshal cached summary for user %d: %s", userID, err)
		return nil
	}
	return &summary
}

func (c *SummaryCache) Set(userID int64, startDate, endDate time.Time, summary *Summary) {
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal summary for cache, user %d: %s", userID, err)
		return
	}
	if err := c.cache.Set(summaryCacheKey(userID, startDate, endDate), summaryBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to write summary cache for user %d: %s", userID, err)
	}
}
