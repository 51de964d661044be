package config

import (
	"fmt"
	"time"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the Redis counter key for a client within the window
// that contains at. Windows are aligned to multiples of window since the epoch.
func (r *CacheKeyStruct) RateLimitKey(clientIP string, window time.Duration, at time.Time) string {
	bucket := at.UnixNano() / int64(window)
	return fmt.Sprintf("ratelimit:%s:%d", clientIP, bucket)
}

var CacheKey = NewCacheKeyStruct()
