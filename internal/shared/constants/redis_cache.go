package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: festtix:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_LONG    = 24 * time.Hour   // festival days, catalog
	TTL_SEMI_STATIC    = 1 * time.Hour    // VIP zone layout
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // admin overview
	TTL_DYNAMIC_SHORT  = 2 * time.Minute  // order detail
	TTL_REALTIME_SHORT = 30 * time.Second // live VIP seat counts
)

const (
	CACHE_PREFIX = "festtix"
)

// ================== EVENT DAYS ==================

const (
	CACHE_KEY_EVENT_DAYS_ACTIVE = CACHE_PREFIX + ":days:active:all"
	CACHE_KEY_EVENT_DAY_BY_CODE = CACHE_PREFIX + ":days:detail:code:" // + day-code
)

const (
	TTL_EVENT_DAYS = TTL_STATIC_LONG
)

// ================== VIP ==================

const (
	CACHE_KEY_VIP_AVAILABILITY = CACHE_PREFIX + ":vip:availability:day:" // + day-code
)

const (
	TTL_VIP_AVAILABILITY = TTL_REALTIME_SHORT
)

// ================== ORDERS ==================

const (
	CACHE_KEY_ORDER_DETAIL = CACHE_PREFIX + ":orders:detail:uuid:" // + order-id
)

const (
	TTL_ORDER_DETAIL = TTL_DYNAMIC_SHORT
)

// ================== ANALYTICS ==================

const (
	CACHE_KEY_ANALYTICS_OVERVIEW = CACHE_PREFIX + ":analytics:overview:admin"
)

const (
	TTL_ANALYTICS_OVERVIEW = TTL_DYNAMIC_MEDIUM
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_VIP_AVAILABILITY = CACHE_PREFIX + ":vip:availability:*"
	PATTERN_INVALIDATE_ORDERS           = CACHE_PREFIX + ":orders:*"
	PATTERN_INVALIDATE_ANALYTICS        = CACHE_PREFIX + ":analytics:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildEventDayKey(dayCode string) string {
	return CACHE_KEY_EVENT_DAY_BY_CODE + dayCode
}

func BuildVIPAvailabilityKey(dayCode string) string {
	return CACHE_KEY_VIP_AVAILABILITY + dayCode
}

func BuildOrderDetailKey(orderID string) string {
	return CACHE_KEY_ORDER_DETAIL + orderID
}

// BuildRateLimitKey example: festtix:ratelimit:10.0.0.1:checkout
func BuildRateLimitKey(clientIP, limitType string) string {
	return fmt.Sprintf("%s:ratelimit:%s:%s", CACHE_PREFIX, clientIP, limitType)
}
