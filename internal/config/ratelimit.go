package config

import (
	"strings"
	"time"
)

// RateLimitConfig drives the Redis token bucket placed in front of the public
// catalog routes.  Capacity is the bucket size; RefillTokens are added every
// RefillInterval.  Buckets idle for TTL are dropped by Redis.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string // ip, route or ip_route
	Prefix         string
	Debug          bool
}

func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    envStr("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
		Debug:          envBool("RATE_LIMIT_DEBUG", false),
	}
	return cfg.normalize()
}

// normalize clamps values so the limiter script never sees a zero interval
// or a TTL shorter than a few refills.  The limiter guards routes that run
// without a session, so per-user strategies are not accepted and fall back
// to ip_route.
func (c RateLimitConfig) normalize() RateLimitConfig {
	switch s := strings.ToLower(strings.TrimSpace(c.KeyStrategy)); s {
	case "ip", "route", "ip_route":
		c.KeyStrategy = s
	default:
		c.KeyStrategy = "ip_route"
	}
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.RefillTokens < 1 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = time.Second
	}
	if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
		c.TTL = minTTL
	}
	return c
}
