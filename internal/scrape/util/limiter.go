package util

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter rate-limits per hostname (apis.indeed.com, api.lever.co, etc).
// Hosts without an override share the default rate, each with its own bucket.
type HostLimiter struct {
	mu        sync.Mutex
	m         map[string]*rate.Limiter
	r         rate.Limit
	b         int
	overrides map[string]rate.Limit
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		m:         make(map[string]*rate.Limiter),
		r:         limitOf(reqPerSec),
		b:         burst,
		overrides: make(map[string]rate.Limit),
	}
}

// SetHostRate overrides the rate for one host. It only affects limiters
// created after the call.
func (hl *HostLimiter) SetHostRate(host string, reqPerSec float64) {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	hl.overrides[host] = limitOf(reqPerSec)
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	r := hl.r
	if o, ok := hl.overrides[host]; ok {
		r = o
	}
	lim := rate.NewLimiter(r, hl.b)
	hl.m[host] = lim
	return lim
}

func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(u.Host).Wait(ctx)
}

// limitOf treats a non-positive rate as unlimited.
func limitOf(reqPerSec float64) rate.Limit {
	if reqPerSec <= 0 {
		return rate.Inf
	}
	return rate.Limit(reqPerSec)
}
