package server

import (
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// staleAfter is how long an idle client entry survives before cleanup.
const staleAfter = 2 * time.Hour

// ipRateLimiter enforces two token buckets per client IP: a short
// minute window for burst control and a long hour window for sustained
// abuse. A zero limit disables that window.
type ipRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	perMinute int
	perHour   int
	lastSweep time.Time
}

type clientLimiter struct {
	minute   *rate.Limiter
	hour     *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(perMinute, perHour int) *ipRateLimiter {
	return &ipRateLimiter{
		clients:   make(map[string]*clientLimiter),
		perMinute: perMinute,
		perHour:   perHour,
		lastSweep: time.Now(),
	}
}

// Allow reports whether the client may proceed. On rejection it also
// returns a Retry-After value in seconds.
func (l *ipRateLimiter) Allow(ip string) (bool, string) {
	if l.perMinute <= 0 && l.perHour <= 0 {
		return true, ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > staleAfter {
		l.sweep(now)
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{}
		if l.perMinute > 0 {
			cl.minute = rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute)
		}
		if l.perHour > 0 {
			cl.hour = rate.NewLimiter(rate.Limit(float64(l.perHour)/3600.0), l.perHour)
		}
		l.clients[ip] = cl
	}
	cl.lastSeen = now

	// Check both windows before consuming so a minute-window rejection
	// doesn't burn an hour-window token.
	minuteOK := cl.minute == nil || cl.minute.Tokens() >= 1
	hourOK := cl.hour == nil || cl.hour.Tokens() >= 1
	if !minuteOK || !hourOK {
		retry := 60
		if minuteOK && !hourOK {
			retry = 3600
		}
		return false, strconv.Itoa(retry)
	}

	if cl.minute != nil {
		cl.minute.Allow()
	}
	if cl.hour != nil {
		cl.hour.Allow()
	}
	return true, ""
}

// sweep drops entries idle past staleAfter. Caller holds the lock.
func (l *ipRateLimiter) sweep(now time.Time) {
	for ip, cl := range l.clients {
		if now.Sub(cl.lastSeen) > staleAfter {
			delete(l.clients, ip)
		}
	}
	l.lastSweep = now
}
