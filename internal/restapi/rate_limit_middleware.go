package restapi

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"infografias.nextwaveia.mx/internal/logging"
	"infografias.nextwaveia.mx/internal/utils"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	defaultIdleTTL         = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware provides per-client rate limiting keyed by remote IP.
type RateLimitMiddleware struct {
	limiters    map[string]*clientLimiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	idleTTL     time.Duration
	exemptPaths map[string]bool
	now         func() time.Time

	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
	stopped     sync.WaitGroup
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
// ratePerSecond requests are allowed per interval per client, with the same
// number as burst. A non-positive rate disables limiting. Requests to
// exemptPaths are never limited.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, exemptPaths ...string) *RateLimitMiddleware {
	return newRateLimitMiddleware(ratePerSecond, interval, defaultCleanupInterval, exemptPaths...)
}

func newRateLimitMiddleware(ratePerSecond int, interval, cleanupInterval time.Duration, exemptPaths ...string) *RateLimitMiddleware {
	rateLimit := rate.Inf
	if ratePerSecond > 0 {
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	}

	rl := &RateLimitMiddleware{
		limiters:    make(map[string]*clientLimiter),
		rateLimit:   rateLimit,
		burstSize:   ratePerSecond,
		idleTTL:     defaultIdleTTL,
		exemptPaths: make(map[string]bool, len(exemptPaths)),
		now:         time.Now,
		cleanupTick: time.NewTicker(cleanupInterval),
		done:        make(chan struct{}),
	}
	for _, p := range exemptPaths {
		rl.exemptPaths[p] = true
	}

	rl.stopped.Add(1)
	go rl.cleanup()

	return rl
}

// getLimiter gets or creates the limiter for the given client
func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	now := rl.now()

	rl.mu.RLock()
	entry, exists := rl.limiters[client]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		entry.lastSeen = now
		rl.mu.Unlock()
		return entry.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if entry, exists := rl.limiters[client]; exists {
		entry.lastSeen = now
		return entry.limiter
	}

	entry = &clientLimiter{
		limiter:  rate.NewLimiter(rl.rateLimit, rl.burstSize),
		lastSeen: now,
	}
	rl.limiters[client] = entry

	return entry.limiter
}

// Handler is the HTTP middleware function
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.rateLimit == rate.Inf || rl.exemptPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(utils.ClientIP(r)).Allow() {
			rl.sendRateLimitExceeded(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// retryAfter is one token interval rounded up to whole seconds.
func (rl *RateLimitMiddleware) retryAfter() int {
	seconds := math.Ceil(1 / float64(rl.rateLimit))
	if seconds < 1 {
		return 1
	}
	return int(seconds)
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")

	writeJSONResponse(w, logging.FromContext(r.Context()), r.URL.Path, http.StatusTooManyRequests,
		newErrorResponse(http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."))
}

// cleanup periodically drops limiters of clients that have gone idle
func (rl *RateLimitMiddleware) cleanup() {
	defer rl.stopped.Done()
	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanupTick.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimitMiddleware) evictIdle() {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for client, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, client)
		}
	}
}

func (rl *RateLimitMiddleware) clientCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

// Stop stops the cleanup goroutine and waits for it to exit. It is safe to
// call more than once.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
	rl.stopped.Wait()
}
