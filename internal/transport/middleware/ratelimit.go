package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting. Each Limit call
// gets its own set of buckets so routes do not share a budget.
type RateLimiter struct {
	scopes sync.Map // map[string]*sync.Map of ip -> *visitor
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

type visitor struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client IP
// under scope, with bursts up to the same amount.
func (rl *RateLimiter) Limit(scope string, maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(max(maxPerMinute, 1)))
	retryAfter := strconv.Itoa(int((time.Minute / time.Duration(max(maxPerMinute, 1))).Seconds()) + 1)

	v, _ := rl.scopes.LoadOrStore(scope, &sync.Map{})
	visitors := v.(*sync.Map)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientFromCtx(r.Context()).IP
			if ip == "" {
				ip = ClientIP(r, false)
			}

			if !rl.visitor(visitors, ip, every, maxPerMinute).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) visitor(visitors *sync.Map, ip string, every rate.Limit, burst int) *rate.Limiter {
	val, _ := visitors.LoadOrStore(ip, &visitor{limiter: rate.NewLimiter(every, max(burst, 1))})
	v := val.(*visitor)

	v.mu.Lock()
	v.lastSeen = rl.now()
	v.mu.Unlock()

	return v.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.scopes.Range(func(_, scope any) bool {
		visitors := scope.(*sync.Map)
		visitors.Range(func(key, value any) bool {
			v := value.(*visitor)
			v.mu.Lock()
			idle := now.Sub(v.lastSeen)
			v.mu.Unlock()
			if idle > idleLimiterTTL {
				visitors.Delete(key)
			}
			return true
		})
		return true
	})
}
