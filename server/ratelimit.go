package server

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const sweepInterval = time.Minute

type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

// rateLimiter gives every client address a token bucket holding max tokens
// that refills completely over window.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	window   time.Duration
	now      func() time.Time
	swept    time.Time
}

func newRateLimiter(maxRequests int, window time.Duration) *rateLimiter {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:    maxRequests,
		window:   window,
		now:      time.Now,
	}
}

// allow reports whether key may make a request now, and if not how long it
// should wait.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.seen = now

	res := v.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, rl.window
	}
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return false, d
	}
	return true, 0
}

// sweep drops visitors idle for longer than a full window. Their bucket
// would be full again, so forgetting them changes nothing.
func (rl *rateLimiter) sweep(now time.Time) {
	if now.Sub(rl.swept) < sweepInterval {
		return
	}
	rl.swept = now
	for k, v := range rl.visitors {
		if now.Sub(v.seen) > rl.window {
			delete(rl.visitors, k)
		}
	}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.allow(clientKey(r))
		if !ok {
			secs := int(math.Ceil(wait.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests from this IP, please try again later."}` + "\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey is the remote host. RealIP has already applied forwarding
// headers by the time this runs.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
