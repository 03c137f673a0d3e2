package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter holds one token bucket per key. It is safe for concurrent use.
//
// Memory is bounded two ways: Config.MaxKeys evicts the least recently seen key
// when a new key arrives at the cap, and Cleanup drops buckets idle for longer
// than Config.IdleTTL. Run Cleanup periodically; the HTTP middleware does this
// with RunCleanup.
type KeyedLimiter struct {
	name    string
	cfg     Config
	every   rate.Limit
	metrics Metrics
	now     func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// Option customizes a KeyedLimiter.
type Option func(*KeyedLimiter)

// WithMetrics reports decisions and key counts to m.
func WithMetrics(m Metrics) Option {
	return func(l *KeyedLimiter) { l.metrics = m }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *KeyedLimiter) { l.now = now }
}

// New builds a limiter.
//
// Parameters:
//   - name: Limiter name, used as the limiter_type metric label and in the
//     X-RateLimit-Type header (e.g. "ip", "user", "auth")
//   - cfg: Bucket configuration, validated with Config.Validate
//   - opts: WithMetrics, WithClock
//
// Returns:
//   - *KeyedLimiter: Ready to use limiter
//   - error: The validation error when cfg is invalid
//
// Example:
//
//	limiter, err := ratelimit.New("ip", ratelimit.DefaultConfig(),
//	    ratelimit.WithMetrics(ratelimit.NewPrometheusMetrics(prometheus.DefaultRegisterer)))
//	if err != nil {
//	    return err
//	}
//	if d := limiter.Allow(clientIP); !d.Allowed {
//	    // answer 429 with d.RetryAfterSeconds()
//	}
func New(name string, cfg Config, opts ...Option) (*KeyedLimiter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &KeyedLimiter{
		name:    name,
		cfg:     cfg,
		every:   rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds()),
		metrics: NoopMetrics{},
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Name returns the limiter name.
func (l *KeyedLimiter) Name() string { return l.name }

// Allow takes one token from key's bucket if one is available.
//
// A denied request does not consume a token, so a client retrying after
// RetryAfter is admitted.
//
// Parameters:
//   - key: Bucket key; a new bucket starts full
//
// Returns:
//   - Decision: The outcome plus the values for the X-RateLimit-* headers
func (l *KeyedLimiter) Allow(key string) Decision {
	now := l.now()

	l.mu.Lock()
	b := l.bucketLocked(key, now)
	r := b.lim.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
	}
	tokens := b.lim.TokensAt(now)
	keys := len(l.buckets)
	l.mu.Unlock()

	burst := l.cfg.burst()
	d := Decision{
		Key:       key,
		Allowed:   delay == 0,
		Limit:     burst,
		Remaining: max(int(tokens), 0),
		ResetAt:   now.Add(l.untilFull(tokens, burst)),
	}
	if !d.Allowed {
		d.RetryAfter = delay
		l.metrics.RecordDenied(l.name)
	} else {
		l.metrics.RecordAllowed(l.name)
	}
	l.metrics.SetActiveKeys(l.name, keys)
	return d
}

func (l *KeyedLimiter) untilFull(tokens float64, burst int) time.Duration {
	missing := float64(burst) - tokens
	if missing <= 0 {
		return 0
	}
	return time.Duration(missing / float64(l.every) * float64(time.Second))
}

func (l *KeyedLimiter) bucketLocked(key string, now time.Time) *bucket {
	if b, ok := l.buckets[key]; ok {
		b.lastSeen = now
		return b
	}
	if l.cfg.MaxKeys > 0 && len(l.buckets) >= l.cfg.MaxKeys {
		l.evictOldestLocked()
	}
	b := &bucket{lim: rate.NewLimiter(l.every, l.cfg.burst()), lastSeen: now}
	l.buckets[key] = b
	return b
}

func (l *KeyedLimiter) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, b := range l.buckets {
		if oldestKey == "" || b.lastSeen.Before(oldest) {
			oldestKey, oldest = k, b.lastSeen
		}
	}
	delete(l.buckets, oldestKey)
	l.metrics.RecordEviction(l.name)
}

// Cleanup drops buckets idle for longer than IdleTTL.
//
// Returns:
//   - int: Number of buckets removed; always 0 when IdleTTL is zero
func (l *KeyedLimiter) Cleanup() int {
	if l.cfg.IdleTTL == 0 {
		return 0
	}
	cutoff := l.now().Add(-l.cfg.IdleTTL)

	l.mu.Lock()
	removed := 0
	for k, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, k)
			removed++
		}
	}
	keys := len(l.buckets)
	l.mu.Unlock()

	l.metrics.SetActiveKeys(l.name, keys)
	return removed
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
