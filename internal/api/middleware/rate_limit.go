package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// DefaultIdleTTL время, после которого неиспользуемая корзина IP удаляется
const DefaultIdleTTL = 10 * time.Minute

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket на каждый IP клиента
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	trusted   []*net.IPNet
	logger    Logger
	now       func() time.Time
}

// RateLimiterOptions параметры лимитера
type RateLimiterOptions struct {
	RPS   float64
	Burst int

	// IdleTTL - корзины IP, не использованные дольше этого времени, удаляются.
	// 0 - DefaultIdleTTL.
	IdleTTL time.Duration

	// TrustedProxies - IP или CIDR прокси, которым доверяем X-Forwarded-For.
	// Пусто - заголовок игнорируется, ключом служит адрес соединения.
	TrustedProxies []string
}

// NewRateLimiter создает лимитер: rps запросов в секунду, всплеск до burst
func NewRateLimiter(opts RateLimiterOptions, logger Logger) (*RateLimiter, error) {
	trusted, err := parseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	ttl := opts.IdleTTL
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(opts.RPS),
		burst:    opts.Burst,
		idleTTL:  ttl,
		trusted:  trusted,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep удаляет корзины, простаивающие дольше idleTTL. Вызывается под mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.idleTTL {
			delete(rl.visitors, ip)
		}
	}
	rl.lastSweep = now
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Middleware отвечает 429, если IP исчерпал лимит
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("Rate limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP возвращает адрес соединения. X-Forwarded-For учитывается, только если
// соединение пришло от доверенного прокси: список читается справа налево,
// первый недоверенный адрес считается клиентом.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	remote := remoteHost(r)

	fwd := r.Header.Get("X-Forwarded-For")
	if fwd == "" || !rl.isTrusted(remote) {
		return remote
	}

	hops := strings.Split(fwd, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if net.ParseIP(hop) == nil {
			return remote
		}
		if !rl.isTrusted(hop) {
			return hop
		}
	}
	return remote
}

func (rl *RateLimiter) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range rl.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func parseTrustedProxies(entries []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "/") {
			ip := net.ParseIP(e)
			if ip == nil {
				return nil, fmt.Errorf("rate limit: invalid trusted proxy %q", e)
			}
			bits := 128
			if v4 := ip.To4(); v4 != nil {
				ip, bits = v4, 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(e)
		if err != nil {
			return nil, fmt.Errorf("rate limit: invalid trusted proxy %q: %v", e, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}
