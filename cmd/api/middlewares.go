package main

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const corsAllowedMethods = "GET, POST, PUT, PATCH, DELETE"

func (app *Application) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				w.Header().Set("Connection", "close")
				app.Http.ServerError(w, r, err, "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// CORS echoes allow-listed origins back. Other origins get no CORS headers
// and the browser blocks the response.
func (app *Application) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		origin := r.Header.Get("Origin")
		if origin != "" && app.cors.Allows(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		next.ServeHTTP(w, r)
	})
}

const (
	limiterSweepInterval = time.Minute
	limiterClientTTL     = 3 * time.Minute
)

type limitedClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps a token bucket per client IP. Idle clients are swept while
// handling requests, at most once per limiterSweepInterval.
type ipLimiter struct {
	mu        sync.Mutex
	clients   map[string]*limitedClient
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	return &ipLimiter{
		clients:   make(map[string]*limitedClient),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		for addr, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterClientTTL {
				delete(l.clients, addr)
			}
		}
		l.lastSweep = now
	}
	c, ok := l.clients[ip]
	if !ok {
		c = &limitedClient{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (app *Application) RateLimiter(next http.Handler) http.Handler {
	if !app.cfg.Limiter.Enabled {
		return next
	}
	const op = "middlewares.RateLimiter"
	log := app.log.With("op", op)
	limiter := newIPLimiter(app.cfg.Limiter.Rps, app.cfg.Limiter.Burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			app.Http.ServerError(w, r, err, "")
			return
		}
		if !limiter.allow(ip) {
			log.Warn("rate limit exceeded", "ip", ip)
			app.Http.Message(w, r, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
