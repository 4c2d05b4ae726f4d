// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client address
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter creates a limiter allowing r events per second with
// bursts of b
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (o *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	o.mu.Lock()
	defer o.mu.Unlock()
	limiter, exists := o.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(o.r, o.b)
		o.ips[ip] = limiter
	}
	return limiter
}

// LimitMiddleware rejects clients exceeding their bucket with 429
func (o *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !o.getLimiter(ip).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
