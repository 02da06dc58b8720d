package service

import (
	"context"
	"strings"
	"sync"
	"time"
)

// RateDecision es la respuesta del limiter para un pedido.
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter cuenta pedidos por ruta e IP del cliente; cada ruta tiene su propia cuota.
type RateLimiter interface {
	Allow(ctx context.Context, route, clientIP string) RateDecision
}

// rateKey arma "ruta|ip"; false si falta alguna de las dos partes.
func rateKey(route, clientIP string) (string, bool) {
	route = strings.TrimSpace(route)
	ip := strings.ToLower(strings.TrimSpace(clientIP))
	if route == "" || ip == "" {
		return "", false
	}
	return route + "|" + ip, true
}

type memoryRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	now       func() time.Time
	hits      map[string][]time.Time
	lastSweep time.Time
}

// NewMemoryRateLimiter crea un rate limiter de ventana deslizante en memoria.
// Las claves sin pedidos dentro de la ventana se descartan periódicamente.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, route, clientIP string) RateDecision {
	key, ok := rateKey(route, clientIP)
	if !ok {
		return RateDecision{Limit: l.max, RetryAfter: l.window}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	recent := since(l.hits[key], cutoff)
	if len(recent) >= l.max {
		l.hits[key] = recent
		return RateDecision{
			Limit:      l.max,
			RetryAfter: recent[0].Add(l.window).Sub(now),
		}
	}
	recent = append(recent, now)
	l.hits[key] = recent
	return RateDecision{Allowed: true, Limit: l.max, Remaining: l.max - len(recent)}
}

// sweep borra las claves cuyo último pedido ya salió de la ventana.
func (l *memoryRateLimiter) sweep(cutoff time.Time) {
	for key, stamps := range l.hits {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(l.hits, key)
		}
	}
}

// since devuelve la cola de stamps (ordenados) posterior a cutoff.
func since(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	return stamps[i:]
}
