package batch

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/resumer"
	"golang.org/x/time/rate"
)

// DefaultHostInterval is the minimum spacing between two requests Runner
// sends to one host.
const DefaultHostInterval = time.Second

var _ resumer.DomainLimiter = (*HostLimiter)(nil)

// HostLimiter spaces requests to the same host at least interval apart.
// Hosts are compared case-insensitively, without port or a leading "www.",
// so example.com and WWW.example.com:443 share one budget. A zero interval
// disables limiting.
type HostLimiter struct {
	interval time.Duration
	hosts    sync.Map // host key -> *rate.Limiter
}

// NewHostLimiter returns a HostLimiter with the given spacing.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	return &HostLimiter{interval: interval}
}

// Wait blocks until a request to host may start or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.interval <= 0 {
		return ctx.Err()
	}

	key := hostKey(host)
	v, ok := l.hosts.Load(key)
	if !ok {
		v, _ = l.hosts.LoadOrStore(key, rate.NewLimiter(rate.Every(l.interval), 1))
	}
	return v.(*rate.Limiter).Wait(ctx)
}

func hostKey(host string) string {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}
