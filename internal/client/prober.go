package client

import (
	"context"
	"time"
)

// HealthProber pings the backend liveness endpoint on a fixed interval and
// reports online/offline transitions through a callback. It runs
// independently of record state.
type HealthProber struct {
	api      *API
	interval time.Duration
	onChange func(online bool)
}

// NewHealthProber builds a prober. A non-positive interval falls back to
// 5 seconds, the dashboard's default.
func NewHealthProber(api *API, interval time.Duration, onChange func(online bool)) *HealthProber {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if onChange == nil {
		onChange = func(bool) {}
	}
	return &HealthProber{api: api, interval: interval, onChange: onChange}
}

// Run probes immediately, then on every tick, until ctx is cancelled.
// The callback fires only when the observed state changes.
func (p *HealthProber) Run(ctx context.Context) {
	online := p.probe(ctx)
	p.onChange(online)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := p.probe(ctx)
			if now != online {
				online = now
				p.onChange(online)
			}
		}
	}
}

func (p *HealthProber) probe(ctx context.Context) bool {
	return p.api.CheckHealth(ctx) == nil
}
