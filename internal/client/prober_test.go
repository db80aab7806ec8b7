package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestHealthProber_ReportsTransitions(t *testing.T) {
	var mu sync.Mutex
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if healthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	states := make(chan bool, 16)
	prober := NewHealthProber(NewAPI(srv.URL, srv.Client()), 10*time.Millisecond, func(online bool) {
		states <- online
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go prober.Run(ctx)

	waitState := func(want bool) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case got := <-states:
				if got == want {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for online=%v", want)
			}
		}
	}

	// immediate first probe reports online
	waitState(true)

	mu.Lock()
	healthy = false
	mu.Unlock()
	waitState(false)

	mu.Lock()
	healthy = true
	mu.Unlock()
	waitState(true)
}

func TestHealthProber_DefaultInterval(t *testing.T) {
	p := NewHealthProber(NewAPI("http://localhost:0", nil), 0, nil)
	if p.interval != 5*time.Second {
		t.Errorf("expected the 5s default, got %v", p.interval)
	}
}
