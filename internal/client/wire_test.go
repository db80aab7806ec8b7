package client

import (
	"testing"
	"time"

	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/config"
)

func TestNewFromConfig(t *testing.T) {
	cfg := &config.ClientConfig{
		BaseURL:             "http://localhost:5000/",
		HealthProbeInterval: 2 * time.Second,
	}

	ctrl, prober := NewFromConfig(cfg, nil, nil)

	if ctrl.api.baseURL != "http://localhost:5000" {
		t.Errorf("base URL should be trimmed, got %q", ctrl.api.baseURL)
	}
	if ctrl.CourseFilter() != CourseFilterAll {
		t.Errorf("controller should start with the show-all filter, got %q", ctrl.CourseFilter())
	}
	if prober.interval != 2*time.Second {
		t.Errorf("prober should take the configured interval, got %v", prober.interval)
	}
}
