package client

import (
	"github.com/mujahidhofficial-oss/gamage-student-entrollment-system/config"
)

// NewFromConfig wires a controller and health prober from the client
// configuration. confirm and onHealthChange may be nil.
func NewFromConfig(cfg *config.ClientConfig, confirm ConfirmFunc, onHealthChange func(online bool)) (*Controller, *HealthProber) {
	api := NewAPI(cfg.BaseURL, nil)
	return NewController(api, confirm), NewHealthProber(api, cfg.HealthProbeInterval, onHealthChange)
}
