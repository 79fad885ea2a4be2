package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the lotus server the client talks to.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientTimer holds the focus-timer parameters of the terminal client.
type ClientTimer struct {
	// FocusDuration is the length of a single focus cycle.
	FocusDuration time.Duration
	// SessionLogPath is the SQLite file the client records completed cycles in.
	SessionLogPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the points balance is re-fetched.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Timer contains focus-timer settings.
	Timer ClientTimer
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It merges the same sources as [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// Server-only settings (database DSN, token sign key) are not required here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := buildMergedConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Timer: ClientTimer{
			FocusDuration:  cfg.Timer.FocusDuration,
			SessionLogPath: cfg.Timer.SessionLogPath,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
