package eventmanager

import (
	"fmt"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager/config"
)

// Configuration keys read by OptionsFromConfig and BindingsFromConfig.
const (
	ConfigKeyPrefix   = "prefix"
	ConfigKeyMetrics  = "metrics"
	ConfigKeyTracing  = "tracing"
	ConfigKeyBindings = "bindings"
)

// OptionsFromConfig builds manager options from a config document:
//
//	prefix: on        # default method prefix
//	metrics: true     # OTel metrics via the global meter provider
//	tracing: false    # OTel spans via the global tracer provider
//
// Missing keys keep the defaults.
func OptionsFromConfig(cfg config.Config) []Option {
	var opts []Option
	if cfg.Has(ConfigKeyPrefix) {
		opts = append(opts, WithMethodPrefix(cfg.String(ConfigKeyPrefix, DefaultMethodPrefix)))
	}
	if cfg.Has(ConfigKeyMetrics) {
		opts = append(opts, WithMetrics(cfg.Bool(ConfigKeyMetrics, false)))
	}
	if cfg.Has(ConfigKeyTracing) {
		opts = append(opts, WithTracing(cfg.Bool(ConfigKeyTracing, false)))
	}
	return opts
}

// BindingsFromConfig returns the event-to-method table under "bindings",
// ready for BindAll. A missing key yields an empty table.
func BindingsFromConfig(cfg config.Config) (map[string]string, error) {
	if !cfg.Has(ConfigKeyBindings) {
		return map[string]string{}, nil
	}
	pairs := cfg.StringMap(ConfigKeyBindings, nil)
	if pairs == nil {
		return nil, fmt.Errorf("%s: expected a mapping of event names to method names", ConfigKeyBindings)
	}
	return pairs, nil
}

// LoadBindings reads a YAML or JSON file and returns its binding table.
func LoadBindings(path string) (map[string]string, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load bindings: %w", err)
	}
	return BindingsFromConfig(cfg)
}
