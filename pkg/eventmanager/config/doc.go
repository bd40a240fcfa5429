/*
Package config provides typed access to map[string]any configuration and
YAML/JSON loading.

# Overview

Config wraps a decoded document and returns defaults for missing keys or
mismatched types, so callers never type-assert by hand:

	cfg := config.New(map[string]any{
	    "prefix":  "handle",
	    "metrics": true,
	    "bindings": map[string]any{
	        "login":  "onLogin",
	        "logout": "onLogout",
	    },
	})

	prefix := cfg.String("prefix", "on")       // "handle"
	metrics := cfg.Bool("metrics", false)      // true
	table := cfg.StringMap("bindings", nil)    // map[login:onLogin logout:onLogout]

# File Loading

	cfg, err := config.FromFile("bindings.yaml")

The format is chosen by extension: .yaml, .yml or .json.

# Thread Safety

Config is safe for concurrent reads. The wrapped map is never modified.
*/
package config
