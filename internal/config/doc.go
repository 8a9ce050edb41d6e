// Package config provides the configuration system for recoilless.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← RCL_TABWIDTH, RCL_LOG_FILE, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/recoilless/rcl_config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing or malformed settings file never stops the editor. Problems
// are logged and recorded, and the affected values fall back to their
// defaults:
//
//	cfg := config.New(config.WithLogger(log))
//	cfg.Load()
//	main := cfg.Main()
//	for path, err := range cfg.ConfigErrors() {
//		log.Warnf("%s: %v", path, err)
//	}
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading
//   - layer: layer management and merging
package config
