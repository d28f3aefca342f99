// Package config provides user configuration management for cdterm.
//
// This package manages a YAML-based configuration file holding terminal
// widget timings, the introduction log and the web server settings. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/cdterm/config.yaml or $HOME/.config/cdterm/config.yaml
//   - macOS: $HOME/.config/cdterm/config.yaml
//   - Windows: %LOCALAPPDATA%\cdterm\config.yaml
//
// Every command also accepts --config to point at another file.
//
// # Example
//
//	version: 1
//	log_level: info
//	terminal:
//	  intro: true
//	  intro_delay_ms: 800
//	  fade_delay_ms: 400
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	  site_dir: ./site
//	  advertise: true
//	  instance: cdterm
//
// The destination table is compiled in and is not read from the file.
//
// # File Format Version
//
// Only version 1 is understood. Loading any other version fails with
// ErrUnsupportedVersion.
package config
