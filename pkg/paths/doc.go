// Package paths provides centralized path handling for inputbox.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for the locations inputbox reads and writes:
//
//   - Config: $XDG_CONFIG_HOME/inputbox (config.toml)
//   - State: $XDG_STATE_HOME/inputbox (links.toml registry, inputbox.log)
//
// # Environment Variables
//
//   - INPUTBOX_CONFIG_DIR: Override the config directory
//   - INPUTBOX_STATE_DIR: Override the state directory
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry := p.RegistryPath() // ~/.local/state/inputbox/links.toml
//	target := paths.ExpandHome("~/Sandbox") // /home/user/Sandbox
package paths
