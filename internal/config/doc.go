// Package config holds toolbelt's settings: defaults, the optional YAML
// file, validation and the XDG locations everything is stored under.
//
// Settings are layered. NewConfig supplies the defaults, LoadFile overlays
// whatever keys a YAML file sets, and command-line flags are applied last by
// the cmd package. Validate runs once after all layers are applied.
package config
