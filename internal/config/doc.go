// Package config loads the deskset configuration from
// ~/.config/deskset/config.toml. A missing file is not an error; every
// field has a usable default.
package config
