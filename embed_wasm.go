//go:build js && wasm

package main

import (
	"embed"
	"path"

	"biomemap/config"
)

// Embed config
//
//go:embed biomemap.toml
var embeddedConfig embed.FS

// Reads the embedded config
// WASM only
func loadConfig(name string) (config.UserConfig, error) {
	return config.Read(embeddedConfig, path.Base(name))
}

// True for WASM
func IsEmbedded() bool {
	return true
}
