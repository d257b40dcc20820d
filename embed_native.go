//go:build !js || !wasm

package main

import "biomemap/config"

// Reads or creates the config on disk
func loadConfig(path string) (config.UserConfig, error) {
	return config.Load(path)
}

// False for native
func IsEmbedded() bool {
	return false
}
