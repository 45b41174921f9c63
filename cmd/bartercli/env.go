package main

import (
	"os"
	"path/filepath"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func defaultKeyPath() string {
	return env("BARTERCLI_PRIV_KEY", filepath.Join(os.Getenv("HOME"), ".barter.key"))
}

func defaultNodeAddr() string {
	return env("BARTERCLI_TM_ADDR", "http://localhost:26657")
}
