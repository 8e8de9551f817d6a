package sh

import (
	"flag"
	"os"
)

// Config selects the device the shell talks to.
type Config struct {
	// Device is the connect target: "sim" for the in-process
	// simulator, or a ws:// URL for a served device.
	Device string
}

var defaultDevice = "sim"

func init() {
	if val := os.Getenv("FINCH_DEVICE"); val != "" {
		defaultDevice = val
	}
	flag.StringVar(&defaultDevice, "device", defaultDevice,
		"Device target: sim or ws://HOST:PORT/device.")
}

// NewConfig creates Config from flags.
func NewConfig() *Config {
	return &Config{Device: defaultDevice}
}
