// Package serial abstracts the byte stream between the host tools and a
// target board. The one real implementation sits on tarm/serial; tests
// substitute in-memory streams.
package serial

import (
	"io"
)

// Port is an open connection to a target.
type Port interface {
	io.ReadWriteCloser
}

// Config holds the connection parameters for a serial port.
type Config struct {
	// Device is the port path, "/dev/ttyACM0" or "COM3".
	Device string

	// Baud is the line rate. USB CDC targets ignore it.
	Baud int

	// ReadTimeout bounds a single Read, in milliseconds. Zero blocks.
	ReadTimeout int
}

// DefaultConfig returns the parameters the probe firmware runs at.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
