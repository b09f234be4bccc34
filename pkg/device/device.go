// Package device opens the serial channel to the measuring board and reads
// raw text lines from it. The channel is optional: when the port cannot be
// opened the caller gets an explicit ErrUnavailable and falls back to
// simulated readings for the whole run.
package device

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

// ErrUnavailable is returned by Open when the serial port cannot be opened.
var ErrUnavailable = errors.New("device unavailable")

// Config describes the serial channel.
type Config struct {
	Port        string        // e.g. "/dev/ttyUSB0" or "COM3"
	Baud        int           // e.g. 9600
	ReadTimeout time.Duration // per-read bound; defaults to one second
}

// Conn is an open serial channel yielding one text line per read.
type Conn struct {
	port serial.Port
}

// Open opens the configured serial port or reports it unavailable. It never
// returns a partially initialized connection.
func Open(cfg Config) (*Conn, error) {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = time.Second
	}
	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: cfg.Baud})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, cfg.Port, err)
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: set timeout on %s: %v", ErrUnavailable, cfg.Port, err)
	}
	return &Conn{port: port}, nil
}

// ReadLine blocks until a newline or the read timeout and returns the line
// decoded permissively: invalid bytes are replaced, surrounding whitespace
// stripped. A timeout with nothing buffered yields an empty line, not an
// error.
func (c *Conn) ReadLine() (string, error) {
	var raw []byte
	buf := make([]byte, 1)
	for {
		n, err := c.port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("read serial: %w", err)
		}
		if n == 0 {
			// Read timeout; hand back whatever arrived.
			break
		}
		if buf[0] == '\n' {
			break
		}
		raw = append(raw, buf[0])
	}
	return SanitizeLine(string(raw)), nil
}

// Close releases the serial port.
func (c *Conn) Close() error {
	return c.port.Close()
}

// SanitizeLine replaces invalid UTF-8 bytes and strips whitespace, matching
// what the board is expected to emit over a noisy line.
func SanitizeLine(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "�"))
}
