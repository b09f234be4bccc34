// Package monitor implements the capture loop: read or synthesize one
// reading per tick, evaluate it against the guideline limits, print it and
// append it to the log.
package monitor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xperh004/air-quality-monitoring-prague/internal/display"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/airquality"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/logfile"
)

// LineSource yields one raw text line from the device per call.
type LineSource interface {
	ReadLine() (string, error)
}

// Config assembles a Monitor. The mode is fixed for the whole run: with a
// Source the monitor reads the device, without one it generates synthetic
// readings.
type Config struct {
	Source    LineSource
	Simulator *airquality.Simulator
	Limits    airquality.Limits
	LogPath   string
	Interval  time.Duration
	Out       io.Writer
	Logger    *slog.Logger
}

// Monitor runs the single-threaded capture loop.
type Monitor struct {
	source   LineSource
	sim      *airquality.Simulator
	limits   airquality.Limits
	logPath  string
	interval time.Duration
	renderer *display.Renderer
	logger   *slog.Logger
}

// New creates a monitor from cfg, filling in defaults for unset fields.
func New(cfg Config) *Monitor {
	if cfg.Simulator == nil {
		cfg.Simulator = airquality.NewSimulator()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Monitor{
		source:   cfg.Source,
		sim:      cfg.Simulator,
		limits:   cfg.Limits,
		logPath:  cfg.LogPath,
		interval: cfg.Interval,
		renderer: display.New(cfg.Out),
		logger:   cfg.Logger,
	}
}

// Run executes ticks until ctx is cancelled. Cancellation is a clean exit:
// the farewell line is printed and nil returned. A persistence failure is
// the one fatal path and aborts the run with the error.
func (m *Monitor) Run(ctx context.Context) error {
	if err := logfile.EnsureHeader(m.logPath); err != nil {
		return err
	}
	mode := "SIMULATION"
	if m.source != nil {
		mode = "SERIAL"
	}
	m.logger.LogAttrs(ctx, slog.LevelInfo, "Starting monitor",
		slog.String("mode", mode),
		slog.String("log", m.logPath),
		slog.Duration("interval", m.interval))

	for {
		select {
		case <-ctx.Done():
			m.renderer.Farewell()
			return nil
		default:
		}
		if err := m.tick(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			m.renderer.Farewell()
			return nil
		case <-time.After(m.interval):
		}
	}
}

// tick captures at most one reading. Empty, malformed or incomplete input
// drops the tick silently; only a persistence failure is returned.
func (m *Monitor) tick(ctx context.Context) error {
	var fields airquality.Fields
	if m.source != nil {
		line, err := m.source.ReadLine()
		if err != nil {
			m.logger.LogAttrs(ctx, slog.LevelWarn, "Unreadable line", slog.Any("error", err))
			return nil
		}
		if line == "" {
			return nil
		}
		fields, err = airquality.ParseLine(line)
		if err != nil {
			m.logger.LogAttrs(ctx, slog.LevelDebug, "Dropping line", slog.Any("error", err))
			return nil
		}
	} else {
		fields = m.sim.Next()
	}

	meas, ok := airquality.FromFields(fields, time.Now())
	if !ok {
		return nil
	}
	m.renderer.Tick(meas, m.limits.Evaluate(meas))
	if err := logfile.Append(m.logPath, meas); err != nil {
		return fmt.Errorf("persist reading: %w", err)
	}
	return nil
}
