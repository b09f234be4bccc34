package monitor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xperh004/air-quality-monitoring-prague/pkg/airquality"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/logfile"
)

// scriptedSource plays back a fixed set of lines, then cancels the run the
// way an interrupt would.
type scriptedSource struct {
	lines  []string
	cancel context.CancelFunc
	next   int
}

func (s *scriptedSource) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		s.cancel()
		return "", nil
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

func runScripted(t *testing.T, lines []string) (string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.csv")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &scriptedSource{lines: lines, cancel: cancel}
	var out bytes.Buffer
	m := New(Config{
		Source:   src,
		Limits:   airquality.DefaultLimits,
		LogPath:  path,
		Interval: time.Millisecond,
		Out:      &out,
	})
	require.NoError(t, m.Run(ctx))
	return path, &out
}

func TestRunSerialLines(t *testing.T) {
	t.Parallel()

	path, out := runScripted(t, []string{
		"PM25:10.0;PM10:20.0;CO2:500;TEMP:21.0;HUM:45.0",
		"PM25:30.0;PM10:20.0;CO2:500;TEMP:21.0;HUM:45.0",
	})

	readings, err := logfile.ReadAll(path)
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, 10.0, readings[0].PM2_5)
	assert.Equal(t, 30.0, readings[1].PM2_5)

	assert.Contains(t, out.String(), "PM2.5 exceeds guideline level")
	assert.Contains(t, out.String(), "Goodbye")
}

func TestRunDropsUnusableTicks(t *testing.T) {
	t.Parallel()

	// Empty line, line missing HUM, line with a malformed number, then one
	// complete line.
	path, out := runScripted(t, []string{
		"",
		"PM25:10;PM10:20;CO2:500;TEMP:20",
		"PM25:xx;PM10:20;CO2:500;TEMP:20;HUM:50",
		"PM25:10;PM10:20;CO2:500;TEMP:20;HUM:50",
	})

	readings, err := logfile.ReadAll(path)
	require.NoError(t, err)
	require.Len(t, readings, 1, "only the complete line may be logged")
	assert.Equal(t, 1, strings.Count(out.String(), "PM2.5:"), "dropped ticks must not be displayed")
}

func TestRunSimulationEndToEnd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	m := New(Config{
		Simulator: airquality.NewSimulatorSeeded(1),
		Limits:    airquality.DefaultLimits,
		LogPath:   path,
		Interval:  5 * time.Millisecond,
		Out:       &bytes.Buffer{},
	})
	require.NoError(t, m.Run(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "timestamp"), "header row first")

	readings, err := logfile.ReadAll(path)
	require.NoError(t, err)
	require.Equal(t, len(lines)-1, len(readings), "every data row parses back (no partial rows)")
	for i := 1; i < len(readings); i++ {
		assert.False(t, readings[i].Timestamp.Before(readings[i-1].Timestamp), "timestamps non-decreasing")
	}
}

func TestRunCancelledBeforeFirstTick(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.csv")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	m := New(Config{
		Simulator: airquality.NewSimulatorSeeded(1),
		Limits:    airquality.DefaultLimits,
		LogPath:   path,
		Out:       &out,
	})
	require.NoError(t, m.Run(ctx))

	readings, err := logfile.ReadAll(path)
	require.NoError(t, err)
	assert.Empty(t, readings)
	assert.Contains(t, out.String(), "Goodbye")
}

func TestRunPersistenceFailureIsFatal(t *testing.T) {
	t.Parallel()

	// A directory at the log path makes the sink unusable.
	m := New(Config{
		Simulator: airquality.NewSimulatorSeeded(1),
		Limits:    airquality.DefaultLimits,
		LogPath:   t.TempDir(),
		Out:       &bytes.Buffer{},
	})
	assert.Error(t, m.Run(context.Background()))
}
