// Package logfile persists accepted readings to an append-only CSV log and
// reads them back for reporting.
package logfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xperh004/air-quality-monitoring-prague/pkg/airquality"
)

// TimeLayout is ISO-8601 with second precision, the log's timestamp format.
const TimeLayout = "2006-01-02T15:04:05"

var header = []string{"timestamp", "PM2_5", "PM10", "CO2", "TEMP_C", "HUM_%"}

// EnsureHeader makes sure the log at path starts with the expected header
// row. It is idempotent: when the file exists and its first line starts with
// "timestamp" nothing happens; otherwise (no previous log, or a foreign
// first line) the file is rewritten to contain the header alone.
func EnsureHeader(path string) error {
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No previous log; a checked condition, not an error.
	case err != nil:
		return fmt.Errorf("open log: %w", err)
	default:
		r := csv.NewReader(f)
		first, readErr := r.Read()
		f.Close()
		if readErr == nil && len(first) > 0 && strings.HasPrefix(first[0], "timestamp") {
			return nil
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log: %w", err)
	}
	w := csv.NewWriter(out)
	w.Write(header)
	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		return fmt.Errorf("write header: %w", err)
	}
	return out.Close()
}

// Append writes one reading as a CSV row and closes the file before
// returning; nothing is buffered across calls.
func Append(path string, m airquality.Measurement) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	w := csv.NewWriter(f)
	w.Write([]string{
		m.Timestamp.Format(TimeLayout),
		strconv.FormatFloat(m.PM2_5, 'f', 1, 64),
		strconv.FormatFloat(m.PM10, 'f', 1, 64),
		strconv.FormatFloat(m.CO2, 'f', 0, 64),
		strconv.FormatFloat(m.Temp, 'f', 1, 64),
		strconv.FormatFloat(m.Hum, 'f', 1, 64),
	})
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append row: %w", err)
	}
	return f.Close()
}

// ReadAll loads every reading from the log at path, skipping the header and
// any row that is short or does not parse.
func ReadAll(path string) ([]airquality.Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	var out []airquality.Measurement
	for _, row := range rows {
		if len(row) < 6 || strings.HasPrefix(row[0], "timestamp") {
			continue
		}
		ts, err := time.ParseInLocation(TimeLayout, row[0], time.Local)
		if err != nil {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		out = append(out, airquality.Measurement{
			Timestamp: ts,
			PM2_5:     vals[0],
			PM10:      vals[1],
			CO2:       vals[2],
			Temp:      vals[3],
			Hum:       vals[4],
		})
	}
	return out, nil
}
