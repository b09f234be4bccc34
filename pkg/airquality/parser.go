package airquality

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadNumber marks a line whose value text did not parse as a float.
// The whole line is rejected; callers treat it as no usable data for the tick.
var ErrBadNumber = errors.New("malformed numeric value")

// ParseLine decodes one device line of semicolon-separated KEY:VALUE pairs,
// e.g. "PM25:23.4;PM10:45.1;CO2:780;TEMP:21.9;HUM:47.3".
//
// Empty segments and segments without a colon are skipped. Keys are trimmed
// and matched case-insensitively with the aliases the firmware is known to
// emit (PM2.5, TEMPC, T, RH, ...); unknown keys are ignored. The returned
// Fields contains only the keys actually present in the line.
func ParseLine(line string) (Fields, error) {
	fields := make(Fields)
	for _, part := range strings.Split(strings.TrimSpace(line), ";") {
		if part == "" || !strings.Contains(part, ":") {
			continue
		}
		key, val, _ := strings.Cut(part, ":")
		key = strings.ToUpper(strings.TrimSpace(key))
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, strings.TrimSpace(val))
		}
		switch key {
		case "PM25", "PM2.5", "PM2_5":
			fields[FieldPM25] = v
		case "PM10":
			fields[FieldPM10] = v
		case "CO2":
			fields[FieldCO2] = v
		case "TEMP", "TEMPC", "T":
			fields[FieldTemp] = v
		case "HUM", "RH":
			fields[FieldHum] = v
		}
	}
	return fields, nil
}
