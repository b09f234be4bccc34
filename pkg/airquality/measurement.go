// Package airquality holds the measurement record, the device line format
// parser, the guideline limits and the synthetic reading generator.
package airquality

import "time"

// Canonical field names, in the fixed evaluation and column order.
const (
	FieldPM25 = "PM2_5"
	FieldPM10 = "PM10"
	FieldCO2  = "CO2"
	FieldTemp = "TEMP"
	FieldHum  = "HUM"
)

// FieldOrder is the canonical ordering of the five sensor fields.
var FieldOrder = []string{FieldPM25, FieldPM10, FieldCO2, FieldTemp, FieldHum}

// Fields maps canonical field names to values. A Fields from the parser may
// be partial; only a complete one can become a Measurement.
type Fields map[string]float64

// Complete reports whether all five sensor fields are present.
func (f Fields) Complete() bool {
	for _, k := range FieldOrder {
		if _, ok := f[k]; !ok {
			return false
		}
	}
	return true
}

// Measurement is one accepted air-quality reading.
type Measurement struct {
	Timestamp time.Time
	PM2_5     float64 // µg/m³
	PM10      float64 // µg/m³
	CO2       float64 // ppm
	Temp      float64 // °C
	Hum       float64 // % relative humidity
}

// FromFields promotes a complete Fields to a Measurement stamped with ts.
// It returns false when any of the five fields is missing; the caller drops
// the tick in that case.
func FromFields(f Fields, ts time.Time) (Measurement, bool) {
	if !f.Complete() {
		return Measurement{}, false
	}
	return Measurement{
		Timestamp: ts,
		PM2_5:     f[FieldPM25],
		PM10:      f[FieldPM10],
		CO2:       f[FieldCO2],
		Temp:      f[FieldTemp],
		Hum:       f[FieldHum],
	}, true
}
