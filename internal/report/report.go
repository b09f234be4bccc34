// Package report computes per-field rollups over a recorded log.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xperh004/air-quality-monitoring-prague/pkg/airquality"
)

// FieldSummary is the rollup of one sensor field across a log.
type FieldSummary struct {
	Name     string
	Unit     string
	Count    int
	Min      float64
	Mean     float64
	Max      float64
	Breaches int // samples outside the guideline
}

// Summarize folds the readings into one summary per field, in the canonical
// field order, counting guideline breaches with the same rules the live
// monitor applies.
func Summarize(readings []airquality.Measurement, limits airquality.Limits) []FieldSummary {
	defs := []struct {
		name, unit string
		value      func(airquality.Measurement) float64
		breach     func(airquality.Measurement) bool
	}{
		{"PM2.5", "µg/m³", func(m airquality.Measurement) float64 { return m.PM2_5 },
			func(m airquality.Measurement) bool { return m.PM2_5 > limits.PM25Max }},
		{"PM10", "µg/m³", func(m airquality.Measurement) float64 { return m.PM10 },
			func(m airquality.Measurement) bool { return m.PM10 > limits.PM10Max }},
		{"CO2", "ppm", func(m airquality.Measurement) float64 { return m.CO2 },
			func(m airquality.Measurement) bool { return m.CO2 > limits.CO2Max }},
		{"Temp", "°C", func(m airquality.Measurement) float64 { return m.Temp },
			func(m airquality.Measurement) bool { return m.Temp < limits.TempMin || m.Temp > limits.TempMax }},
		{"Hum", "%", func(m airquality.Measurement) float64 { return m.Hum },
			func(m airquality.Measurement) bool { return m.Hum < limits.HumMin || m.Hum > limits.HumMax }},
	}

	summaries := make([]FieldSummary, 0, len(defs))
	for _, def := range defs {
		s := FieldSummary{
			Name: def.name,
			Unit: def.unit,
			Min:  math.MaxFloat64,
			Max:  -math.MaxFloat64,
		}
		var sum float64
		for _, m := range readings {
			v := def.value(m)
			s.Count++
			sum += v
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
			if def.breach(m) {
				s.Breaches++
			}
		}
		if s.Count > 0 {
			s.Mean = sum / float64(s.Count)
		} else {
			s.Min, s.Max = 0, 0
		}
		summaries = append(summaries, s)
	}
	return summaries
}

var (
	headStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	breachStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Render prints the summaries as a fixed-width table.
func Render(out io.Writer, path string, summaries []FieldSummary) {
	fmt.Fprintln(out, headStyle.Render("Air quality log summary")+dimStyle.Render("  "+path))
	fmt.Fprintln(out, dimStyle.Render(strings.Repeat("─", 56)))
	fmt.Fprintf(out, "%-14s %8s %8s %8s %8s %9s\n", "field", "samples", "min", "mean", "max", "breaches")
	for _, s := range summaries {
		breaches := fmt.Sprintf("%d", s.Breaches)
		if s.Breaches > 0 {
			breaches = breachStyle.Render(breaches)
		}
		fmt.Fprintf(out, "%-14s %8d %8.1f %8.1f %8.1f %9s\n",
			fmt.Sprintf("%s (%s)", s.Name, s.Unit), s.Count, s.Min, s.Mean, s.Max, breaches)
	}
}
