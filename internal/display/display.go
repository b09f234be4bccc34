// Package display renders the per-tick console block.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xperh004/air-quality-monitoring-prague/pkg/airquality"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/logfile"
)

var (
	colorDim  = lipgloss.Color("240")
	colorWarn = lipgloss.Color("220")

	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tsStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("147"))
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
)

// Renderer writes per-tick status blocks to a single output.
type Renderer struct {
	out io.Writer
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Tick prints one reading with units, followed by its warning lines.
func (r *Renderer) Tick(m airquality.Measurement, warnings []string) {
	var b strings.Builder
	b.WriteString(dimStyle.Render(strings.Repeat("─", 30)) + "\n")
	b.WriteString(tsStyle.Render(m.Timestamp.Format(logfile.TimeLayout)) + "\n")
	b.WriteString(fmt.Sprintf("%s %.1f µg/m³ | %s %.1f µg/m³\n",
		labelStyle.Render("PM2.5:"), m.PM2_5,
		labelStyle.Render("PM10:"), m.PM10))
	b.WriteString(fmt.Sprintf("%s %.0f ppm | %s %.1f °C | %s %.1f %%\n",
		labelStyle.Render("CO₂:"), m.CO2,
		labelStyle.Render("Temp:"), m.Temp,
		labelStyle.Render("Hum:"), m.Hum))
	for _, w := range warnings {
		b.WriteString(warnStyle.Render(w) + "\n")
	}
	fmt.Fprint(r.out, b.String())
}

// Farewell prints the shutdown line after a clean interrupt.
func (r *Renderer) Farewell() {
	fmt.Fprintln(r.out, dimStyle.Render("Stopped by user. Goodbye!"))
}
