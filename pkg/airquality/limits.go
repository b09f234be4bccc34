package airquality

// Limits carries the guideline thresholds a measurement is checked against.
// It is an explicit value passed into the monitor at construction so multiple
// configurations can be tested in isolation.
type Limits struct {
	PM25Max float64
	PM10Max float64
	CO2Max  float64
	TempMin float64
	TempMax float64
	HumMin  float64
	HumMax  float64
}

// DefaultLimits are simplified WHO/EU style guideline levels.
var DefaultLimits = Limits{
	PM25Max: 25.0, // µg/m³ daily guideline
	PM10Max: 50.0, // µg/m³ daily guideline
	CO2Max:  1000, // ppm ventilation comfort level
	TempMin: -10.0,
	TempMax: 45.0,
	HumMin:  20.0,
	HumMax:  70.0,
}

// Evaluate checks m against the limits and returns one warning per violated
// rule. Checks are independent and the order is fixed: PM2.5, PM10, CO2,
// temperature, humidity.
func (l Limits) Evaluate(m Measurement) []string {
	var warnings []string
	if m.PM2_5 > l.PM25Max {
		warnings = append(warnings, "Warning: PM2.5 exceeds guideline level.")
	}
	if m.PM10 > l.PM10Max {
		warnings = append(warnings, "Warning: PM10 exceeds guideline level.")
	}
	if m.CO2 > l.CO2Max {
		warnings = append(warnings, "Warning: CO₂ is high (ventilation recommended).")
	}
	if m.Temp < l.TempMin || m.Temp > l.TempMax {
		warnings = append(warnings, "Warning: Temperature outside plausible range.")
	}
	if m.Hum < l.HumMin || m.Hum > l.HumMax {
		warnings = append(warnings, "Warning: Humidity outside comfort range.")
	}
	return warnings
}
