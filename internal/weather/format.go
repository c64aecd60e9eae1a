package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoForecastMessage is spoken when a forecast was fetched but could not be used.
const NoForecastMessage = "Puxa... Não consegui adquirir a previsão do tempo atual para este lugar. " +
	"Acho que você vai precisar dar uma olhada lá fora."

const lineSeparator = "<br/>"

// Format renders one line per present field, in a fixed order. A nil or
// empty snapshot renders as "".
func Format(s *Snapshot) string {
	if s == nil {
		return ""
	}

	var lines []string

	if s.Temperature != nil {
		lines = append(lines, fmt.Sprintf("Atualmente está: <b>%s°%s</b>", formatNumber(*s.Temperature), s.Units.Temperature))
	}
	if s.Address != "" {
		lines = append(lines, fmt.Sprintf("em %s", s.Address))
	}
	if s.Summary != "" {
		lines = append(lines, fmt.Sprintf("<i>%s</i>", s.Summary))
	}
	if s.FeelsLike != nil {
		lines = append(lines, fmt.Sprintf("Sensação térmica atual de: %s°%s", formatNumber(*s.FeelsLike), s.Units.Temperature))
	}
	switch {
	case s.Wind == nil:
	case s.Wind.Direction == "":
		lines = append(lines, fmt.Sprintf("Vento atual: %s %s", formatNumber(s.Wind.Speed), s.Units.WindSpeed))
	default:
		lines = append(lines, fmt.Sprintf("Vento atual: %s %s from %s", formatNumber(s.Wind.Speed), s.Units.WindSpeed, s.Wind.Direction))
	}
	if s.Humidity != nil {
		lines = append(lines, fmt.Sprintf("Humidade: %d%%", *s.Humidity))
	}
	if s.Pressure != nil {
		lines = append(lines, fmt.Sprintf("Pressão: %s %s", formatNumber(*s.Pressure), s.Units.Pressure))
	}

	return strings.Join(lines, lineSeparator)
}

// formatNumber rounds half away from zero to 2 decimals and drops trailing zeros
func formatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // no "-0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
