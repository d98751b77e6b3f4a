package weather

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// FormatReport renders a report as the multi-line block shown to travellers
func FormatReport(r *models.WeatherReport) string {
	lines := []string{
		fmt.Sprintf("📍 Location: %s", r.Location),
		fmt.Sprintf("🌡️ Temperature: %s°C", formatNumber(r.TempC)),
		fmt.Sprintf("💧 Humidity: %d%%", r.HumidityPct),
		fmt.Sprintf("☁️ Condition: %s", capitalize(r.Condition)),
		fmt.Sprintf("🌬️ Wind Speed: %s m/s", formatNumber(r.WindSpeedMS)),
	}
	return strings.Join(lines, "\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
