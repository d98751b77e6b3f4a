package common

import (
	"fmt"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner with the settings a run depends on
func PrintBanner(version string, config *Config) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorCyan).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(64)

	b.PrintTopLine()
	b.PrintCenteredText("Smart Travellers")
	b.PrintCenteredText(fmt.Sprintf("version %s", version))
	if config != nil {
		b.PrintSeparatorLine()
		b.PrintKeyValue("Page cap", fmt.Sprintf("%d per type", config.Maps.MaxPages), 12)
		b.PrintKeyValue("Enrichment", enabledText(config.Enrichment.Enabled), 12)
		b.PrintKeyValue("Log level", config.Logging.Level, 12)
	}
	b.PrintBottomLine()
	fmt.Println()
}

func enabledText(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
