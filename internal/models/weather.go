package models

// WeatherReport holds current conditions for a named place
type WeatherReport struct {
	Location    string  `json:"location"`
	TempC       float64 `json:"temp_c"`
	HumidityPct int     `json:"humidity_pct"`
	Condition   string  `json:"condition"`
	WindSpeedMS float64 `json:"wind_speed_ms"`
}
