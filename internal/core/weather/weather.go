// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

/*
Package weather serves current shoreline weather for beach listings.

Readings come from an Open-Meteo compatible provider keyed by the listing's
coordinates and are cached in Redis, so a popular beach costs one upstream
call per cache window regardless of traffic.

Core Responsibility:

  - Provider: Thin HTTP client for the forecast endpoint.
  - Caching: Cache-aside with a per-beach key and a fixed TTL.
*/
package weather

import "time"

// Report is the current-conditions snapshot for one beach.
type Report struct {
	BeachID string `json:"beach_id"`

	TemperatureC  float64 `json:"temperature_c"`
	ApparentTempC float64 `json:"apparent_temp_c"`
	WindSpeedKmh  float64 `json:"wind_speed_kmh"`
	WindDirection int     `json:"wind_direction_deg"`
	Precipitation float64 `json:"precipitation_mm"`

	// WeatherCode is the WMO interpretation code reported by the provider.
	WeatherCode int `json:"weather_code"`

	FetchedAt time.Time `json:"fetched_at"`

	// Cached reports whether this snapshot was served from Redis.
	Cached bool `json:"cached"`
}
