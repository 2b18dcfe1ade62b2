// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Provider fetches current conditions for a coordinate pair.
type Provider interface {
	Current(ctx context.Context, lat, lng float64) (*Report, error)
}

const currentFields = "temperature_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_direction_10m"

// openMeteoClient talks to an Open-Meteo compatible forecast endpoint.
type openMeteoClient struct {
	baseURL string
	client  *http.Client
}

// NewOpenMeteoClient creates a Provider against the given base URL.
func NewOpenMeteoClient(baseURL string) Provider {
	return &openMeteoClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// currentResponse mirrors the provider's payload shape.
type currentResponse struct {
	Current struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		ApparentTemp  float64 `json:"apparent_temperature"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection int     `json:"wind_direction_10m"`
	} `json:"current"`
}

func (c *openMeteoClient) Current(ctx context.Context, lat, lng float64) (*Report, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(lng, 'f', 4, 64))
	query.Set("current", currentFields)
	query.Set("timezone", "America/Puerto_Rico")

	endpoint := c.baseURL + "/v1/forecast?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	return &Report{
		TemperatureC:  payload.Current.Temperature,
		ApparentTempC: payload.Current.ApparentTemp,
		WindSpeedKmh:  payload.Current.WindSpeed,
		WindDirection: payload.Current.WindDirection,
		Precipitation: payload.Current.Precipitation,
		WeatherCode:   payload.Current.WeatherCode,
		FetchedAt:     time.Now().UTC(),
	}, nil
}
