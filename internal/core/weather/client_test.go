// Copyright (c) 2026 Litoral. All rights reserved.
// Author: mar.vega.pr@gmail.com

package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvega/litoral/internal/core/weather"
)

func TestOpenMeteoClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/forecast", request.URL.Path)

		query := request.URL.Query()
		assert.Equal(t, "18.3285", query.Get("latitude"))
		assert.Equal(t, "-65.3172", query.Get("longitude"))
		assert.Equal(t, "America/Puerto_Rico", query.Get("timezone"))
		assert.Contains(t, query.Get("current"), "temperature_2m")

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"current": {
				"time": "2026-08-31T10:00",
				"temperature_2m": 29.4,
				"apparent_temperature": 33.1,
				"precipitation": 0.2,
				"weather_code": 3,
				"wind_speed_10m": 14.8,
				"wind_direction_10m": 95
			}
		}`))
	}))
	defer server.Close()

	client := weather.NewOpenMeteoClient(server.URL)

	report, err := client.Current(context.Background(), 18.3285, -65.3172)
	require.NoError(t, err)

	assert.Equal(t, 29.4, report.TemperatureC)
	assert.Equal(t, 33.1, report.ApparentTempC)
	assert.Equal(t, 14.8, report.WindSpeedKmh)
	assert.Equal(t, 95, report.WindDirection)
	assert.Equal(t, 0.2, report.Precipitation)
	assert.Equal(t, 3, report.WeatherCode)
	assert.False(t, report.FetchedAt.IsZero())
	assert.False(t, report.Cached)
}

func TestOpenMeteoClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := weather.NewOpenMeteoClient(server.URL)

	_, err := client.Current(context.Background(), 18.0, -66.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
