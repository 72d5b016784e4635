// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/jgviray/networth-forecast/internal/forecast"
)

// FindForecast finds a forecast by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindForecast(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
