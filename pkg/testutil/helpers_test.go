package testutil

import (
	"testing"

	"github.com/jgviray/networth-forecast/internal/forecast"
	"github.com/jgviray/networth-forecast/internal/projection"
)

func TestFindForecast(t *testing.T) {
	results := []forecast.Forecast{
		{
			Name:    "Scenario A",
			Summary: projection.Summary{FinalNetWorth: 1000.00},
		},
		{
			Name:    "Scenario B",
			Summary: projection.Summary{FinalNetWorth: 2000.00},
		},
		{
			Name:    "Another Scenario",
			Summary: projection.Summary{FinalNetWorth: 3000.00},
		},
	}

	tests := []struct {
		name             string
		searchName       string
		expectFound      bool
		expectedNetWorth float64
	}{
		{
			name:             "find existing scenario A",
			searchName:       "Scenario A",
			expectFound:      true,
			expectedNetWorth: 1000.00,
		},
		{
			name:             "find existing scenario B",
			searchName:       "Scenario B",
			expectFound:      true,
			expectedNetWorth: 2000.00,
		},
		{
			name:        "search for non-existent scenario",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "case sensitive search",
			searchName:  "scenario a",
			expectFound: false,
		},
		{
			name:        "partial name match",
			searchName:  "Scenario",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindForecast(results, tt.searchName)

			if tt.expectFound {
				if result == nil {
					t.Errorf("FindForecast() expected to find scenario '%s' but got nil", tt.searchName)
					return
				}
				if result.Name != tt.searchName {
					t.Errorf("FindForecast() returned scenario with name '%s', expected '%s'",
						result.Name, tt.searchName)
				}
				if result.Summary.FinalNetWorth != tt.expectedNetWorth {
					t.Errorf("FindForecast() returned scenario with final net worth %v, expected %v",
						result.Summary.FinalNetWorth, tt.expectedNetWorth)
				}
			} else {
				if result != nil {
					t.Errorf("FindForecast() expected nil for scenario '%s' but got result with name '%s'",
						tt.searchName, result.Name)
				}
			}
		})
	}
}

func TestFindForecastEmptyResults(t *testing.T) {
	result := FindForecast(nil, "Any Scenario")
	if result != nil {
		t.Errorf("FindForecast() with nil results should return nil, got %v", result)
	}
}

func TestFindForecastReturnsPointer(t *testing.T) {
	results := []forecast.Forecast{
		{
			Name: "Test Scenario",
		},
	}

	found := FindForecast(results, "Test Scenario")
	if found == nil {
		t.Fatalf("FindForecast() returned nil")
	}

	if &results[0] != found {
		t.Errorf("FindForecast() should return pointer to original element")
	}
}

func TestFindForecastWithDuplicateNames(t *testing.T) {
	results := []forecast.Forecast{
		{
			Name:    "Duplicate",
			Summary: projection.Summary{FinalNetWorth: 1000.00},
		},
		{
			Name:    "Duplicate",
			Summary: projection.Summary{FinalNetWorth: 2000.00},
		},
	}

	found := FindForecast(results, "Duplicate")
	if found == nil {
		t.Fatalf("FindForecast() returned nil")
	}

	if &results[0] != found {
		t.Errorf("FindForecast() should return pointer to first matching element")
	}
}
