package datetime

import "testing"

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
	}{
		{"Forward one month", "2026-01", 1, "2026-02"},
		{"Forward across year boundary", "2026-11", 3, "2027-02"},
		{"Backward one month", "2026-01", -1, "2025-12"},
		{"Zero offset", "2026-06", 0, "2026-06"},
		{"Forward several years", "2026-01", 36, "2029-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if err != nil {
				t.Fatalf("OffsetDate() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("OffsetDate(%s, %d) = %s, expected %s", tt.date, tt.months, result, tt.expected)
			}
		})
	}
}

func TestOffsetDateInvalid(t *testing.T) {
	_, err := OffsetDate("not-a-date", DateTimeLayout, 1)
	if err == nil {
		t.Error("OffsetDate() with invalid date expected error, got nil")
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{"Valid date", "2026-01", true},
		{"Missing month", "2026", false},
		{"Full date layout", "2026-01-15", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDate(tt.date); got != tt.expected {
				t.Errorf("ValidDate(%q) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}
