package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		expectError bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
		{"Case sensitive", "Pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectError %v", tt.format, err, tt.expectError)
			}
		})
	}
}

func TestValidateLoanHorizon(t *testing.T) {
	tests := []struct {
		name             string
		originationMonth int
		termMonths       int
		projectionMonths int
		expectWarning    bool
	}{
		{"Loan fits in horizon", 0, 240, 360, false},
		{"Loan matures at horizon", 0, 240, 240, false},
		{"Loan outlives horizon", 0, 240, 120, true},
		{"Preselling loan outlives horizon", 61, 240, 240, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateLoanHorizon("test", tt.originationMonth, tt.termMonths, tt.projectionMonths)
			if (warning != "") != tt.expectWarning {
				t.Errorf("ValidateLoanHorizon() = %q, expectWarning %v", warning, tt.expectWarning)
			}
			if warning != "" && !strings.Contains(warning, "outstanding balance") {
				t.Errorf("warning %q missing outstanding balance note", warning)
			}
		})
	}
}
