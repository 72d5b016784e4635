// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/jgviray/networth-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateLoanHorizon warns when a loan's amortization extends past the
// projection horizon, meaning the projection ends with an outstanding
// balance.
func ValidateLoanHorizon(scenarioName string, originationMonth, termMonths, projectionMonths int) string {
	if originationMonth+termMonths > projectionMonths {
		return fmt.Sprintf("Scenario '%s' loan matures at month %d, after the %d-month projection - loan will have an outstanding balance",
			scenarioName, originationMonth+termMonths, projectionMonths)
	}
	return ""
}
