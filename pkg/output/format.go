// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"

	"github.com/jgviray/networth-forecast/internal/forecast"
	"github.com/jgviray/networth-forecast/internal/projection"
	"github.com/jgviray/networth-forecast/pkg/datetime"
	"github.com/jgviray/networth-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MonthLabel returns the display label for a projection month: a calendar
// date offset from startDate when one is configured, otherwise the month
// number itself.
func MonthLabel(startDate string, month int) string {
	if startDate != "" {
		if date, err := datetime.OffsetDate(startDate, datetime.DateTimeLayout, month-1); err == nil {
			return date
		}
	}
	return fmt.Sprintf("%d", month)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []forecast.Forecast, startDate string) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		fmt.Printf("Month   | Net Worth        | Investments      | House Value      | Housing Cost     | Cashflow\n")
		fmt.Printf("_____   | _________        | ___________      | ___________      | ____________     | ________\n")
		for _, record := range result.Records {
			_, _ = p.Printf("%-7s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
				MonthLabel(startDate, record.Month),
				record.NetWorth,
				record.Investments,
				record.HouseValue,
				record.HousingCost,
				record.Cashflow,
			)
		}
		printSummary(result.Summary)
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

func printSummary(summary projection.Summary) {
	fmt.Printf("--- Summary ---\n")
	fmt.Printf("Duration (months):        %d\n", summary.Months)
	fmt.Printf("Negative cashflow months: %d\n", summary.NegativeCashflowMonths)
	fmt.Printf("Total investment returns: %s\n", format.Currency(summary.TotalInvestmentReturns))
	fmt.Printf("Average monthly return:   %s\n", format.Currency(summary.AverageMonthlyReturn))
	fmt.Printf("Final net worth:          %s\n", format.Currency(summary.FinalNetWorth))
	fmt.Printf("Net worth growth:         %.1f%%\n", summary.NetWorthGrowthPct)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []forecast.Forecast, startDate string) {
	if len(results) == 0 {
		return
	}
	fmt.Printf(`"month"`)
	for _, result := range results {
		fmt.Printf(`,"net worth (%s)","investments (%s)","house value (%s)","housing cost (%s)","cashflow (%s)"`,
			result.Name, result.Name, result.Name, result.Name, result.Name)
	}
	fmt.Printf("\n")
	// All results share the same timeline, so take the months from the first.
	for n := range results[0].Records {
		fmt.Printf(`"%s"`, MonthLabel(startDate, results[0].Records[n].Month))
		for _, result := range results {
			record := result.Records[n]
			fmt.Printf(`,"%.2f","%.2f","%.2f","%.2f","%.2f"`,
				record.NetWorth, record.Investments, record.HouseValue, record.HousingCost, record.Cashflow)
		}
		fmt.Printf("\n")
	}
}
