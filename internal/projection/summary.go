package projection

// Summary aggregates headline statistics over a completed projection.
type Summary struct {
	Months                 int
	NegativeCashflowMonths int
	TotalInvestmentReturns float64
	FinalNetWorth          float64
	NetWorthGrowthPct      float64
	AverageMonthlyReturn   float64
}

// Analyze computes summary statistics for an ordered record sequence.
func Analyze(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	var summary Summary
	summary.Months = len(records)

	for _, record := range records {
		if record.Cashflow < 0 {
			summary.NegativeCashflowMonths++
		}
		summary.TotalInvestmentReturns += record.InvestmentReturn
	}

	first := records[0].NetWorth
	last := records[len(records)-1].NetWorth
	summary.FinalNetWorth = last
	if first != 0 {
		summary.NetWorthGrowthPct = (last/first - 1) * 100
	}
	summary.AverageMonthlyReturn = summary.TotalInvestmentReturns / float64(len(records))

	return summary
}
