// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/jgviray/networth-forecast/pkg/constants"
	"github.com/jgviray/networth-forecast/pkg/datetime"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected for the optional projection start
// date.
const DateTimeLayout = constants.DateTimeLayout

// Housing strategy type tags.
const (
	HousingTypeMortgage   = "mortgage"
	HousingTypePreselling = "preselling"
	HousingTypeRent       = "rent"
)

// Investment strategy type tags.
const (
	InvestmentTypeFlat         = "flat"
	InvestmentTypeRiskAdjusted = "risk-adjusted"
)

// Configuration holds all configuration for networth-forecast.
type Configuration struct {
	Profile    Profile
	Allocation Allocation
	Growth     Growth
	Projection Projection
	Scenarios  []Scenario
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// Profile holds the monthly income and expense parameters shared by all
// scenarios.
type Profile struct {
	Salary              float64
	OtherIncome         float64
	DailyLivingExpenses float64
	OtherExpenses       float64
}

// Allocation splits a positive monthly budget between savings and
// investments. Rates are decimal fractions.
type Allocation struct {
	SavingsRate     float64
	InvestmentsRate float64
}

// Growth holds the annual escalation rates as decimal fractions.
type Growth struct {
	IncomeRate     float64
	ExpenseRate    float64
	HouseValueRate float64
}

// Projection holds the starting balances and horizon shared by all scenarios.
// StartDate is optional; when set, output rows carry calendar labels instead
// of month numbers.
type Projection struct {
	Months              int
	StartDate           string
	StartingSavings     float64
	StartingInvestments float64
	StartingLiabilities float64
}

// Scenario pairs a housing strategy with an investment strategy under a name.
type Scenario struct {
	Name       string
	Active     bool
	Housing    HousingConfig
	Investment InvestmentConfig
}

// InstallmentTier is one fixed-payment month range of a preselling payment
// plan.
type InstallmentTier struct {
	FromMonth int
	ToMonth   int
	Payment   float64
}

// HousingConfig selects and parameterizes a housing strategy variant. Only
// the fields relevant to the selected type are consulted.
type HousingConfig struct {
	Type string

	// Owning variants.
	HouseValue          float64
	DownPayment         float64
	LoanTermMonths      int
	LoanInterestRate    float64
	PropertyTaxRate     float64
	MaintenanceCostRate float64

	// Preselling.
	PresellingDownPayment float64
	LumpSum               float64
	LoanDownPayment       float64
	OriginationFee        float64
	Installments          []InstallmentTier

	// Renting.
	Rent float64
}

// InvestmentConfig selects and parameterizes an investment strategy variant.
type InvestmentConfig struct {
	Type             string
	AnnualReturnRate float64
	RiskLevel        string
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard failures surface later as construction errors; the
// warnings flag setups that run but rarely mean what the author intended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	active := 0
	seen := make(map[string]bool)
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active++
		}
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name %q", scenario.Name))
		}
		seen[scenario.Name] = true
	}
	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios configured")
	} else if active == 0 {
		warnings = append(warnings, "no active scenarios; nothing will be simulated")
	}

	total := c.Allocation.SavingsRate + c.Allocation.InvestmentsRate
	if total > 1 {
		warnings = append(warnings, fmt.Sprintf("allocation rates sum to %.2f; surplus budget will be allocated more than once", total))
	} else if total < 1 {
		warnings = append(warnings, fmt.Sprintf("allocation rates sum to %.2f; part of any surplus budget is discarded", total))
	}

	if c.Projection.StartDate != "" && !datetime.ValidDate(c.Projection.StartDate) {
		warnings = append(warnings, fmt.Sprintf("start date %q is not in %s format; output will use month numbers", c.Projection.StartDate, DateTimeLayout))
	}

	return warnings
}
