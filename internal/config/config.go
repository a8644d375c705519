// Package config defines the analysis configuration structures and loads them
// from YAML.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/brokerlane/dealengine/pkg/deal"
	"github.com/brokerlane/dealengine/pkg/validation"
)

// Configuration holds all inputs for one deal analysis.
type Configuration struct {
	Business    Business          `yaml:"business"`
	Assumptions Assumptions       `yaml:"assumptions"`
	Seller      deal.SellerTerms  `yaml:"seller"`
	Buyer       deal.BuyerProfile `yaml:"buyer"`
	Policy      deal.Policy       `yaml:"policy,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
	Output      OutputConfig      `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Business describes the business being analyzed.
type Business struct {
	Name           string   `yaml:"name"`
	Industry       string   `yaml:"industry"`
	Revenue        float64  `yaml:"revenue"`
	SDE            float64  `yaml:"sde"`
	EBITDA         float64  `yaml:"ebitda"`
	WorkingCapital float64  `yaml:"workingCapital"`
	Expenses       *float64 `yaml:"expenses,omitempty"` // defaults to revenue - sde
}

// Assumptions drives the adjustment, DCF, and projection calculations.
type Assumptions struct {
	GrowthRatePct      float64 `yaml:"growthRatePct"`
	RiskScore          float64 `yaml:"riskScore"`
	OwnerDepScore      float64 `yaml:"ownerDepScore"`
	SellerCarryAllowed bool    `yaml:"sellerCarryAllowed"`
	DiscountRatePct    float64 `yaml:"discountRatePct"`
	TerminalMultiple   float64 `yaml:"terminalMultiple"`
	ProjectionYears    int     `yaml:"projectionYears"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshal(v)
}

// LoadConfigurationFromReader parses a YAML configuration from an in-memory
// reader; the server uses this for uploaded configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never block an analysis.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.ValidateProfile(
		c.Business.Revenue, c.Business.SDE, c.Business.EBITDA, c.Business.WorkingCapital)...)
	warnings = append(warnings, validation.ValidateAssumptions(
		c.Assumptions.GrowthRatePct, c.Assumptions.RiskScore, c.Assumptions.OwnerDepScore)...)
	warnings = append(warnings, validation.ValidateDealInputs(
		c.Seller.AskingPrice, c.Seller.DownPaymentPct,
		c.Buyer.TargetPurchasePrice, c.Buyer.AvailableCapital)...)

	return warnings
}
