// Package engine ties the calculation packages together into one deal
// analysis per configuration.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/brokerlane/dealengine/internal/config"
	"github.com/brokerlane/dealengine/pkg/deal"
	"github.com/brokerlane/dealengine/pkg/industry"
	"github.com/brokerlane/dealengine/pkg/multiples"
	"github.com/brokerlane/dealengine/pkg/projection"
	"github.com/brokerlane/dealengine/pkg/valuation"
)

// Analysis is the complete result of one engine run. Every field is computed
// fresh from the configuration; the struct carries no state and is safe to
// serialize directly.
type Analysis struct {
	BusinessName       string             `json:"businessName"`
	IndustryKey        string             `json:"industryKey"`
	BaseMultiples      industry.Multiples `json:"baseMultiples"`
	Adjustments        multiples.Result   `json:"adjustments"`
	EffectiveMultiples industry.Multiples `json:"effectiveMultiples"`

	SDEValuation     valuation.Band `json:"sdeValuation"`
	EBITDAValuation  valuation.Band `json:"ebitdaValuation"`
	RevenueValuation valuation.Band `json:"revenueValuation"`
	DCFValue         *float64       `json:"dcfValue,omitempty"`

	Projection         []projection.Row `json:"projection"`
	YearsToJustifyAsk  *int             `json:"yearsToJustifyAsk"`
	Strategy           deal.Strategy    `json:"strategy"`
	MonthlyNotePayment *float64         `json:"monthlyNotePayment"`

	Warnings []string `json:"warnings,omitempty"`
}

// Run computes the full analysis for one configuration. The calculation is
// pure; the logger only narrates progress.
func Run(logger *zap.Logger, conf *config.Configuration) (*Analysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		return nil, fmt.Errorf("nil configuration")
	}

	analysis := &Analysis{
		BusinessName: conf.Business.Name,
		Warnings:     conf.ValidateConfiguration(),
	}

	// Industry multiples and qualitative adjustments.
	analysis.IndustryKey = industry.Normalize(conf.Business.Industry)
	analysis.BaseMultiples = industry.MultiplesFor(conf.Business.Industry)
	analysis.Adjustments = multiples.Compute(multiples.Inputs{
		GrowthRatePct:      conf.Assumptions.GrowthRatePct,
		RiskScore:          conf.Assumptions.RiskScore,
		OwnerDepScore:      conf.Assumptions.OwnerDepScore,
		SellerCarryAllowed: conf.Assumptions.SellerCarryAllowed,
	})
	analysis.EffectiveMultiples = multiples.Apply(analysis.BaseMultiples, analysis.Adjustments.Total)

	logger.Debug(fmt.Sprintf("industry %q resolved to %s with adjustment %.2f",
		conf.Business.Industry, analysis.IndustryKey, analysis.Adjustments.Total),
		zap.String("op", "engine.Run"),
	)

	// Valuation bands on each earnings basis.
	analysis.SDEValuation = valuation.SDEMultiple(valuation.SDEInput{
		SDE:            conf.Business.SDE,
		Multiples:      analysis.EffectiveMultiples,
		WorkingCapital: conf.Business.WorkingCapital,
	})
	analysis.EBITDAValuation = valuation.EBITDAMultiple(valuation.EBITDAInput{
		EBITDA:         conf.Business.EBITDA,
		WorkingCapital: conf.Business.WorkingCapital,
	})
	analysis.RevenueValuation = valuation.RevenueMultiple(valuation.RevenueInput{
		Revenue:        conf.Business.Revenue,
		WorkingCapital: conf.Business.WorkingCapital,
	})

	if conf.Assumptions.DiscountRatePct > 0 {
		dcf := valuation.DCF(valuation.DCFInput{
			SDE:                conf.Business.SDE,
			GrowthRatePct:      conf.Assumptions.GrowthRatePct,
			DiscountRatePct:    conf.Assumptions.DiscountRatePct,
			TerminalMultiple:   conf.Assumptions.TerminalMultiple,
			SellerCarryAllowed: conf.Assumptions.SellerCarryAllowed,
			WorkingCapital:     conf.Business.WorkingCapital,
		})
		analysis.DCFValue = &dcf
	}

	// Forward projection at the mid effective multiple.
	projInput := projection.Input{
		BaseRevenue:  conf.Business.Revenue,
		BaseSDE:      conf.Business.SDE,
		BaseExpenses: conf.Business.Expenses,
		GrowthRate:   conf.Assumptions.GrowthRatePct / 100,
		Years:        conf.Assumptions.ProjectionYears,
		Multiple:     analysis.EffectiveMultiples.Mid,
	}
	analysis.Projection = projection.Project(projInput)
	if conf.Seller.AskingPrice != nil {
		analysis.YearsToJustifyAsk = projection.YearsToJustifyPrice(projInput, *conf.Seller.AskingPrice)
	}

	// Deal structure.
	analysis.Strategy = deal.Resolve(conf.Seller, conf.Buyer, conf.Policy)
	if analysis.Strategy.Structure == deal.StructureStandardAmortizing &&
		analysis.Strategy.Recommended.NotePrincipal != nil &&
		analysis.Strategy.Recommended.TermYears != nil {
		analysis.MonthlyNotePayment = deal.MonthlyPayment(
			*analysis.Strategy.Recommended.NotePrincipal,
			analysis.Strategy.Recommended.InterestPct,
			int(*analysis.Strategy.Recommended.TermYears*12),
		)
	}

	logger.Info("analysis computed",
		zap.String("op", "engine.Run"),
		zap.String("business", conf.Business.Name),
		zap.String("industry", analysis.IndustryKey),
		zap.String("structure", analysis.Strategy.Structure),
		zap.Int("warnings", len(analysis.Warnings)),
	)

	return analysis, nil
}
