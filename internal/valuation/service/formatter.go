package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"immowert_backend/internal/valuation/domain"
	"immowert_backend/internal/valuation/transport"
)

// de-DE printer used for every currency string in the response
// (1.234.567,89 style separators).
var germanPrinter = message.NewPrinter(language.German)

// FormatResult assembles the response object: the locale-formatted price
// line, the two narratives, the factor lists, and the full cost breakdown.
func FormatResult(in domain.PropertyInput, cost domain.CostValuation, reported float64, evaluationYear int) transport.ValuationResult {
	return transport.ValuationResult{
		Price:                germanPrinter.Sprintf("Geschätzter Verkehrswert: %.0f €", reported),
		Location:             LocationNarrative(in),
		Condition:            ConditionNarrative(in),
		PriceIncreaseFactors: PriceIncreaseFactors(in, evaluationYear),
		PriceDecreaseFactors: PriceDecreaseFactors(in),
		Breakdown: transport.CostBreakdown{
			LandValue:            formatEUR(cost.LandValue),
			BuildingValue:        formatEUR(cost.BuildingValue),
			GarageValue:          formatEUR(cost.GarageValue),
			OutdoorValue:         formatEUR(cost.OutdoorValue),
			MarketAdjustment:     formatEUR(cost.MarketAdjustment),
			EncumbranceDeduction: formatEUR(cost.EncumbranceDeduction),
		},
	}
}

func formatEUR(v float64) string {
	return germanPrinter.Sprintf("%.2f €", v)
}
