package service

import (
	"testing"

	"immowert_backend/internal/valuation/domain"
)

func TestFormatResult_GermanLocale(t *testing.T) {
	in := domain.PropertyInput{
		Type: domain.PropertyTypeSingleFamily,
		City: "Köln",
	}
	cost := domain.CostValuation{
		LandValue:            185000,
		BuildingValue:        127941,
		MarketAdjustment:     46941.15,
		EncumbranceDeduction: 1387.50,
	}

	result := FormatResult(in, cost, 360000, 2025)

	if result.Price != "Geschätzter Verkehrswert: 360.000 €" {
		t.Fatalf("unexpected price: %q", result.Price)
	}
	if result.Breakdown.LandValue != "185.000,00 €" {
		t.Fatalf("unexpected land value: %q", result.Breakdown.LandValue)
	}
	if result.Breakdown.MarketAdjustment != "46.941,15 €" {
		t.Fatalf("unexpected market adjustment: %q", result.Breakdown.MarketAdjustment)
	}
	if result.Breakdown.EncumbranceDeduction != "1.387,50 €" {
		t.Fatalf("unexpected encumbrance deduction: %q", result.Breakdown.EncumbranceDeduction)
	}
}

func TestFormatResult_BreakdownAlwaysComplete(t *testing.T) {
	result := FormatResult(domain.PropertyInput{City: "Köln"}, domain.CostValuation{}, 0, 2025)

	zero := "0,00 €"
	b := result.Breakdown
	for name, got := range map[string]string{
		"landValue":            b.LandValue,
		"buildingValue":        b.BuildingValue,
		"garageValue":          b.GarageValue,
		"outdoorValue":         b.OutdoorValue,
		"marketAdjustment":     b.MarketAdjustment,
		"encumbranceDeduction": b.EncumbranceDeduction,
	} {
		if got != zero {
			t.Fatalf("%s: expected %q, got %q", name, zero, got)
		}
	}

	if len(result.PriceIncreaseFactors) != 3 || len(result.PriceDecreaseFactors) != 3 {
		t.Fatalf("expected factor lists of length 3, got %d and %d",
			len(result.PriceIncreaseFactors), len(result.PriceDecreaseFactors))
	}
}
