package domain

// Cost figures of the simplified Sachwertverfahren. The €/m² rates and the
// flat deduction come from the Bodenrichtwert/NHK tables the product is
// calibrated against.
const (
	costPerSqmResidential = 1550.80
	costPerSqmCommercial  = 1200.0
	garageCostPerSqm      = 665.50
	outdoorFacilityValue  = 10000.0
	encumbranceDeduction  = 1387.50

	// Annual depreciation rates (Alterswertminderung)
	depreciationRateLegacy  = 0.015 // construction year 1900-1990
	depreciationRateDefault = 0.0125

	// Discount on depreciation when modernized within the last 10 years
	recentModernizationDiscount = 0.1
	recentModernizationWindow   = 10

	// Sachwertfaktor (market adjustment)
	marketFactorModern = 1.15 // construction year after 1990
	marketFactorLegacy = 1.09
)

// valueAddedFeatureBonuses holds the fixed per-feature increments applied
// to single-family homes.
var valueAddedFeatureBonuses = map[string]float64{
	"solaranlage":               15000,
	"batteriespeicher":          10000,
	"smart-home":                10000,
	"elektrisches-garagentor":   5000,
	"eingezaeuntes-grundstueck": 5000,
}

// CostValuation carries the cost value (Sachwert) and every intermediate
// component so the result formatter can expose a full breakdown.
type CostValuation struct {
	LandValue            float64 // Bodenwert
	BaseCost             float64 // Normalherstellungskosten
	BuildingValue        float64 // after depreciation and adjustment factors
	GarageValue          float64
	OutdoorValue         float64
	FeatureBonus         float64
	Preliminary          float64 // vorläufiger Sachwert
	MarketAdjusted       float64
	MarketAdjustment     float64 // adjusted minus preliminary
	EncumbranceDeduction float64
	CostValue            float64 // Verkehrswert nach Sachwertverfahren
}

// ComputeCostValue runs the simplified Sachwertverfahren for the given
// evaluation year. The depreciation fraction is intentionally not clamped;
// see depreciationFraction.
func ComputeCostValue(in PropertyInput, evaluationYear int) CostValuation {
	var v CostValuation

	v.LandValue = in.PlotSize * in.SoilValue

	v.BaseCost = in.CostArea() * costPerSqm(in.Type)
	v.BuildingValue = v.BaseCost * (1 - depreciationFraction(in, evaluationYear))
	v.BuildingValue *= materialFactor(in.BuildingMaterial)
	v.BuildingValue *= conditionFactor(in.SanitaryCondition)
	v.BuildingValue *= roofFactor(in.Roofing)

	if in.HasGarage {
		v.GarageValue = in.GarageArea * garageCostPerSqm
	}

	if !in.Type.IsCommercial() {
		v.OutdoorValue = float64(len(in.OutdoorFacilities)) * outdoorFacilityValue
	}

	if in.Type == PropertyTypeSingleFamily {
		for _, feature := range in.ValueAddedFeatures {
			v.FeatureBonus += valueAddedFeatureBonuses[feature]
		}
	}

	v.Preliminary = v.BuildingValue + v.GarageValue + v.OutdoorValue + v.LandValue + v.FeatureBonus

	factor := marketFactorLegacy
	if in.ConstructionYear > 1990 {
		factor = marketFactorModern
	}
	v.MarketAdjusted = v.Preliminary * factor
	v.MarketAdjustment = v.MarketAdjusted - v.Preliminary

	if in.HasEncumbrances {
		v.EncumbranceDeduction = encumbranceDeduction
	}
	v.CostValue = v.MarketAdjusted - v.EncumbranceDeduction

	return v
}

func costPerSqm(t PropertyType) float64 {
	if t.IsCommercial() {
		return costPerSqmCommercial
	}
	return costPerSqmResidential
}

// depreciationFraction is age × annual rate, softened when the building
// was modernized within the last ten years. The fraction is NOT clamped
// to [0,1]: a very old building can drive the building value negative.
// Known latent defect, kept for parity with the calibrated figures.
func depreciationFraction(in PropertyInput, evaluationYear int) float64 {
	age := evaluationYear - in.ConstructionYear

	discount := 0.0
	if in.LastModernization > 0 && evaluationYear-in.LastModernization <= recentModernizationWindow {
		discount = recentModernizationDiscount
	}

	rate := depreciationRateDefault
	if in.ConstructionYear >= 1900 && in.ConstructionYear <= 1990 {
		rate = depreciationRateLegacy
	}

	return float64(age) * rate * (1 - discount)
}

func materialFactor(material string) float64 {
	switch material {
	case "massiv":
		return 1.1
	case "holz":
		return 0.9
	default:
		return 1.0
	}
}

func conditionFactor(sanitaryCondition string) float64 {
	switch sanitaryCondition {
	case "renovierungsbedürftig":
		return 0.9
	case "modern":
		return 1.05
	default:
		return 1.0
	}
}

func roofFactor(roofing string) float64 {
	if roofing == "flachdach-modern" {
		return 1.02
	}
	return 1.0
}
