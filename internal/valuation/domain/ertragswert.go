package domain

// Income figures of the simplified Ertragswertverfahren.
const (
	// Flat operating cost deduction (Bewirtschaftungskostenpauschale)
	// for property types without stated operating costs.
	operatingCostFlat = 3279.0

	// Vervielfältiger: fixed table values standing in for an
	// age/rate-dependent annuity factor.
	multiplierResidential = 28.52
	multiplierCommercial  = 20.0
)

// IncomeValuation carries the income value (Ertragswert) and its
// intermediate components.
type IncomeValuation struct {
	GrossIncome          float64 // Jahresrohertrag
	OperatingCosts       float64 // Bewirtschaftungskosten
	VacancyLoss          float64
	NetIncome            float64 // Jahresreinertrag
	LandInterest         float64 // Bodenwertverzinsung
	NetBuildingIncome    float64
	Multiplier           float64
	BuildingIncomeValue  float64 // Ertragswert Gebäude
	EncumbranceDeduction float64
	IncomeValue          float64 // Verkehrswert nach Ertragswertverfahren
}

// ComputeIncomeValue runs the simplified Ertragswertverfahren. The land
// value is passed in from the cost valuation to avoid computing it twice.
func ComputeIncomeValue(in PropertyInput, landValue float64) IncomeValuation {
	var v IncomeValuation

	if in.Type.IsIncomeAssessed() {
		v.GrossIncome = in.AnnualGrossRent
		v.OperatingCosts = in.OperatingCosts
	} else {
		v.GrossIncome = in.LivingArea * in.MarketRent * 12
		v.OperatingCosts = operatingCostFlat
	}

	if in.Type == PropertyTypeMultiFamily {
		v.VacancyLoss = v.GrossIncome * in.VacancyRate / 100
	}

	v.NetIncome = v.GrossIncome - v.OperatingCosts - v.VacancyLoss
	v.LandInterest = landValue * in.CapitalizationRate / 100
	v.NetBuildingIncome = v.NetIncome - v.LandInterest

	v.Multiplier = multiplierResidential
	if in.Type.IsCommercial() {
		v.Multiplier = multiplierCommercial
	}
	v.BuildingIncomeValue = v.NetBuildingIncome * v.Multiplier

	if in.HasEncumbrances {
		v.EncumbranceDeduction = encumbranceDeduction
	}
	v.IncomeValue = v.BuildingIncomeValue + landValue - v.EncumbranceDeduction

	return v
}
