package domain

import "math"

// SelectReportedValue picks the value reported as Verkehrswert: the income
// value for income-assessed property types (multi-family, commercial), the
// cost value otherwise. The income value of the remaining types is kept as
// a plausibility cross-check only.
func SelectReportedValue(t PropertyType, costValue, incomeValue float64) float64 {
	value := costValue
	if t.IsIncomeAssessed() {
		value = incomeValue
	}
	return RoundToThousand(value)
}

// RoundToThousand rounds to the nearest multiple of 1000, half up.
func RoundToThousand(v float64) float64 {
	return math.Floor(v/1000+0.5) * 1000
}
