package service

import (
	"strings"

	"immowert_backend/internal/valuation/domain"
)

// German phrases of the generated report. The location and condition
// sentences follow the wording of the existing PDF reports.
const (
	defaultLocalLocation = "Ruhige Wohnlage"
	floodRiskClause      = ", jedoch in einem Überschwemmungsgebiet"
	transitGoodClause    = ", sehr gute ÖPNV-Anbindung"
	transitPoorClause    = ", eingeschränkte ÖPNV-Anbindung"

	conditionNotSpecified = "nicht angegeben"

	factorFiller = "Kein weiterer Faktor"
)

// Transit distance thresholds in kilometers.
const (
	transitExcellentMaxKm = 1.0
	transitLimitedMinKm   = 3.0
)

// Large-area thresholds in m².
const (
	largeAreaResidential = 150.0
	largeAreaCommercial  = 200.0
)

const factorListLen = 3

// LocationNarrative builds the one-line location assessment:
// city plus local description, extended by flood and transit clauses.
func LocationNarrative(in domain.PropertyInput) string {
	var b strings.Builder

	local := in.LocalLocation
	if local == "" {
		local = defaultLocalLocation
	}
	b.WriteString("Lage in ")
	b.WriteString(in.City)
	b.WriteString(": ")
	b.WriteString(local)

	if in.HasFloodRisk {
		b.WriteString(floodRiskClause)
	}

	if in.TransitDistance != nil {
		switch {
		case *in.TransitDistance <= transitExcellentMaxKm:
			b.WriteString(transitGoodClause)
		case *in.TransitDistance > transitLimitedMinKm:
			b.WriteString(transitPoorClause)
		}
	}

	return b.String()
}

// ConditionNarrative builds the one-line condition assessment from the
// sanitary condition plus every stated condition detail.
func ConditionNarrative(in domain.PropertyInput) string {
	var b strings.Builder

	condition := in.SanitaryCondition
	if condition == "" {
		condition = conditionNotSpecified
	}
	b.WriteString("Zustand: ")
	b.WriteString(condition)

	if in.ModernizationDetails != "" {
		b.WriteString(", Modernisierungen: ")
		b.WriteString(in.ModernizationDetails)
	}
	if in.RepairBacklog != "" {
		b.WriteString(", Reparaturstau: ")
		b.WriteString(in.RepairBacklog)
	}
	if in.EnergyClass != "" {
		b.WriteString(", Energieeffizienzklasse ")
		b.WriteString(in.EnergyClass)
	}

	return b.String()
}

// PriceIncreaseFactors returns exactly three entries: the first three
// qualifying factors in priority order, padded with a filler entry.
func PriceIncreaseFactors(in domain.PropertyInput, evaluationYear int) []string {
	var factors []string

	if in.TransitDistance != nil && *in.TransitDistance <= transitExcellentMaxKm {
		factors = append(factors, "Sehr gute ÖPNV-Anbindung")
	}
	if in.EquipmentLevel == "gehoben" {
		factors = append(factors, "Gehobene Ausstattung")
	}
	if in.LastModernization > 0 && evaluationYear-in.LastModernization <= 10 {
		factors = append(factors, "Modernisierung innerhalb der letzten 10 Jahre")
	}
	if in.Type.IsCommercial() {
		if in.UsableArea > largeAreaCommercial {
			factors = append(factors, "Überdurchschnittliche Nutzfläche")
		}
	} else if in.LivingArea > largeAreaResidential {
		factors = append(factors, "Überdurchschnittliche Wohnfläche")
	}
	if len(in.OutdoorFacilities) > 0 {
		factors = append(factors, "Gepflegte Außenanlagen")
	}
	if len(in.ValueAddedFeatures) > 0 {
		factors = append(factors, "Wertsteigernde Zusatzausstattung")
	}

	return capAndPad(factors)
}

// PriceDecreaseFactors returns exactly three entries, same cap-and-pad
// rule as PriceIncreaseFactors.
func PriceDecreaseFactors(in domain.PropertyInput) []string {
	var factors []string

	if in.HasFloodRisk {
		factors = append(factors, "Lage im Überschwemmungsgebiet")
	}
	if in.SanitaryCondition == "renovierungsbedürftig" {
		factors = append(factors, "Renovierungsbedürftiger Zustand")
	}
	if in.RepairBacklog != "" {
		factors = append(factors, "Vorhandener Reparaturstau")
	}
	if in.ConstructionYear < 1970 {
		factors = append(factors, "Baujahr vor 1970")
	}
	if in.HasEncumbrances {
		factors = append(factors, "Eingetragene Lasten und Beschränkungen")
	}

	return capAndPad(factors)
}

// capAndPad trims the list to three entries and right-pads shorter lists
// with the filler phrase. Qualifying factors beyond the third are dropped
// in source order.
func capAndPad(factors []string) []string {
	if len(factors) > factorListLen {
		factors = factors[:factorListLen]
	}
	for len(factors) < factorListLen {
		factors = append(factors, factorFiller)
	}
	return factors
}
