package service

import (
	"strconv"
	"strings"

	"immowert_backend/internal/valuation/domain"
	"immowert_backend/internal/valuation/transport"
	"immowert_backend/platform/apperr"
	"immowert_backend/platform/sanitize"
)

// Documented defaults substituted for blank or unparsable optional fields.
const (
	defaultSoilValue          = 370.0 // Bodenrichtwert €/m²
	defaultMarketRent         = 12.0  // €/m²/month
	defaultCapitalizationRate = 2.8   // percent
	defaultConstructionYear   = 2000
)

const msgRequiredFieldsMissing = "Pflichtfelder fehlen"

// Normalize converts the raw form request into a typed PropertyInput.
// Required fields (base set plus the property-type specific set) must be
// present; everything else falls back to a documented default, with the
// substitution recorded in DefaultsApplied. All numeric values are
// clamped to be non-negative.
func Normalize(req transport.EvaluateRequest) (domain.PropertyInput, error) {
	propertyType := domain.ParsePropertyType(strings.TrimSpace(req.PropertyType))

	if missing := missingRequiredFields(req, propertyType); len(missing) > 0 {
		return domain.PropertyInput{}, apperr.Validation(msgRequiredFieldsMissing).WithDetails(missing)
	}

	n := &normalizer{}

	in := domain.PropertyInput{
		ContactName:  strings.TrimSpace(req.Name),
		ContactEmail: strings.TrimSpace(req.Email),
		ContactPhone: strings.TrimSpace(req.Phone),

		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
		ZipCode: strings.TrimSpace(req.ZipCode),
		Type:    propertyType,

		ConstructionYear:   n.intWithDefault(req.ConstructionYear, defaultConstructionYear, "constructionYear"),
		LivingArea:         n.float(req.LivingArea),
		UsableArea:         n.float(req.UsableArea),
		PlotSize:           n.float(req.PlotSize),
		Rooms:              n.int(req.Rooms),
		Floors:             n.int(req.Floors),
		UnitCount:          n.int(req.UnitCount),
		HasGarage:          hasGarage(req.Garage),
		GarageArea:         n.float(req.GarageArea),
		OutdoorFacilities:  normalizeTags(req.OutdoorFacilities),
		ValueAddedFeatures: normalizeTags(req.ValueAddedFeatures),

		EquipmentLevel:       strings.TrimSpace(req.EquipmentLevel),
		BuildingMaterial:     strings.TrimSpace(req.BuildingMaterial),
		Roofing:              strings.TrimSpace(req.Roofing),
		SanitaryCondition:    strings.TrimSpace(req.SanitaryCondition),
		LastModernization:    n.int(req.LastModernization),
		ModernizationDetails: sanitize.Text(req.ModernizationDetails),
		RepairBacklog:        sanitize.Text(req.RepairBacklog),
		EnergyClass:          strings.TrimSpace(req.EnergyClass),

		LocalLocation:   sanitize.Text(req.LocalLocation),
		TransitDistance: optionalFloat(req.PublicTransportDistance),

		SoilValue:          n.floatWithDefault(req.SoilValue, defaultSoilValue, "soilValue"),
		MarketRent:         n.floatWithDefault(req.MarketRent, defaultMarketRent, "marketRent"),
		CapitalizationRate: n.floatWithDefault(req.CapitalizationRate, defaultCapitalizationRate, "capitalizationRate"),
		AnnualGrossRent:    n.float(req.AnnualGrossRent),
		OperatingCosts:     n.float(req.OperatingCosts),
		VacancyRate:        n.float(req.VacancyRate),
		UseType:            strings.TrimSpace(req.UseType),

		HasEncumbrances: isYes(req.Encumbrances),
		HasFloodRisk:    isYes(req.FloodRisk),
	}

	in.DefaultsApplied = n.defaultsApplied
	return in, nil
}

// missingRequiredFields collects the names of all absent required fields:
// the base set plus the set conditional on the property type.
func missingRequiredFields(req transport.EvaluateRequest, t domain.PropertyType) []string {
	var missing []string
	require := func(value, name string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	require(req.Address, "address")
	require(req.City, "city")
	require(req.ZipCode, "zipCode")
	require(req.PlotSize, "plotSize")

	if t.IsCommercial() {
		require(req.UsableArea, "usableArea")
		require(req.AnnualGrossRent, "annualGrossRent")
		require(req.OperatingCosts, "operatingCosts")
		require(req.UseType, "useType")
	} else {
		require(req.LivingArea, "livingArea")
	}

	if t == domain.PropertyTypeMultiFamily {
		require(req.UnitCount, "unitCount")
		require(req.AnnualGrossRent, "annualGrossRent")
		require(req.OperatingCosts, "operatingCosts")
		require(req.VacancyRate, "vacancyRate")
	}

	return missing
}

// normalizer parses numeric form values and records which fields were
// filled from a documented default.
type normalizer struct {
	defaultsApplied []string
}

func (n *normalizer) float(raw string) float64 {
	return clampNonNegative(parseFloat(raw, 0))
}

func (n *normalizer) floatWithDefault(raw string, def float64, field string) float64 {
	if _, err := strconv.ParseFloat(cleanNumber(raw), 64); err != nil {
		n.defaultsApplied = append(n.defaultsApplied, field)
		return def
	}
	return clampNonNegative(parseFloat(raw, def))
}

func (n *normalizer) int(raw string) int {
	value := parseInt(raw, 0)
	if value < 0 {
		return 0
	}
	return value
}

func (n *normalizer) intWithDefault(raw string, def int, field string) int {
	if _, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err != nil {
		n.defaultsApplied = append(n.defaultsApplied, field)
		return def
	}
	return n.int(raw)
}

func parseInt(raw string, def int) int {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return def
	}
	return int(value)
}

func parseFloat(raw string, def float64) float64 {
	value, err := strconv.ParseFloat(cleanNumber(raw), 64)
	if err != nil {
		return def
	}
	return value
}

// cleanNumber accepts the German decimal comma the form occasionally sends.
func cleanNumber(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func optionalFloat(raw string) *float64 {
	value, err := strconv.ParseFloat(cleanNumber(raw), 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

func isYes(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "ja")
}

// hasGarage treats any garage selection other than blank or "nein"
// (e.g. "einzel", "mehrfach") as present.
func hasGarage(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed != "" && !strings.EqualFold(trimmed, "nein")
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
