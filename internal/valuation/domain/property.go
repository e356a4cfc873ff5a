// Package domain holds the property model and the appraisal arithmetic.
// Everything in this package is pure: no I/O, no clock, no randomness.
package domain

// PropertyType is the closed set of property classifications the form
// offers. The type is resolved once during normalization; the calculators
// dispatch on it instead of re-checking raw strings.
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "einfamilienhaus"
	PropertyTypeMultiFamily  PropertyType = "mehrfamilienhaus"
	PropertyTypeApartment    PropertyType = "wohnung"
	PropertyTypeCommercial   PropertyType = "gewerbe"
)

// ParsePropertyType maps a raw form value onto the closed set.
// An empty value falls back to single-family, the form's preselected option.
func ParsePropertyType(raw string) PropertyType {
	switch PropertyType(raw) {
	case PropertyTypeMultiFamily, PropertyTypeApartment, PropertyTypeCommercial:
		return PropertyType(raw)
	default:
		return PropertyTypeSingleFamily
	}
}

// IsCommercial reports whether the property is assessed on usable area
// and commercial cost figures.
func (t PropertyType) IsCommercial() bool {
	return t == PropertyTypeCommercial
}

// IsIncomeAssessed reports whether the income value, rather than the cost
// value, becomes the reported market value (Verkehrswert).
func (t PropertyType) IsIncomeAssessed() bool {
	return t == PropertyTypeMultiFamily || t == PropertyTypeCommercial
}

// TotalUsefulLifeYears returns the expected total useful life
// (Gesamtnutzungsdauer) per property type.
func (t PropertyType) TotalUsefulLifeYears() int {
	switch t {
	case PropertyTypeApartment:
		return 60
	case PropertyTypeCommercial:
		return 50
	default:
		return 80
	}
}

// PropertyInput is the fully normalized request data. All numeric fields
// are non-negative; documented defaults have been substituted for blank
// or unparsable values and are recorded in DefaultsApplied.
type PropertyInput struct {
	// Contact (optional depending on deployment)
	ContactName  string
	ContactEmail string
	ContactPhone string

	// Location
	Address string
	City    string
	ZipCode string

	// Classification
	Type PropertyType

	// Physical attributes
	ConstructionYear   int
	LivingArea         float64
	UsableArea         float64
	PlotSize           float64
	Rooms              int
	Floors             int
	UnitCount          int
	HasGarage          bool
	GarageArea         float64
	OutdoorFacilities  []string
	ValueAddedFeatures []string

	// Condition attributes
	EquipmentLevel       string
	BuildingMaterial     string
	Roofing              string
	SanitaryCondition    string
	LastModernization    int // year, 0 = never
	ModernizationDetails string
	RepairBacklog        string
	EnergyClass          string

	// Location quality
	LocalLocation   string
	TransitDistance *float64 // km, nil when not stated

	// Market attributes
	SoilValue          float64 // Bodenrichtwert €/m²
	MarketRent         float64 // €/m²/month
	CapitalizationRate float64 // Liegenschaftszinssatz, percent
	AnnualGrossRent    float64
	OperatingCosts     float64
	VacancyRate        float64 // percent
	UseType            string  // commercial only

	// Legal attributes
	HasEncumbrances bool
	HasFloodRisk    bool

	// DefaultsApplied lists the field names whose value came from a
	// documented default rather than the request.
	DefaultsApplied []string
}

// CostArea returns the area the replacement cost is computed from:
// usable area for commercial property, living area otherwise.
func (p PropertyInput) CostArea() float64 {
	if p.Type.IsCommercial() {
		return p.UsableArea
	}
	return p.LivingArea
}
