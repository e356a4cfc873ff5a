// Package transport defines the request and response shapes of the
// valuation endpoint. All form values arrive as strings (the multi-step
// form serializes its state verbatim); normalization into typed values
// happens in the service layer.
package transport

import "time"

// ── Requests ──────────────────────────────────────────────────────────────────

// EvaluateRequest mirrors the fields submitted by the valuation form.
type EvaluateRequest struct {
	// Contact
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`

	// General
	Address           string `json:"address"`
	City              string `json:"city"`
	ZipCode           string `json:"zipCode"`
	PropertyType      string `json:"propertyType" validate:"omitempty,oneof=einfamilienhaus mehrfamilienhaus wohnung gewerbe"`
	ConstructionYear  string `json:"constructionYear"`
	EvaluationPurpose string `json:"evaluationPurpose"`

	// Plot
	PlotSize          string `json:"plotSize"`
	SoilValue         string `json:"soilValue"`
	DevelopmentStatus string `json:"developmentStatus"`
	SoilCondition     string `json:"soilCondition"`
	ZoningPlan        string `json:"zoningPlan"`
	Encumbrances      string `json:"encumbrances"`
	FloodRisk         string `json:"floodRisk"`

	// Building
	LivingArea         string   `json:"livingArea"`
	UsableArea         string   `json:"usableArea"`
	UnitCount          string   `json:"unitCount"`
	Rooms              string   `json:"rooms"`
	Floors             string   `json:"floors"`
	Basement           string   `json:"basement"`
	Roofing            string   `json:"roofing"`
	BuildingMaterial   string   `json:"buildingMaterial"`
	Garage             string   `json:"garage"`
	GarageArea         string   `json:"garageArea"`
	OutdoorFacilities  []string `json:"outdoorFacilities"`
	ValueAddedFeatures []string `json:"valueAddedFeatures"`
	EquipmentLevel     string   `json:"equipmentLevel"`
	HeatingSystem      string   `json:"heatingSystem"`
	SanitaryCondition  string   `json:"sanitaryCondition"`

	// Modernization and condition
	LastModernization    string `json:"lastModernization"`
	ModernizationDetails string `json:"modernizationDetails"`
	RepairBacklog        string `json:"repairBacklog"`
	Accessibility        string `json:"accessibility"`
	EnergyCertificate    string `json:"energyCertificate"`
	EnergyClass          string `json:"energyClass"`

	// Location and infrastructure
	LocalLocation           string `json:"localLocation"`
	PublicTransportDistance string `json:"publicTransportDistance"`
	AmenitiesDistance       string `json:"amenitiesDistance"`

	// Market and income data
	MarketRent         string `json:"marketRent"`
	CapitalizationRate string `json:"capitalizationRate"`
	AnnualGrossRent    string `json:"annualGrossRent"`
	OperatingCosts     string `json:"operatingCosts"`
	VacancyRate        string `json:"vacancyRate"`
	UseType            string `json:"useType"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// CostBreakdown lists the locale-formatted components of the cost value.
// Every field is always present, even when the underlying amount is zero.
type CostBreakdown struct {
	LandValue            string `json:"landValue"`
	BuildingValue        string `json:"buildingValue"`
	GarageValue          string `json:"garageValue"`
	OutdoorValue         string `json:"outdoorValue"`
	MarketAdjustment     string `json:"marketAdjustment"`
	EncumbranceDeduction string `json:"encumbranceDeduction"`
}

// ValuationResult is the response of the valuation endpoint.
// The two factor lists always contain exactly three entries.
type ValuationResult struct {
	Price                string        `json:"price"`
	Location             string        `json:"location"`
	Condition            string        `json:"condition"`
	PriceIncreaseFactors []string      `json:"priceIncreaseFactors"`
	PriceDecreaseFactors []string      `json:"priceDecreaseFactors"`
	Breakdown            CostBreakdown `json:"breakdown"`
}

// SubmissionSummary is one entry of the recent-submissions listing.
type SubmissionSummary struct {
	ID              string    `json:"id"`
	PropertyType    string    `json:"propertyType"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Price           string    `json:"price"`
	DefaultsApplied []string  `json:"defaultsApplied"`
	CreatedAt       time.Time `json:"createdAt"`
}
