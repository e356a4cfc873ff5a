package service

import (
	"strings"
	"testing"

	"immowert_backend/internal/valuation/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestLocationNarrative_DefaultAndClauses(t *testing.T) {
	in := domain.PropertyInput{City: "Köln"}
	if got := LocationNarrative(in); got != "Lage in Köln: Ruhige Wohnlage" {
		t.Fatalf("unexpected narrative: %q", got)
	}

	in.LocalLocation = "Zentrale Innenstadtlage"
	in.HasFloodRisk = true
	got := LocationNarrative(in)
	if !strings.HasPrefix(got, "Lage in Köln: Zentrale Innenstadtlage") {
		t.Fatalf("unexpected narrative prefix: %q", got)
	}
	if !strings.Contains(got, ", jedoch in einem Überschwemmungsgebiet") {
		t.Fatalf("expected flood clause in %q", got)
	}
}

func TestLocationNarrative_TransitClauses(t *testing.T) {
	in := domain.PropertyInput{City: "Köln", TransitDistance: floatPtr(0.8)}
	if got := LocationNarrative(in); !strings.Contains(got, "sehr gute ÖPNV-Anbindung") {
		t.Fatalf("expected excellent transit clause in %q", got)
	}

	in.TransitDistance = floatPtr(4.2)
	if got := LocationNarrative(in); !strings.Contains(got, "eingeschränkte ÖPNV-Anbindung") {
		t.Fatalf("expected limited transit clause in %q", got)
	}

	// between the thresholds: no clause either way
	in.TransitDistance = floatPtr(2.0)
	if got := LocationNarrative(in); strings.Contains(got, "ÖPNV") {
		t.Fatalf("expected no transit clause in %q", got)
	}
}

func TestConditionNarrative(t *testing.T) {
	in := domain.PropertyInput{}
	if got := ConditionNarrative(in); got != "Zustand: nicht angegeben" {
		t.Fatalf("unexpected narrative: %q", got)
	}

	in = domain.PropertyInput{
		SanitaryCondition:    "modern",
		ModernizationDetails: "Bad 2021 saniert",
		RepairBacklog:        "Fassade",
		EnergyClass:          "B",
	}
	got := ConditionNarrative(in)
	expected := "Zustand: modern, Modernisierungen: Bad 2021 saniert, Reparaturstau: Fassade, Energieeffizienzklasse B"
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestPriceIncreaseFactors_PriorityAndCap(t *testing.T) {
	in := domain.PropertyInput{
		Type:               domain.PropertyTypeSingleFamily,
		TransitDistance:    floatPtr(0.5),
		EquipmentLevel:     "gehoben",
		LastModernization:  2020,
		LivingArea:         180,
		OutdoorFacilities:  []string{"terrasse"},
		ValueAddedFeatures: []string{"solaranlage"},
	}
	factors := PriceIncreaseFactors(in, 2025)

	if len(factors) != 3 {
		t.Fatalf("expected exactly 3 factors, got %d", len(factors))
	}
	if factors[0] != "Sehr gute ÖPNV-Anbindung" {
		t.Fatalf("expected transit first, got %q", factors[0])
	}
	if factors[1] != "Gehobene Ausstattung" {
		t.Fatalf("expected equipment second, got %q", factors[1])
	}
	if factors[2] != "Modernisierung innerhalb der letzten 10 Jahre" {
		t.Fatalf("expected modernization third, got %q", factors[2])
	}
}

func TestPriceIncreaseFactors_Padding(t *testing.T) {
	factors := PriceIncreaseFactors(domain.PropertyInput{Type: domain.PropertyTypeSingleFamily}, 2025)

	if len(factors) != 3 {
		t.Fatalf("expected exactly 3 factors, got %d", len(factors))
	}
	for i, f := range factors {
		if f != "Kein weiterer Faktor" {
			t.Fatalf("expected filler at %d, got %q", i, f)
		}
	}
}

func TestPriceIncreaseFactors_LargeAreaPerType(t *testing.T) {
	in := domain.PropertyInput{Type: domain.PropertyTypeSingleFamily, LivingArea: 151}
	if factors := PriceIncreaseFactors(in, 2025); factors[0] != "Überdurchschnittliche Wohnfläche" {
		t.Fatalf("expected living area factor, got %q", factors[0])
	}

	in = domain.PropertyInput{Type: domain.PropertyTypeCommercial, UsableArea: 201, LivingArea: 151}
	if factors := PriceIncreaseFactors(in, 2025); factors[0] != "Überdurchschnittliche Nutzfläche" {
		t.Fatalf("expected usable area factor, got %q", factors[0])
	}

	// commercial below its threshold: living area must not count
	in = domain.PropertyInput{Type: domain.PropertyTypeCommercial, UsableArea: 180, LivingArea: 151}
	if factors := PriceIncreaseFactors(in, 2025); factors[0] != "Kein weiterer Faktor" {
		t.Fatalf("expected filler, got %q", factors[0])
	}
}

func TestPriceDecreaseFactors_PriorityAndPadding(t *testing.T) {
	in := domain.PropertyInput{
		HasFloodRisk:      true,
		SanitaryCondition: "renovierungsbedürftig",
		RepairBacklog:     "Dach undicht",
		ConstructionYear:  1960,
		HasEncumbrances:   true,
	}
	factors := PriceDecreaseFactors(in)

	if len(factors) != 3 {
		t.Fatalf("expected exactly 3 factors, got %d", len(factors))
	}
	expected := []string{
		"Lage im Überschwemmungsgebiet",
		"Renovierungsbedürftiger Zustand",
		"Vorhandener Reparaturstau",
	}
	for i := range expected {
		if factors[i] != expected[i] {
			t.Fatalf("factor %d: expected %q, got %q", i, expected[i], factors[i])
		}
	}

	in = domain.PropertyInput{ConstructionYear: 1960}
	factors = PriceDecreaseFactors(in)
	if factors[0] != "Baujahr vor 1970" {
		t.Fatalf("expected construction year factor, got %q", factors[0])
	}
	if factors[1] != "Kein weiterer Faktor" || factors[2] != "Kein weiterer Faktor" {
		t.Fatalf("expected filler padding, got %v", factors)
	}
}
