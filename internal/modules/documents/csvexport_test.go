package documents

import (
	"strings"
	"testing"

	"github.com/cantinadirect/shipping-backend/internal/types"
)

func TestPackagesCSV(t *testing.T) {
	out, err := PackagesCSV([]types.Package{
		{ID: "p1", ShipmentID: "s1", LengthCm: f(40), WidthCm: f(30), HeightCm: f(25.5), WeightKg: f(12.4), Contents: "Vino rosso"},
		{ID: "p2", ShipmentID: "s1", Contents: "Materiale promozionale"},
	})
	if err != nil {
		t.Fatalf("PackagesCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "package_id;shipment_id;length_cm;width_cm;height_cm;weight_kg;contents" {
		t.Fatalf("header: %s", lines[0])
	}
	if lines[1] != "p1;s1;40;30;25.5;12.4;Vino rosso" {
		t.Fatalf("row 1: %s", lines[1])
	}
	// Missing dimensions surface as empty cells, never as zeros.
	if lines[2] != "p2;s1;;;;;Materiale promozionale" {
		t.Fatalf("row 2: %s", lines[2])
	}
}

func TestPackagesCSVQuoting(t *testing.T) {
	out, err := PackagesCSV([]types.Package{
		{ID: "p1", ShipmentID: "s1", Contents: `6x "Barolo"; fragile`},
	})
	if err != nil {
		t.Fatalf("PackagesCSV: %v", err)
	}
	if !strings.Contains(out, `"6x ""Barolo""; fragile"`) {
		t.Fatalf("field with separator and quotes must be quoted:\n%s", out)
	}
}

func TestPackagesCSVEmpty(t *testing.T) {
	out, err := PackagesCSV(nil)
	if err != nil {
		t.Fatalf("PackagesCSV: %v", err)
	}
	if out != "package_id;shipment_id;length_cm;width_cm;height_cm;weight_kg;contents\n" {
		t.Fatalf("empty input should yield the header only:\n%q", out)
	}
}
