package documents

import (
	"testing"

	"github.com/cantinadirect/shipping-backend/internal/types"
)

func testShipment() *types.Shipment {
	return &types.Shipment{
		ID:                 "ship-1",
		HumanID:            "SHP-0001",
		Currency:           "EUR",
		Origin:             "wine_estate",
		ContentDescription: "Vino rosso in cartoni",
		SenderName:         "Cantina Alfa S.r.l.",
		SenderAddress:      "Via Roma 1",
		SenderCity:         "Asti",
		SenderPostalCode:   "14100",
		SenderCountry:      "Italia",
		RecipientName:      "Import Beta GmbH",
		RecipientAddress:   "Bahnhofstrasse 2",
		RecipientCity:      "Berlin",
		RecipientPostalCode: "10115",
		RecipientCountry:   "Germania",
	}
}

func TestResolveItemsPrecedence(t *testing.T) {
	e := NewEngine(nil)
	sh := testShipment()
	sh.Fields = map[string]interface{}{
		"packing_list": []interface{}{
			map[string]interface{}{"description": "From fields", "bottles": 3},
		},
	}
	packages := []types.Package{{ID: "p1", ShipmentID: "ship-1", Contents: "From package"}}
	explicit := []types.PackingListRow{{"description": "From request", "bottles": 1}}

	t.Run("explicit_list_wins", func(t *testing.T) {
		items := e.resolveItems(sh, packages, explicit)
		if len(items) != 1 || items[0].Description != "From request" {
			t.Fatalf("explicit packing list should win, got %+v", items)
		}
	})

	t.Run("field_bag_second", func(t *testing.T) {
		items := e.resolveItems(sh, packages, nil)
		if len(items) != 1 || items[0].Description != "From fields" {
			t.Fatalf("embedded packing list should win over packages, got %+v", items)
		}
	})

	t.Run("packages_third", func(t *testing.T) {
		sh2 := testShipment()
		items := e.resolveItems(sh2, packages, nil)
		if len(items) != 1 || items[0].Description != "From package" {
			t.Fatalf("packages should produce synthetic items, got %+v", items)
		}
	})

	t.Run("placeholder_last", func(t *testing.T) {
		sh2 := testShipment()
		items := e.resolveItems(sh2, nil, nil)
		if len(items) != 1 {
			t.Fatalf("placeholder must yield exactly one item, got %d", len(items))
		}
		if items[0].Description != "Vino rosso in cartoni" {
			t.Fatalf("placeholder should use the content description, got %q", items[0].Description)
		}
	})
}

func TestEmbeddedPackingRowsShapes(t *testing.T) {
	direct := map[string]interface{}{
		"packing": []interface{}{
			map[string]interface{}{"description": "a"},
			map[string]interface{}{"description": "b"},
		},
	}
	wrapped := map[string]interface{}{
		"lista_imballo": map[string]interface{}{
			"rows": []interface{}{
				map[string]interface{}{"description": "c"},
			},
		},
	}

	if rows := embeddedPackingRows(direct); len(rows) != 2 {
		t.Fatalf("direct array: got %d rows, want 2", len(rows))
	}
	if rows := embeddedPackingRows(wrapped); len(rows) != 1 {
		t.Fatalf("rows wrapper: got %d rows, want 1", len(rows))
	}
	if rows := embeddedPackingRows(nil); rows != nil {
		t.Fatalf("nil bag: got %v", rows)
	}
}

func TestNormalizeRowDerivedFields(t *testing.T) {
	sh := testShipment()
	row := types.PackingListRow{
		"description":         "Barbera d'Asti",
		"bottles":             6,
		"volume_per_bottle_l": 0.75,
		"unit_price":          "12,00",
		"alcohol_percent":     "13,5",
	}
	it := normalizeRow(sh, row)

	if it.TotalVolumeL == nil || *it.TotalVolumeL != 4.5 {
		t.Fatalf("total volume: got %v, want 4.5", it.TotalVolumeL)
	}
	if it.LineTotal == nil || *it.LineTotal != 72 {
		t.Fatalf("line total: got %v, want 72", it.LineTotal)
	}
	if it.AlcoholPercent == nil || *it.AlcoholPercent != 13.5 {
		t.Fatalf("alcohol: got %v, want 13.5", it.AlcoholPercent)
	}
	if it.Currency != "EUR" {
		t.Fatalf("currency should fall back to shipment currency, got %q", it.Currency)
	}
}

func TestNormalizeRowMissingNumericsStayNil(t *testing.T) {
	sh := testShipment()
	it := normalizeRow(sh, types.PackingListRow{"description": "Gift box", "unit_price": 9.5})

	if it.TotalVolumeL != nil {
		t.Fatalf("volume must stay nil without bottle count, got %v", *it.TotalVolumeL)
	}
	if it.LineTotal != nil {
		t.Fatalf("line total must never be fabricated, got %v", *it.LineTotal)
	}
}

func TestResolvePartyFlatBeatsNested(t *testing.T) {
	sh := testShipment()
	sh.Fields = map[string]interface{}{
		"sender": map[string]interface{}{
			"name":  "Nested name (should lose)",
			"phone": "+39 0141 000000",
		},
	}
	p := resolveParty(senderFlat(sh), nestedParty(sh.Fields, "sender"))

	if p.Name != "Cantina Alfa S.r.l." {
		t.Fatalf("flat column should win, got %q", p.Name)
	}
	if p.Phone != "+39 0141 000000" {
		t.Fatalf("nested value should fill the missing field, got %q", p.Phone)
	}
}

func TestBillingDefaultsToConsignee(t *testing.T) {
	e := NewEngine(nil)
	sh := testShipment()
	d := e.Assemble(Input{Shipment: sh, DocType: "ddt"}, DocTransportManifest)

	if d.BillTo != d.Consignee {
		t.Fatalf("absent billing should default to consignee, got %+v", d.BillTo)
	}
}
