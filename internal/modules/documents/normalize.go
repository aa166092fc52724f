package documents

import (
	"fmt"
	"strings"

	"github.com/cantinadirect/shipping-backend/internal/types"
)

// resolveItems builds the normalized item list with a strict precedence:
// explicit packing-list rows, then a packing list embedded in the shipment
// field bag, then one synthetic item per physical package, then a single
// placeholder item. The result is never empty.
func (e *Engine) resolveItems(sh *types.Shipment, packages []types.Package, packing []types.PackingListRow) []Item {
	if len(packing) > 0 {
		return e.normalizeRows(sh, packing)
	}
	if rows := embeddedPackingRows(sh.Fields); len(rows) > 0 {
		e.obs.Info("packing list not supplied, using rows embedded in shipment fields",
			"shipment", sh.HumanID, "rows", len(rows))
		return e.normalizeRows(sh, rows)
	}
	if len(packages) > 0 {
		e.obs.Info("no packing list available, deriving one item per package",
			"shipment", sh.HumanID, "packages", len(packages))
		items := make([]Item, 0, len(packages))
		for i, p := range packages {
			desc := strings.TrimSpace(p.Contents)
			if desc == "" {
				desc = fmt.Sprintf("Collo %d di %d: %s", i+1, len(packages), fallbackDescription(sh))
			}
			items = append(items, Item{
				Description: desc,
				Currency:    sh.Currency,
				ItemType:    "package",
			})
		}
		return items
	}
	e.obs.Info("no packing list or packages, substituting placeholder item",
		"shipment", sh.HumanID)
	return []Item{{
		Description: fallbackDescription(sh),
		Currency:    sh.Currency,
		ItemType:    "generic",
	}}
}

func fallbackDescription(sh *types.Shipment) string {
	if d := strings.TrimSpace(sh.ContentDescription); d != "" {
		return d
	}
	return "Merce varia"
}

// embeddedPackingRows digs a packing list out of the free-form field bag.
// The value may be a direct array of rows or an object wrapping a "rows"
// array.
func embeddedPackingRows(bag map[string]interface{}) []types.PackingListRow {
	if len(bag) == 0 {
		return nil
	}
	for _, key := range packingListKeys {
		v, ok := bag[key]
		if !ok || v == nil {
			continue
		}
		if rows := coercePackingRows(v); len(rows) > 0 {
			return rows
		}
	}
	return nil
}

func coercePackingRows(v interface{}) []types.PackingListRow {
	switch t := v.(type) {
	case []interface{}:
		rows := make([]types.PackingListRow, 0, len(t))
		for _, raw := range t {
			if m, ok := raw.(map[string]interface{}); ok {
				rows = append(rows, m)
			}
		}
		return rows
	case []types.PackingListRow:
		return t
	case map[string]interface{}:
		if inner, ok := t["rows"]; ok {
			return coercePackingRows(inner)
		}
	}
	return nil
}

func (e *Engine) normalizeRows(sh *types.Shipment, rows []types.PackingListRow) []Item {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, normalizeRow(sh, row))
	}
	if len(items) == 0 {
		// A packing list of only malformed rows still must not leave the
		// document empty.
		e.obs.Info("packing list rows all unusable, substituting placeholder item",
			"shipment", sh.HumanID)
		items = append(items, Item{
			Description: fallbackDescription(sh),
			Currency:    sh.Currency,
			ItemType:    "generic",
		})
	}
	return items
}

func normalizeRow(sh *types.Shipment, row types.PackingListRow) Item {
	it := Item{
		Description:      lookupString(row, descriptionKeys),
		Bottles:          lookupInt(row, bottleCountKeys),
		VolumePerBottleL: lookupFloat(row, bottleVolumeKeys),
		UnitPrice:        lookupFloat(row, unitPriceKeys),
		AlcoholPercent:   lookupFloat(row, alcoholKeys),
		ItemType:         lookupString(row, itemTypeKeys),
		Currency:         firstNonEmpty(lookupString(row, currencyKeys), sh.Currency),
	}
	if it.Description == "" {
		it.Description = fallbackDescription(sh)
	}
	if it.Bottles != nil && it.VolumePerBottleL != nil {
		v := float64(*it.Bottles) * *it.VolumePerBottleL
		it.TotalVolumeL = &v
	}
	if it.Bottles != nil && it.UnitPrice != nil {
		v := float64(*it.Bottles) * *it.UnitPrice
		it.LineTotal = &v
	}
	return it
}

// resolveParty builds one party, per field: the flat shipment column wins,
// then the same field of a nested object in the field bag.
func resolveParty(flat Party, nested map[string]interface{}) Party {
	return Party{
		Name:         firstNonEmpty(flat.Name, lookupString(nested, partyNameKeys)),
		Contact:      firstNonEmpty(flat.Contact, lookupString(nested, partyContactKeys)),
		AddressLine1: firstNonEmpty(flat.AddressLine1, lookupString(nested, partyAddressKeys)),
		City:         firstNonEmpty(flat.City, lookupString(nested, partyCityKeys)),
		PostalCode:   firstNonEmpty(flat.PostalCode, lookupString(nested, partyPostalKeys)),
		Country:      firstNonEmpty(flat.Country, lookupString(nested, partyCountryKeys)),
		VATNumber:    firstNonEmpty(flat.VATNumber, lookupString(nested, partyVATKeys)),
		Phone:        firstNonEmpty(flat.Phone, lookupString(nested, partyPhoneKeys)),
	}
}

func nestedParty(bag map[string]interface{}, key string) map[string]interface{} {
	if len(bag) == 0 {
		return nil
	}
	if m, ok := bag[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}

func senderFlat(sh *types.Shipment) Party {
	return Party{
		Name:         sh.SenderName,
		Contact:      sh.SenderContact,
		AddressLine1: sh.SenderAddress,
		City:         sh.SenderCity,
		PostalCode:   sh.SenderPostalCode,
		Country:      sh.SenderCountry,
		VATNumber:    sh.SenderVAT,
		Phone:        sh.SenderPhone,
	}
}

func recipientFlat(sh *types.Shipment) Party {
	return Party{
		Name:         sh.RecipientName,
		Contact:      sh.RecipientContact,
		AddressLine1: sh.RecipientAddress,
		City:         sh.RecipientCity,
		PostalCode:   sh.RecipientPostalCode,
		Country:      sh.RecipientCountry,
		VATNumber:    sh.RecipientVAT,
		Phone:        sh.RecipientPhone,
	}
}

func billingFlat(sh *types.Shipment) Party {
	return Party{
		Name:         sh.BillingName,
		Contact:      sh.BillingContact,
		AddressLine1: sh.BillingAddress,
		City:         sh.BillingCity,
		PostalCode:   sh.BillingPostalCode,
		Country:      sh.BillingCountry,
		VATNumber:    sh.BillingVAT,
		Phone:        sh.BillingPhone,
	}
}
