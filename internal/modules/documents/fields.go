package documents

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The intake forms went through several generations, so every concept may
// arrive under a handful of key names. Each list is ordered by priority;
// the first present, non-empty value wins.
var (
	descriptionKeys  = []string{"description", "desc", "label", "wine", "name", "descrizione", "etichetta"}
	bottleCountKeys  = []string{"bottles", "bottle_count", "quantity", "qty", "units", "bottiglie", "numero_bottiglie"}
	bottleVolumeKeys = []string{"volume_per_bottle_l", "bottle_volume_l", "volume", "format_l", "formato", "litri"}
	unitPriceKeys    = []string{"unit_price", "price", "price_per_bottle", "prezzo", "prezzo_unitario"}
	alcoholKeys      = []string{"alcohol_percent", "alcohol", "abv", "gradazione", "vol_percent"}
	itemTypeKeys     = []string{"item_type", "type", "category", "tipo"}
	currencyKeys     = []string{"currency", "valuta"}

	packingListKeys = []string{"packing_list", "packingList", "packing", "lista_imballo", "packinglist"}

	partyNameKeys    = []string{"name", "company", "ragione_sociale"}
	partyContactKeys = []string{"contact", "contact_name", "referente"}
	partyAddressKeys = []string{"address", "address_line1", "line1", "street", "indirizzo"}
	partyCityKeys    = []string{"city", "town", "citta"}
	partyPostalKeys  = []string{"postal_code", "zip", "cap"}
	partyCountryKeys = []string{"country", "paese", "nazione"}
	partyVATKeys     = []string{"vat", "vat_number", "piva", "partita_iva", "tax_id"}
	partyPhoneKeys   = []string{"phone", "telephone", "telefono"}
)

// lookupRaw returns the first present, non-nil value for the ordered
// candidate keys. String values that trim to empty count as absent.
func lookupRaw(row map[string]interface{}, keys []string) (interface{}, bool) {
	if len(row) == 0 {
		return nil, false
	}
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func lookupString(row map[string]interface{}, keys []string) string {
	v, ok := lookupRaw(row, keys)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

func lookupFloat(row map[string]interface{}, keys []string) *float64 {
	v, ok := lookupRaw(row, keys)
	if !ok {
		return nil
	}
	return parseFloat(v)
}

func lookupInt(row map[string]interface{}, keys []string) *int {
	f := lookupFloat(row, keys)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// parseFloat converts the loose value shapes the forms produce. Decimal
// commas are accepted; anything unparseable resolves to nil, never an
// error, so one malformed field cannot abort a whole document.
func parseFloat(v interface{}) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case float32:
		f := float64(t)
		return &f
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return &f
		}
		return nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		// "1.234,56" style: dots are thousands separators.
		if strings.Contains(s, ",") {
			if strings.Contains(s, ".") {
				s = strings.ReplaceAll(s, ".", "")
			}
			s = strings.ReplaceAll(s, ",", ".")
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
		return nil
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
