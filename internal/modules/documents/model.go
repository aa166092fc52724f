package documents

import (
	"strings"
	"time"
)

// DocData is the canonical, renderer-agnostic representation of one
// shipment's document content. It is assembled fresh per request and never
// mutated afterwards: recomputing Totals from Items always reproduces the
// stored values.
type DocData struct {
	Meta      Meta
	Shipper   Party
	Consignee Party
	BillTo    Party
	Items     []Item
	Totals    Totals
	Summary   Summary
}

// Party is one of the three legal entities on a document: shipper,
// consignee or bill-to.
type Party struct {
	Name         string
	Contact      string
	AddressLine1 string
	City         string
	PostalCode   string
	Country      string
	VATNumber    string
	Phone        string
}

func (p Party) empty() bool {
	return p.Name == "" && p.Contact == "" && p.AddressLine1 == "" &&
		p.City == "" && p.PostalCode == "" && p.Country == "" &&
		p.VATNumber == "" && p.Phone == ""
}

// Item is one normalized goods line. Numeric fields stay nil when the raw
// input had nothing parseable; they are never fabricated.
type Item struct {
	Description      string
	Bottles          *int
	VolumePerBottleL *float64
	TotalVolumeL     *float64
	UnitPrice        *float64
	Currency         string
	LineTotal        *float64
	ItemType         string
	AlcoholPercent   *float64
}

// Totals is always derived from Items, never set independently.
type Totals struct {
	TotalBottles int
	TotalVolumeL *float64
	TotalValue   *float64
	Currency     string
}

type Meta struct {
	DocType      DocKind
	DocNumber    string
	DocDate      time.Time
	HumanID      string
	Courier      string
	TrackingCode string
	Incoterm     string
	Currency     string
}

type Summary struct {
	TotalPackages      int
	TotalGrossWeightKg *float64
	ContentSummary     string
	PickupDate         *time.Time
	Origin             string
}

// WineOrigin reports whether the shipment's origin tag marks it as wine
// freight, which switches the transport manifest to the 4-column layout.
func (s Summary) WineOrigin() bool {
	o := strings.ToLower(strings.TrimSpace(s.Origin))
	return strings.Contains(o, "wine") || strings.Contains(o, "vino") || strings.Contains(o, "cantina")
}
