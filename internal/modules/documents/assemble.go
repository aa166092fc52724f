package documents

import (
	"math"
	"time"
)

// Assemble combines the normalized entities into one immutable DocData.
func (e *Engine) Assemble(in Input, kind DocKind) DocData {
	sh := in.Shipment
	now := e.now()

	items := e.resolveItems(sh, in.Packages, in.PackingList)

	shipper := resolveParty(senderFlat(sh), nestedParty(sh.Fields, "sender"))
	consignee := resolveParty(recipientFlat(sh), nestedParty(sh.Fields, "recipient"))
	billTo := resolveParty(billingFlat(sh), nestedParty(sh.Fields, "billing"))
	if billTo.empty() {
		e.obs.Info("billing party absent, defaulting to consignee", "shipment", sh.HumanID)
		billTo = consignee
	}

	return DocData{
		Meta: Meta{
			DocType:      kind,
			DocNumber:    docNumber(sh.HumanID, now),
			DocDate:      docDate(sh.PickupDate, now),
			HumanID:      sh.HumanID,
			Courier:      in.Courier,
			TrackingCode: in.TrackingCode,
			Incoterm:     sh.Incoterm,
			Currency:     sh.Currency,
		},
		Shipper:   shipper,
		Consignee: consignee,
		BillTo:    billTo,
		Items:     items,
		Totals:    computeTotals(items, sh.Currency),
		Summary: Summary{
			TotalPackages:      sh.TotalPackages,
			TotalGrossWeightKg: sh.TotalGrossWeightKg,
			ContentSummary:     sh.ContentDescription,
			PickupDate:         sh.PickupDate,
			Origin:             sh.Origin,
		},
	}
}

func docNumber(humanID string, now time.Time) string {
	if humanID != "" {
		return humanID
	}
	return "DOC-" + now.Format("20060102150405")
}

// docDate is a calendar date: pickup date when present, else today.
func docDate(pickup *time.Time, now time.Time) time.Time {
	d := now
	if pickup != nil {
		d = *pickup
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// computeTotals derives the aggregate totals from the item list. Rounding
// is half-up and applied exactly once, on the final sums.
func computeTotals(items []Item, currency string) Totals {
	bottles := 0
	var volume, value float64
	for _, it := range items {
		if it.Bottles != nil {
			bottles += *it.Bottles
		}
		switch {
		case it.TotalVolumeL != nil:
			volume += *it.TotalVolumeL
		case it.Bottles != nil && it.VolumePerBottleL != nil:
			volume += float64(*it.Bottles) * *it.VolumePerBottleL
		}
		if it.LineTotal != nil {
			value += *it.LineTotal
		}
	}
	t := Totals{TotalBottles: bottles, Currency: currency}
	if volume != 0 {
		v := round2(volume)
		t.TotalVolumeL = &v
	}
	if value != 0 {
		v := round2(value)
		t.TotalValue = &v
	}
	return t
}

// round2 rounds half-up to 2 decimals. Monetary and volume figures here
// are non-negative, so floor(x*100+0.5) is half-up; the epsilon absorbs
// binary representation error on decimal halves like 1.005.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5+1e-9) / 100
}
