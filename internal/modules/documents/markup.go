package documents

import (
	"fmt"
	"html"
	"strings"
)

// Free-text business fields (descriptions, party names, courier names) end
// up inside markup, so everything dynamic goes through esc.
func esc(s string) string {
	return html.EscapeString(s)
}

const placeholder = "-"

func fmtMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func fmtMoneyPtr(v *float64) string {
	if v == nil {
		return placeholder
	}
	return fmtMoney(*v)
}

func fmtDecPtr(v *float64, prec int) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%.*f", prec, *v)
}

func fmtIntPtr(v *int) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%d", *v)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// partyBlock renders one party address block in a fixed line order: name,
// street, postal+city, country, tax ID, phone, contact. Absent lines are
// omitted entirely, never rendered blank.
func partyBlock(title string, p Party) string {
	var b strings.Builder
	b.WriteString(`<div class="party">`)
	fmt.Fprintf(&b, `<div class="party-title">%s</div>`, esc(title))
	writeLine := func(s string) {
		if strings.TrimSpace(s) != "" {
			fmt.Fprintf(&b, `<div>%s</div>`, esc(s))
		}
	}
	writeLine(p.Name)
	writeLine(p.AddressLine1)
	writeLine(strings.TrimSpace(p.PostalCode + " " + p.City))
	writeLine(p.Country)
	if p.VATNumber != "" {
		writeLine("P.IVA/VAT: " + p.VATNumber)
	}
	if p.Phone != "" {
		writeLine("Tel: " + p.Phone)
	}
	if p.Contact != "" {
		writeLine("Rif: " + p.Contact)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// pageShell wraps one physical page. The "N di M" indicator appears only
// on multi-page documents.
func pageShell(index, total int, body string) string {
	var b strings.Builder
	b.WriteString(`<div class="page">`)
	if total > 1 {
		fmt.Fprintf(&b, `<div class="page-indicator">Pagina %d di %d</div>`, index, total)
	}
	b.WriteString(body)
	b.WriteString(`</div>`)
	return b.String()
}

// documentShell wraps the page blocks into one self-contained HTML
// document ready for print or PDF conversion downstream.
func documentShell(title string, pages []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="it"><head><meta charset="utf-8"/>`)
	fmt.Fprintf(&b, `<title>%s</title>`, esc(title))
	b.WriteString(`<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #111; margin: 0; }
.page { padding: 24px 32px; page-break-after: always; }
.page:last-child { page-break-after: auto; }
.page-indicator { text-align: right; font-size: 10px; color: #555; }
h1 { font-size: 18px; margin: 0 0 2px 0; text-transform: uppercase; }
.doc-meta { margin: 8px 0 16px 0; }
.doc-meta td { padding: 1px 12px 1px 0; }
.parties { display: flex; gap: 24px; margin-bottom: 16px; }
.party { flex: 1; border: 1px solid #999; padding: 8px; }
.party-title { font-weight: bold; margin-bottom: 4px; text-transform: uppercase; font-size: 10px; }
table.items { width: 100%; border-collapse: collapse; margin-bottom: 12px; }
table.items th, table.items td { border: 1px solid #999; padding: 4px 6px; text-align: left; }
table.items th { background: #eee; font-size: 10px; text-transform: uppercase; }
table.items td.num, table.items th.num { text-align: right; }
.totals { text-align: right; font-weight: bold; margin: 8px 0; }
.summary { margin-top: 12px; font-size: 11px; color: #333; }
.legal { margin-top: 16px; white-space: pre-line; }
.signature { margin-top: 36px; }
.note { margin-top: 10px; font-style: italic; }
</style></head><body>`)
	for _, p := range pages {
		b.WriteString(p)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

// docHeader is the shared header block: document title, number, date and
// the per-call shipping metadata.
func docHeader(title string, d DocData) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h1>%s</h1>`, esc(title))
	b.WriteString(`<table class="doc-meta">`)
	fmt.Fprintf(&b, `<tr><td>Documento n.</td><td>%s</td></tr>`, esc(d.Meta.DocNumber))
	fmt.Fprintf(&b, `<tr><td>Data</td><td>%s</td></tr>`, d.Meta.DocDate.Format("02/01/2006"))
	fmt.Fprintf(&b, `<tr><td>Corriere</td><td>%s</td></tr>`, esc(orPlaceholder(d.Meta.Courier)))
	fmt.Fprintf(&b, `<tr><td>Tracking</td><td>%s</td></tr>`, esc(orPlaceholder(d.Meta.TrackingCode)))
	fmt.Fprintf(&b, `<tr><td>Incoterm</td><td>%s</td></tr>`, esc(orPlaceholder(d.Meta.Incoterm)))
	b.WriteString(`</table>`)
	return b.String()
}

func partiesBlock(d DocData, includeBillTo bool) string {
	var b strings.Builder
	b.WriteString(`<div class="parties">`)
	b.WriteString(partyBlock("Mittente / Shipper", d.Shipper))
	b.WriteString(partyBlock("Destinatario / Consignee", d.Consignee))
	if includeBillTo {
		b.WriteString(partyBlock("Fatturare a / Bill to", d.BillTo))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func summaryBlock(d DocData) string {
	var b strings.Builder
	b.WriteString(`<div class="summary">`)
	fmt.Fprintf(&b, `<div>Colli: %d</div>`, d.Summary.TotalPackages)
	if d.Summary.TotalGrossWeightKg != nil {
		fmt.Fprintf(&b, `<div>Peso lordo: %s kg</div>`, fmtDecPtr(d.Summary.TotalGrossWeightKg, 2))
	}
	if strings.TrimSpace(d.Summary.ContentSummary) != "" {
		fmt.Fprintf(&b, `<div>Contenuto: %s</div>`, esc(d.Summary.ContentSummary))
	}
	b.WriteString(`</div>`)
	return b.String()
}
