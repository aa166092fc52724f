package documents

import (
	"fmt"
	"strings"
)

// renderCommercial emits the commercial invoice. Real pricing only: each
// rendered line value is unitPrice x bottles when both are present, else
// the stored line total, else 0. The invoice total is the exact sum of the
// rendered line values, so the document is always self-consistent.
func renderCommercial(d DocData) string {
	var b strings.Builder
	b.WriteString(docHeader("Fattura Commerciale / Commercial Invoice", d))
	b.WriteString(partiesBlock(d, true))

	currency := strings.TrimSpace(d.Meta.Currency)
	if currency == "" {
		currency = "EUR"
	}

	b.WriteString(`<table class="items"><tr>` +
		`<th>#</th><th>Descrizione</th><th class="num">Bottiglie</th>` +
		`<th class="num">Vol. (L)</th><th class="num">Prezzo unit.</th>` +
		`<th class="num">Totale riga</th></tr>`)
	total := 0.0
	for i, it := range d.Items {
		lv := commercialLineValue(it)
		total += lv
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td class="num">%s</td>`+
			`<td class="num">%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
			i+1, esc(it.Description), fmtIntPtr(it.Bottles),
			fmtDecPtr(it.TotalVolumeL, 2), fmtMoneyPtr(it.UnitPrice), fmtMoney(lv))
	}
	b.WriteString(`</table>`)

	fmt.Fprintf(&b, `<div class="totals">Totale fattura: %s %s</div>`,
		fmtMoney(total), esc(currency))
	b.WriteString(summaryBlock(d))

	return documentShell("Fattura Commerciale "+d.Meta.DocNumber, []string{pageShell(1, 1, b.String())})
}

// commercialLineValue recomputes from unit price and quantity whenever both
// exist; the stored line total is only a fallback for items produced by
// other normalization paths. Each line is rounded once at render time so
// the printed lines sum exactly to the printed total.
func commercialLineValue(it Item) float64 {
	if it.UnitPrice != nil && it.Bottles != nil {
		return round2(*it.UnitPrice * float64(*it.Bottles))
	}
	if it.LineTotal != nil {
		return round2(*it.LineTotal)
	}
	return 0
}
