package documents

import (
	"fmt"
	"strings"
)

// proformaUnitValue is the fixed nominal per-unit value used on the customs
// proforma. The real commercial price must never appear on this document.
const proformaUnitValue = 0.10

// renderProforma emits the customs proforma invoice: every item is revalued
// at the nominal unit value, quantity defaulting to 1 for non-bottle goods.
func renderProforma(d DocData) string {
	var b strings.Builder
	b.WriteString(docHeader("Fattura Proforma / Proforma Invoice", d))
	b.WriteString(partiesBlock(d, false))

	currency := strings.TrimSpace(d.Meta.Currency)
	if currency == "" {
		currency = "EUR"
	}

	b.WriteString(`<table class="items"><tr>` +
		`<th>#</th><th>Descrizione</th><th class="num">Quantit&agrave;</th>` +
		`<th class="num">Valore unit.</th><th class="num">Valore riga</th></tr>`)
	totalUnits := 0
	for i, it := range d.Items {
		qty := 1
		if it.Bottles != nil {
			qty = *it.Bottles
		}
		totalUnits += qty
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td class="num">%d</td>`+
			`<td class="num">%s</td><td class="num">%s</td></tr>`,
			i+1, esc(it.Description), qty,
			fmtMoney(proformaUnitValue), fmtMoney(round2(proformaUnitValue*float64(qty))))
	}
	b.WriteString(`</table>`)

	fmt.Fprintf(&b, `<div class="totals">Valore totale dichiarato: %s %s</div>`,
		fmtMoney(round2(proformaUnitValue*float64(totalUnits))), esc(currency))
	b.WriteString(`<div class="note">Valore dichiarato ai soli fini doganali. ` +
		`Nessun valore commerciale / Value declared for customs purposes only. No commercial value.</div>`)
	b.WriteString(summaryBlock(d))

	return documentShell("Fattura Proforma "+d.Meta.DocNumber, []string{pageShell(1, 1, b.String())})
}
