package documents

import (
	"fmt"
	"strings"
)

// renderTransportManifest emits the DDT: one physical page per declared
// package, never fewer than one. Pages repeat the identical body and differ
// only by the page indicator. The item-table layout is a whole-document
// variant: wine-origin shipments get the 4-column table with bottle counts
// and alcohol grade, everything else the 2-column one.
func renderTransportManifest(d DocData) string {
	pages := d.Summary.TotalPackages
	if pages < 1 {
		pages = 1
	}

	body := ddtBody(d, d.Summary.WineOrigin())
	out := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		out = append(out, pageShell(i, pages, body))
	}
	return documentShell("DDT "+d.Meta.DocNumber, out)
}

func ddtBody(d DocData, wine bool) string {
	var b strings.Builder
	b.WriteString(docHeader("Documento di Trasporto (DDT)", d))
	b.WriteString(partiesBlock(d, false))

	if wine {
		b.WriteString(`<table class="items"><tr>` +
			`<th>#</th><th>Descrizione</th><th class="num">Bottiglie</th>` +
			`<th class="num">Vol. %</th></tr>`)
		for i, it := range d.Items {
			fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
				i+1, esc(it.Description), fmtIntPtr(it.Bottles), fmtDecPtr(it.AlcoholPercent, 1))
		}
		b.WriteString(`</table>`)
	} else {
		b.WriteString(`<table class="items"><tr><th>#</th><th>Descrizione</th></tr>`)
		for i, it := range d.Items {
			fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td></tr>`, i+1, esc(it.Description))
		}
		b.WriteString(`</table>`)
	}

	b.WriteString(summaryBlock(d))
	b.WriteString(`<div class="signature">Firma del vettore: _______________________` +
		`<br/><br/>Firma del destinatario: _______________________</div>`)
	return b.String()
}
