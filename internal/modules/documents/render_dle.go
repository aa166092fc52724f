package documents

import (
	"fmt"
	"strings"
)

// renderExportDeclaration emits the DLE on one of four hard-coded legal
// template bodies, selected once from the carrier name. Identical carrier
// strings always select the identical template.
func renderExportDeclaration(d DocData) string {
	var body string
	switch ClassifyCarrier(d.Meta.Courier) {
	case CarrierUPS:
		body = dleUPS(d)
	case CarrierFedEx:
		body = dleFedEx(d)
	case CarrierDHL:
		body = dleDHL(d)
	default:
		body = dleGeneric(d)
	}
	return documentShell("DLE "+d.Meta.DocNumber, []string{pageShell(1, 1, body)})
}

func dleHeader(title string, d DocData) string {
	var b strings.Builder
	b.WriteString(docHeader(title, d))
	b.WriteString(`<div class="parties">`)
	b.WriteString(partyBlock("Esportatore / Exporter", d.Shipper))
	b.WriteString(partyBlock("Destinatario / Consignee", d.Consignee))
	b.WriteString(`</div>`)
	return b.String()
}

func dleSignature(d DocData) string {
	return fmt.Sprintf(`<div class="signature">Luogo e data: %s, %s`+
		`<br/><br/>Timbro e firma dell&#39;esportatore: _______________________</div>`,
		esc(orPlaceholder(d.Shipper.City)), d.Meta.DocDate.Format("02/01/2006"))
}

func dleUPS(d DocData) string {
	var b strings.Builder
	b.WriteString(dleHeader("Dichiarazione di Libera Esportazione", d))
	b.WriteString(`<div class="legal">Spett.le UPS Italia S.r.l.
Via Fantoli 15/2
20138 Milano (MI)

Con la presente il sottoscritto esportatore dichiara sotto la propria responsabilit&agrave; che le merci oggetto della spedizione sopra identificata:
1. non rientrano tra i prodotti e le tecnologie a duplice uso di cui al Regolamento (UE) 2021/821 e successive modifiche;
2. non sono comprese negli elenchi di cui al Regolamento (CE) 428/2009 previgente, n&eacute; in alcun elenco nazionale di materiali di armamento (L. 185/1990);
3. non sono soggette a misure restrittive o embarghi adottati dall&#39;Unione Europea o dalle Nazioni Unite nei confronti del paese di destinazione;
4. non richiedono autorizzazione all&#39;esportazione ai sensi della normativa vigente.

L&#39;esportatore si impegna a fornire, su richiesta delle autorit&agrave; doganali o del vettore, ogni ulteriore documentazione necessaria.</div>`)
	b.WriteString(dleSignature(d))
	return b.String()
}

func dleFedEx(d DocData) string {
	var b strings.Builder
	b.WriteString(dleHeader("Dichiarazione di Libera Esportazione / Free Export Declaration", d))
	b.WriteString(`<div class="legal">The exporter of the products covered by this document declares that, except where otherwise clearly indicated, these products are of EU preferential origin.

L&#39;esportatore dichiara inoltre che le merci:
- non sono beni a duplice uso ai sensi del Regolamento (UE) 2021/821;
- non sono destinate, direttamente o indirettamente, a soggetti o paesi sottoposti a misure restrittive o sanzioni dell&#39;Unione Europea, degli Stati Uniti o delle Nazioni Unite;
- non richiedono licenza di esportazione.

Cumulation applied: [ ] yes (country) [X] no cumulation.</div>`)
	b.WriteString(dleSignature(d))
	return b.String()
}

func dleDHL(d DocData) string {
	var b strings.Builder
	b.WriteString(dleHeader("Dichiarazione di Libera Esportazione", d))
	b.WriteString(`<div class="legal">Spett.le DHL Express Italy S.r.l.

Si dichiara che la merce relativa alla spedizione in oggetto &egrave; di libera esportazione, non &egrave; soggetta ad autorizzazioni o licenze e non rientra in alcun elenco di beni a duplice uso o materiali di armamento.</div>`)
	b.WriteString(dleSignature(d))
	return b.String()
}

func dleGeneric(d DocData) string {
	var b strings.Builder
	title := "Dichiarazione di Libera Esportazione"
	if strings.TrimSpace(d.Meta.Courier) != "" {
		// Catch-all template: the courier name goes into the header verbatim.
		title = title + " - " + d.Meta.Courier
	}
	b.WriteString(dleHeader(title, d))
	b.WriteString(`<div class="legal">Il sottoscritto esportatore dichiara, sotto la propria responsabilit&agrave;, che le merci oggetto della presente spedizione sono di libera esportazione ai sensi della normativa doganale vigente, non sono soggette a restrizioni, autorizzazioni o licenze e non rientrano tra i beni a duplice uso.</div>`)
	b.WriteString(dleSignature(d))
	return b.String()
}
