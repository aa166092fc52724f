package documents

import (
	"fmt"
	"strings"
)

// DocKind identifies one of the four supported document types.
type DocKind string

const (
	DocCommercialInvoice DocKind = "fattura_commerciale"
	DocProformaInvoice   DocKind = "fattura_proforma"
	DocTransportManifest DocKind = "ddt"
	DocExportDeclaration DocKind = "dle"
)

// UnsupportedDocTypeError reports a requested document type that matched
// neither the synonym table nor the substring fallback.
type UnsupportedDocTypeError struct {
	Requested string
}

func (e *UnsupportedDocTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %q", e.Requested)
}

var docTypeSynonyms = map[string]DocKind{
	"fattura_proforma": DocProformaInvoice,
	"proforma":         DocProformaInvoice,
	"proforma_invoice": DocProformaInvoice,

	"fattura_commerciale": DocCommercialInvoice,
	"commercial_invoice":  DocCommercialInvoice,
	"invoice_commerciale": DocCommercialInvoice,

	"ddt":                 DocTransportManifest,
	"documento_trasporto": DocTransportManifest,
	"ddt_italia":          DocTransportManifest,

	"dle":                                  DocExportDeclaration,
	"dichiarazione_libera_esportazione":    DocExportDeclaration,
	"dichiarazione_di_libera_esportazione": DocExportDeclaration,
	"libera_esportazione":                  DocExportDeclaration,
}

// ClassifyDocType maps a case-insensitive document-type identifier to one
// DocKind: exact synonym first, then substring fallback.
func ClassifyDocType(requested string) (DocKind, error) {
	key := strings.ToLower(strings.TrimSpace(requested))
	if kind, ok := docTypeSynonyms[key]; ok {
		return kind, nil
	}
	switch {
	case strings.Contains(key, "proforma"):
		return DocProformaInvoice, nil
	case strings.Contains(key, "commercial") || strings.Contains(key, "commerciale"):
		return DocCommercialInvoice, nil
	case strings.Contains(key, "ddt") || strings.Contains(key, "trasporto"):
		return DocTransportManifest, nil
	case strings.Contains(key, "dle") || strings.Contains(key, "esportazione"):
		return DocExportDeclaration, nil
	}
	return "", &UnsupportedDocTypeError{Requested: requested}
}

// Carrier is the export-declaration template variant.
type Carrier int

const (
	CarrierGeneric Carrier = iota
	CarrierUPS
	CarrierFedEx
	CarrierDHL
)

func (c Carrier) String() string {
	switch c {
	case CarrierUPS:
		return "UPS"
	case CarrierFedEx:
		return "FedEx"
	case CarrierDHL:
		return "DHL"
	}
	return "Generic"
}

// ClassifyCarrier selects the declaration template for a courier name.
// Ordered, case-insensitive substring match; total, with Generic as the
// catch-all.
func ClassifyCarrier(courier string) Carrier {
	c := strings.ToUpper(courier)
	switch {
	case strings.Contains(c, "UPS"):
		return CarrierUPS
	case strings.Contains(c, "FEDEX"):
		return CarrierFedEx
	case strings.Contains(c, "DHL"):
		return CarrierDHL
	}
	return CarrierGeneric
}
