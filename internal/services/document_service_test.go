package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantinadirect/shipping-backend/internal/modules/documents"
	"github.com/cantinadirect/shipping-backend/internal/pkg/errors"
	"github.com/cantinadirect/shipping-backend/internal/pkg/pointers"
	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
	"github.com/cantinadirect/shipping-backend/internal/types"
)

// fakeSource is an in-memory ShipmentSource for exercising the service
// without the fixture store.
type fakeSource struct {
	shipments   map[string]*types.Shipment
	packages    map[string][]types.Package
	packingErr  error
	packagesErr error
}

func (f *fakeSource) GetShipment(_ context.Context, id string) (*types.Shipment, error) {
	return f.shipments[id], nil
}

func (f *fakeSource) ListPackages(_ context.Context, shipmentID string) ([]types.Package, error) {
	if f.packagesErr != nil {
		return nil, f.packagesErr
	}
	return f.packages[shipmentID], nil
}

func (f *fakeSource) GetPackingList(_ context.Context, shipmentID string) ([]types.PackingListRow, error) {
	if f.packingErr != nil {
		return nil, f.packingErr
	}
	return nil, nil
}

func wineShipment() *types.Shipment {
	return &types.Shipment{
		ID:                 "ship-1",
		HumanID:            "SHP-2026-0042",
		Origin:             "wine_estate",
		Currency:           "EUR",
		ContentDescription: "Vino rosso in cartoni",
		TotalPackages:      2,
		SenderName:         "Cantina Alfa S.r.l.",
		SenderCity:         "Asti",
		SenderCountry:      "Italia",
		RecipientName:      "Import Beta GmbH",
		RecipientCity:      "Berlin",
		RecipientCountry:   "Germania",
	}
}

func newTestService(src ShipmentSource) DocumentService {
	return NewDocumentService(logger.NewNop(), src)
}

func TestGenerateDocumentEmptyID(t *testing.T) {
	svc := newTestService(&fakeSource{})
	_, err := svc.GenerateDocument(context.Background(), "  ", "ddt", "", "")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidArgument))
}

func TestGenerateDocumentNotFound(t *testing.T) {
	svc := newTestService(&fakeSource{shipments: map[string]*types.Shipment{}})
	_, err := svc.GenerateDocument(context.Background(), "missing", "ddt", "", "")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
}

func TestGenerateDocumentUnsupportedType(t *testing.T) {
	src := &fakeSource{shipments: map[string]*types.Shipment{"ship-1": wineShipment()}}
	svc := newTestService(src)
	_, err := svc.GenerateDocument(context.Background(), "ship-1", "certificate_of_origin", "", "")
	require.Error(t, err)

	var unsupported *documents.UnsupportedDocTypeError
	require.True(t, stderrors.As(err, &unsupported))
	assert.Equal(t, "certificate_of_origin", unsupported.Requested)
}

func TestGenerateDocumentEndToEnd(t *testing.T) {
	src := &fakeSource{
		shipments: map[string]*types.Shipment{"ship-1": wineShipment()},
		packages: map[string][]types.Package{
			"ship-1": {
				{ID: "p1", ShipmentID: "ship-1", WeightKg: pointers.Float64(12.4), Contents: "Barolo DOCG 6x0.75L"},
				{ID: "p2", ShipmentID: "ship-1", WeightKg: pointers.Float64(11.8), Contents: "Barbera 12x0.375L"},
			},
		},
	}
	svc := newTestService(src)

	doc, err := svc.GenerateDocument(context.Background(), "ship-1", "fattura commerciale", "UPS Express", "1Z999")
	require.NoError(t, err)
	assert.Equal(t, documents.DocCommercialInvoice, doc.DocType)
	assert.Equal(t, "SHP-2026-0042", doc.DocNumber)
	assert.Contains(t, doc.HTML, "Fattura Commerciale")
	// No packing list anywhere, so items come from the package contents.
	assert.Contains(t, doc.HTML, "Barolo DOCG 6x0.75L")
	assert.Contains(t, doc.HTML, "Barbera 12x0.375L")
}

func TestGenerateDocumentDegradedLookups(t *testing.T) {
	src := &fakeSource{
		shipments:   map[string]*types.Shipment{"ship-1": wineShipment()},
		packagesErr: fmt.Errorf("store offline"),
		packingErr:  fmt.Errorf("store offline"),
	}
	svc := newTestService(src)

	doc, err := svc.GenerateDocument(context.Background(), "ship-1", "ddt", "", "")
	require.NoError(t, err)
	// With every item source unavailable the shipment description carries the document.
	assert.Contains(t, doc.HTML, "Vino rosso in cartoni")
}

func TestGenerateAll(t *testing.T) {
	src := &fakeSource{shipments: map[string]*types.Shipment{"ship-1": wineShipment()}}
	svc := newTestService(src)

	docs, err := svc.GenerateAll(context.Background(), "ship-1", "DHL", "JD0123")
	require.NoError(t, err)
	require.Len(t, docs, 4)
	for _, kind := range []documents.DocKind{
		documents.DocCommercialInvoice,
		documents.DocProformaInvoice,
		documents.DocTransportManifest,
		documents.DocExportDeclaration,
	} {
		require.NotNil(t, docs[kind], "missing %s", kind)
		assert.Equal(t, kind, docs[kind].DocType)
		assert.NotEmpty(t, docs[kind].HTML)
	}
	assert.Contains(t, docs[documents.DocExportDeclaration].HTML, "DHL Express Italy")
	// The transport manifest repeats one page per declared package.
	assert.Equal(t, 2, strings.Count(docs[documents.DocTransportManifest].HTML, `<div class="page">`))
}

func TestPackagesCSV(t *testing.T) {
	src := &fakeSource{
		shipments: map[string]*types.Shipment{"ship-1": wineShipment()},
		packages: map[string][]types.Package{
			"ship-1": {{ID: "p1", ShipmentID: "ship-1", Contents: "Barolo"}},
		},
	}
	svc := newTestService(src)

	out, err := svc.PackagesCSV(context.Background(), "ship-1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "package_id;shipment_id;length_cm;width_cm;height_cm;weight_kg;contents", lines[0])
	assert.Equal(t, "p1;ship-1;;;;;Barolo", lines[1])
}
