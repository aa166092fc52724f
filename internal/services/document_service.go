package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/cantinadirect/shipping-backend/internal/modules/documents"
	"github.com/cantinadirect/shipping-backend/internal/pkg/errors"
	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
	"github.com/cantinadirect/shipping-backend/internal/types"
)

// ShipmentSource is the external data-access collaborator: it hands the
// service already-fetched snapshots. Missing packages or packing lists are
// not errors, just absent data.
type ShipmentSource interface {
	GetShipment(ctx context.Context, id string) (*types.Shipment, error)
	ListPackages(ctx context.Context, shipmentID string) ([]types.Package, error)
	GetPackingList(ctx context.Context, shipmentID string) ([]types.PackingListRow, error)
}

// GeneratedDocument is one synthesized document plus enough metadata for
// the HTTP layer to serve it.
type GeneratedDocument struct {
	DocType   documents.DocKind
	DocNumber string
	HTML      string
}

type DocumentService interface {
	GenerateDocument(ctx context.Context, shipmentID, docType, courier, trackingCode string) (*GeneratedDocument, error)
	GenerateAll(ctx context.Context, shipmentID, courier, trackingCode string) (map[documents.DocKind]*GeneratedDocument, error)
	PackagesCSV(ctx context.Context, shipmentID string) (string, error)
}

type documentService struct {
	log    *logger.Logger
	source ShipmentSource
	engine *documents.Engine
}

func NewDocumentService(baseLog *logger.Logger, source ShipmentSource) DocumentService {
	serviceLog := baseLog.With("service", "DocumentService")
	return &documentService{
		log:    serviceLog,
		source: source,
		engine: documents.NewEngine(serviceLog),
	}
}

func (s *documentService) GenerateDocument(ctx context.Context, shipmentID, docType, courier, trackingCode string) (*GeneratedDocument, error) {
	ctx, span := otel.Tracer("services.document").Start(ctx, "GenerateDocument")
	defer span.End()
	span.SetAttributes(
		attribute.String("shipment_id", shipmentID),
		attribute.String("doc_type", docType),
	)

	sh, packages, packing, err := s.fetch(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	kind, err := documents.ClassifyDocType(docType)
	if err != nil {
		return nil, err
	}
	html, err := s.engine.Synthesize(documents.Input{
		Shipment:     sh,
		Packages:     packages,
		PackingList:  packing,
		DocType:      string(kind),
		Courier:      courier,
		TrackingCode: trackingCode,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("document generated", "shipment_id", shipmentID, "doc_type", string(kind))
	return &GeneratedDocument{
		DocType:   kind,
		DocNumber: sh.HumanID,
		HTML:      html,
	}, nil
}

// GenerateAll renders all four document types for one shipment. The engine
// is pure, so the renders fan out concurrently over a single snapshot.
func (s *documentService) GenerateAll(ctx context.Context, shipmentID, courier, trackingCode string) (map[documents.DocKind]*GeneratedDocument, error) {
	sh, packages, packing, err := s.fetch(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	kinds := []documents.DocKind{
		documents.DocCommercialInvoice,
		documents.DocProformaInvoice,
		documents.DocTransportManifest,
		documents.DocExportDeclaration,
	}
	out := make(map[documents.DocKind]*GeneratedDocument, len(kinds))
	g, _ := errgroup.WithContext(ctx)
	results := make([]*GeneratedDocument, len(kinds))
	for i, kind := range kinds {
		g.Go(func() error {
			html, err := s.engine.Synthesize(documents.Input{
				Shipment:     sh,
				Packages:     packages,
				PackingList:  packing,
				DocType:      string(kind),
				Courier:      courier,
				TrackingCode: trackingCode,
			})
			if err != nil {
				return fmt.Errorf("render %s: %w", kind, err)
			}
			results[i] = &GeneratedDocument{DocType: kind, DocNumber: sh.HumanID, HTML: html}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, kind := range kinds {
		out[kind] = results[i]
	}
	return out, nil
}

func (s *documentService) PackagesCSV(ctx context.Context, shipmentID string) (string, error) {
	sh, packages, _, err := s.fetch(ctx, shipmentID)
	if err != nil {
		return "", err
	}
	csv, err := documents.PackagesCSV(packages)
	if err != nil {
		return "", fmt.Errorf("export packages for %s: %w", sh.HumanID, err)
	}
	return csv, nil
}

// fetch validates the identifier and loads the snapshot. Package and
// packing-list lookups degrade gracefully: their absence is logged, never
// surfaced as a failure.
func (s *documentService) fetch(ctx context.Context, shipmentID string) (*types.Shipment, []types.Package, []types.PackingListRow, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, nil, nil, fmt.Errorf("shipment identifier required: %w", errors.ErrInvalidArgument)
	}
	sh, err := s.source.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load shipment %s: %w", shipmentID, err)
	}
	if sh == nil {
		return nil, nil, nil, fmt.Errorf("shipment %s: %w", shipmentID, errors.ErrNotFound)
	}

	packages, err := s.source.ListPackages(ctx, sh.ID)
	if err != nil {
		s.log.Warn("package lookup failed, continuing without packages",
			"shipment_id", shipmentID, "error", err)
		packages = nil
	}
	packing, err := s.source.GetPackingList(ctx, sh.ID)
	if err != nil {
		s.log.Warn("packing list lookup failed, continuing without packing list",
			"shipment_id", shipmentID, "error", err)
		packing = nil
	}
	return sh, packages, packing, nil
}
