package documents

import (
	"fmt"
	"time"

	"github.com/cantinadirect/shipping-backend/internal/pkg/errors"
	"github.com/cantinadirect/shipping-backend/internal/types"
)

// Observer receives notable fallback decisions made while normalizing a
// shipment. *logger.Logger satisfies it; tests inject their own.
type Observer interface {
	Info(msg string, keysAndValues ...interface{})
}

type nopObserver struct{}

func (nopObserver) Info(string, ...interface{}) {}

// Input is one synthesis request: an already-fetched shipment snapshot plus
// the per-call parameters. The engine performs no I/O of its own.
type Input struct {
	Shipment     *types.Shipment
	Packages     []types.Package
	PackingList  []types.PackingListRow
	DocType      string
	Courier      string
	TrackingCode string
}

// Engine synthesizes trade documents. It is stateless and safe for
// concurrent use.
type Engine struct {
	obs Observer
	now func() time.Time
}

func NewEngine(obs Observer) *Engine {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Engine{obs: obs, now: time.Now}
}

// Synthesize normalizes the snapshot, assembles the canonical model and
// renders the requested document type as one self-contained HTML string.
func (e *Engine) Synthesize(in Input) (string, error) {
	if in.Shipment == nil {
		return "", fmt.Errorf("synthesize: missing shipment snapshot: %w", errors.ErrInvalidArgument)
	}
	kind, err := ClassifyDocType(in.DocType)
	if err != nil {
		return "", err
	}
	data := e.Assemble(in, kind)
	return Render(kind, data), nil
}

// Render dispatches an assembled DocData to exactly one renderer. Pure:
// rendering the same DocData twice yields byte-identical output.
func Render(kind DocKind, d DocData) string {
	switch kind {
	case DocCommercialInvoice:
		return renderCommercial(d)
	case DocProformaInvoice:
		return renderProforma(d)
	case DocTransportManifest:
		return renderTransportManifest(d)
	case DocExportDeclaration:
		return renderExportDeclaration(d)
	}
	// ClassifyDocType is the only producer of DocKind values, so this is
	// unreachable through the public API.
	return ""
}
