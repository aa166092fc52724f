package fixtures

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
	"github.com/cantinadirect/shipping-backend/internal/types"
)

// Store is an in-memory ShipmentSource seeded from a YAML file. It stands
// in for the data-access layer: the engine only ever sees already-fetched
// snapshots, so where they come from is the caller's business.
type Store struct {
	log          *logger.Logger
	shipments    map[string]*types.Shipment
	packages     map[string][]types.Package
	packingLists map[string][]types.PackingListRow
}

type file struct {
	Shipments    []types.Shipment                  `yaml:"shipments"`
	Packages     []types.Package                   `yaml:"packages"`
	PackingLists map[string][]types.PackingListRow `yaml:"packing_lists"`
}

// Load reads the fixture file at path and indexes shipments by both their
// internal ID and their human-readable identifier.
func Load(path string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	s := New(f.Shipments, f.Packages, f.PackingLists, log)
	log.Info("shipment fixtures loaded", "path", path, "shipments", len(f.Shipments))
	return s, nil
}

func New(shipments []types.Shipment, packages []types.Package, packingLists map[string][]types.PackingListRow, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Store{
		log:          log.With("component", "fixtures"),
		shipments:    make(map[string]*types.Shipment, len(shipments)*2),
		packages:     make(map[string][]types.Package),
		packingLists: packingLists,
	}
	if s.packingLists == nil {
		s.packingLists = map[string][]types.PackingListRow{}
	}
	for i := range shipments {
		sh := &shipments[i]
		if sh.ID != "" {
			s.shipments[sh.ID] = sh
		}
		if sh.HumanID != "" {
			s.shipments[sh.HumanID] = sh
		}
	}
	for _, p := range packages {
		s.packages[p.ShipmentID] = append(s.packages[p.ShipmentID], p)
	}
	return s
}

func (s *Store) GetShipment(_ context.Context, id string) (*types.Shipment, error) {
	return s.shipments[id], nil
}

func (s *Store) ListPackages(_ context.Context, shipmentID string) ([]types.Package, error) {
	return s.packages[shipmentID], nil
}

func (s *Store) GetPackingList(_ context.Context, shipmentID string) ([]types.PackingListRow, error) {
	return s.packingLists[shipmentID], nil
}
