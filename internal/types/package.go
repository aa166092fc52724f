package types

// Package is one physical parcel or pallet belonging to a shipment.
type Package struct {
	ID         string   `json:"id" yaml:"id"`
	ShipmentID string   `json:"shipment_id" yaml:"shipment_id"`
	LengthCm   *float64 `json:"length_cm,omitempty" yaml:"length_cm,omitempty"`
	WidthCm    *float64 `json:"width_cm,omitempty" yaml:"width_cm,omitempty"`
	HeightCm   *float64 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	WeightKg   *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	Contents   string   `json:"contents" yaml:"contents"`
}

// PackingListRow is one raw line of a packing list as it arrives from the
// intake forms: loosely keyed, with several historical names per concept.
type PackingListRow = map[string]interface{}
