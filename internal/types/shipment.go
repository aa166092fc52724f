package types

import (
	"time"

	"gorm.io/datatypes"
)

// Shipment is the snapshot shape handed to the document engine by the data
// access layer. Party data lives twice: in the flat columns below and,
// for older records, inside the free-form Fields bag. The engine resolves
// per field, flat column first.
type Shipment struct {
	ID      string `json:"id" yaml:"id"`
	HumanID string `json:"human_id" yaml:"human_id"`
	Status  string `json:"status" yaml:"status"`

	// Origin tag of the goods, e.g. "wine_estate" or "general". Drives the
	// DDT column layout.
	Origin             string `json:"origin" yaml:"origin"`
	ContentDescription string `json:"content_description" yaml:"content_description"`
	Incoterm           string `json:"incoterm" yaml:"incoterm"`
	Currency           string `json:"currency" yaml:"currency"`

	TotalPackages      int        `json:"total_packages" yaml:"total_packages"`
	TotalGrossWeightKg *float64   `json:"total_gross_weight_kg,omitempty" yaml:"total_gross_weight_kg,omitempty"`
	PickupDate         *time.Time `json:"pickup_date,omitempty" yaml:"pickup_date,omitempty"`

	SenderName       string `json:"sender_name" yaml:"sender_name"`
	SenderContact    string `json:"sender_contact" yaml:"sender_contact"`
	SenderAddress    string `json:"sender_address" yaml:"sender_address"`
	SenderCity       string `json:"sender_city" yaml:"sender_city"`
	SenderPostalCode string `json:"sender_postal_code" yaml:"sender_postal_code"`
	SenderCountry    string `json:"sender_country" yaml:"sender_country"`
	SenderVAT        string `json:"sender_vat" yaml:"sender_vat"`
	SenderPhone      string `json:"sender_phone" yaml:"sender_phone"`

	RecipientName       string `json:"recipient_name" yaml:"recipient_name"`
	RecipientContact    string `json:"recipient_contact" yaml:"recipient_contact"`
	RecipientAddress    string `json:"recipient_address" yaml:"recipient_address"`
	RecipientCity       string `json:"recipient_city" yaml:"recipient_city"`
	RecipientPostalCode string `json:"recipient_postal_code" yaml:"recipient_postal_code"`
	RecipientCountry    string `json:"recipient_country" yaml:"recipient_country"`
	RecipientVAT        string `json:"recipient_vat" yaml:"recipient_vat"`
	RecipientPhone      string `json:"recipient_phone" yaml:"recipient_phone"`

	BillingName       string `json:"billing_name" yaml:"billing_name"`
	BillingContact    string `json:"billing_contact" yaml:"billing_contact"`
	BillingAddress    string `json:"billing_address" yaml:"billing_address"`
	BillingCity       string `json:"billing_city" yaml:"billing_city"`
	BillingPostalCode string `json:"billing_postal_code" yaml:"billing_postal_code"`
	BillingCountry    string `json:"billing_country" yaml:"billing_country"`
	BillingVAT        string `json:"billing_vat" yaml:"billing_vat"`
	BillingPhone      string `json:"billing_phone" yaml:"billing_phone"`

	// Fields is the free-form bag carried over from the intake forms. It may
	// hold nested party objects ("sender", "recipient", "billing") and an
	// embedded packing list under a handful of historical key names.
	Fields datatypes.JSONMap `json:"fields,omitempty" yaml:"fields,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
