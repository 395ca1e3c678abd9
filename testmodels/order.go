package testmodels

import "github.com/go-openapi/strfmt"

type Order struct {

	// Tenant that owns the order.
	// Required: true
	TenantID *string `json:"tenantID"`

	// Unique identifier for the order.
	// Required: true
	OrderID *string `json:"orderID"`

	// Current fulfilment status.
	Status string `json:"status,omitempty"`

	// Order total in cents.
	Total int64 `json:"total,omitempty"`

	// Timestamp when the order was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`

	// Timestamp when the order was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty"`
}
