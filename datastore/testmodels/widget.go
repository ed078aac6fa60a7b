package testmodels

import "github.com/go-openapi/strfmt"

// Widget is the primary fixture for store tests. CreatedAt is a unix
// timestamp so ordering tests stay independent of time formatting.
type Widget struct {

	// Unique identifier, generated by the database on insert.
	ID string `json:"id,omitempty"`

	// Lifecycle status, e.g. "active" or "inactive".
	Status string `json:"status,omitempty"`

	// Human-readable label.
	Label string `json:"label,omitempty"`

	// Creation time as a unix timestamp.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// Account exercises internal-field stripping and typed string fields.
type Account struct {

	// Unique identifier, generated by the database on insert.
	ID string `json:"id,omitempty"`

	// Contact email.
	// Format: email
	Email strfmt.Email `json:"email,omitempty"`

	// Display name.
	Name string `json:"name,omitempty"`

	// Internal revision marker; never written to the database.
	Rev string `json:"rev$,omitempty"`
}
