package models

import "time"

// Provider is an organization offering one or more opportunities.
type Provider struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`

	// Contributor is the ID of the user who created the record. Required.
	Contributor int64 `json:"contributor"`

	// Trail is an opaque generated identifier, distinct from the primary key.
	Trail string `json:"trail"`

	URL  string `json:"url,omitempty"`
	Note string `json:"note,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ValidStatus reports whether Status holds a known value.
func (p Provider) ValidStatus() bool {
	return validStatus(p.Status)
}

func (p Provider) TableName() string {
	return "provider"
}

// ProviderUpdate describes a partial update (PATCH) of a provider.
// Nil fields are left untouched.
type ProviderUpdate struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
	URL    *string `json:"url"`
	Note   *string `json:"note"`
}
