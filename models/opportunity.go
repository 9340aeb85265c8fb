package models

import "time"

// Record statuses shared by Opportunity and Provider. Records are never
// hard-deleted through normal flows; they move to "archive" or "deleted".
const (
	StatusCurrent = "current"
	StatusArchive = "archive"
	StatusDeleted = "deleted"
)

// Time units an opportunity amount may be granted per.
const (
	AmountPerOnetime  = "onetime"
	AmountPerDegree   = "degree"
	AmountPerYear     = "year"
	AmountPerSemester = "semester"
	AmountPerSeason   = "season"
	AmountPerMonth    = "month"
	AmountPerWeek     = "week"
	AmountPerDay      = "day"
	AmountPerHour     = "hour"
	AmountPerOther    = "other"
)

// Opportunity is a scholarship or grant contributed by a user.
type Opportunity struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`

	// Contributor is the ID of the user who created the record. Required.
	Contributor int64 `json:"contributor"`

	// Trail is an opaque generated identifier, distinct from the primary key.
	Trail string `json:"trail"`

	URL string `json:"url,omitempty"`

	// Amount is the monetary value of the opportunity; nil when unknown.
	Amount *float64 `json:"amount"`

	// AmountPer is the time unit Amount applies to, one of the AmountPer
	// constants.
	AmountPer string `json:"amount_per"`

	Note string `json:"note,omitempty"`

	// Providers holds the linked provider records when the caller asked for
	// them; omitted otherwise.
	Providers []Provider `json:"providers,omitempty"`

	// Associations holds the user relationships attached to the opportunity
	// when loaded; omitted otherwise.
	Associations []Association `json:"associations,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ValidStatus reports whether Status holds a known value.
func (o Opportunity) ValidStatus() bool {
	return validStatus(o.Status)
}

// ValidAmountPer reports whether AmountPer holds a known time unit.
func (o Opportunity) ValidAmountPer() bool {
	switch o.AmountPer {
	case AmountPerOnetime, AmountPerDegree, AmountPerYear, AmountPerSemester,
		AmountPerSeason, AmountPerMonth, AmountPerWeek, AmountPerDay,
		AmountPerHour, AmountPerOther:
		return true
	}
	return false
}

func (o Opportunity) TableName() string {
	return "opportunity"
}

func validStatus(status string) bool {
	return status == StatusCurrent || status == StatusArchive || status == StatusDeleted
}

// OpportunityUpdate describes a partial update (PATCH) of an opportunity.
// Nil fields are left untouched.
//
// A JSON null decodes into a nil pointer, the same as an absent key, so a
// PATCH cannot reset a nullable column such as Amount back to NULL. Sending
// an explicit zero is the closest a caller can get.
type OpportunityUpdate struct {
	Name      *string  `json:"name"`
	Status    *string  `json:"status"`
	URL       *string  `json:"url"`
	Amount    *float64 `json:"amount"`
	AmountPer *string  `json:"amount_per"`
	Note      *string  `json:"note"`
}
