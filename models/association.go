package models

// Relationship kinds a user may have with an opportunity.
const (
	AssociationAssociated = "associated"
	AssociationApplied    = "applied"
	AssociationEarned     = "earned"
)

// Association links a user to an opportunity with a single relationship type.
// The (OpportunityID, UserID) pair is the primary key, so a user holds at
// most one relationship per opportunity.
type Association struct {
	OpportunityID int64  `json:"opportunity_id"`
	UserID        int64  `json:"user_id"`
	Type          string `json:"type"`
}

// ValidType reports whether Type holds a known relationship kind.
func (a Association) ValidType() bool {
	return a.Type == AssociationAssociated || a.Type == AssociationApplied || a.Type == AssociationEarned
}

func (a Association) TableName() string {
	return "association"
}
