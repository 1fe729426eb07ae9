package entity

import "time"

// Audit carries the creation/modification metadata shared by all persisted
// entities. CreatedBy and ModifiedBy hold the user id of the acting principal.
type Audit struct {
	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

// NewAudit returns audit metadata for a freshly created entity,
// with both creation and modification fields set to now/actor.
func NewAudit(actor string, now time.Time) Audit {
	return Audit{
		CreatedAt:  now,
		CreatedBy:  actor,
		ModifiedAt: now,
		ModifiedBy: actor,
	}
}

// Touch updates the modification fields after a mutation.
func (a *Audit) Touch(actor string, now time.Time) {
	a.ModifiedAt = now
	a.ModifiedBy = actor
}
