package domain

import "time"

// AnonymousActor is recorded in audit fields when a request carries no authenticated user.
const AnonymousActor = "anonymous"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps a freshly created record.
func NewAuditFields(now time.Time, actor string) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
}

// Touch returns a copy of the audit fields marked as updated by actor at now.
func (a AuditFields) Touch(now time.Time, actor string) AuditFields {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actor
	return a
}

// Record is implemented by every entity exposed through a resource collection.
type Record interface {
	GetID() string
	GetAuditFields() AuditFields
}

// DateLayout is the wire format used for calendar dates.
const DateLayout = "2006-01-02"
