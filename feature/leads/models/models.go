package models

import "time"

// Canonical lead status values. Imported files use a looser vocabulary that
// the mapper normalizes onto these.
const (
	StatusNew         = "new"
	StatusContacted   = "contacted"
	StatusQualified   = "qualified"
	StatusUnqualified = "unqualified"
	StatusCustomer    = "customer"
)

// Lead is a single imported contact record.
type Lead struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	Name    string `gorm:"column:name;size:255" json:"name"`
	Email   string `gorm:"column:email;size:255;index" json:"email,omitempty"`
	Phone   string `gorm:"column:phone;size:64" json:"phone,omitempty"`
	Address string `gorm:"column:address;size:512" json:"address,omitempty"`
	// Status holds one of the canonical Status* values.
	Status string `gorm:"column:status;size:32" json:"status"`
	// Source records where the lead came from (e.g. "webinar", "referral").
	Source string `gorm:"column:source;size:128" json:"source,omitempty"`
	// Value is the estimated deal value; nil when the upload carried none.
	Value *float64 `gorm:"column:deal_value" json:"value,omitempty"`
	Notes string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	// CompanyID links the lead to its resolved company, when one was named.
	CompanyID *uint `gorm:"column:company_id;index" json:"company_id,omitempty"`
	// OwnerID attributes the record to the importing actor; empty when the
	// identity provider reported no actor.
	OwnerID   string    `gorm:"column:owner_id;size:64" json:"owner_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Lead) TableName() string {
	return "leads"
}

// Company is the secondary entity leads reference by name.
type Company struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	Name    string `gorm:"column:name;size:255;index" json:"name"`
	Website string `gorm:"column:website;size:512" json:"website,omitempty"`
	// OwnerID attributes the company to the actor whose import created it.
	OwnerID   string    `gorm:"column:owner_id;size:64" json:"owner_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Company) TableName() string {
	return "companies"
}
