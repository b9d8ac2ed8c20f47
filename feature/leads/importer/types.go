package importer

import (
	"context"
	"fmt"

	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"
)

// Store is the persistence surface the pipeline needs. It is satisfied by
// the gorm-backed store in the leads feature and by in-memory fakes in
// tests; the pipeline never touches a database handle directly.
type Store interface {
	// InsertLeads writes a batch of leads in a single call.
	InsertLeads(ctx context.Context, leads []models.Lead) error
	// FindLeadByEmail returns the lead with the exact email, or nil.
	FindLeadByEmail(ctx context.Context, email string) (*models.Lead, error)
	// FindLeadByNameAndCompany returns the lead matching both name and
	// company id, or nil.
	FindLeadByNameAndCompany(ctx context.Context, name string, companyID uint) (*models.Lead, error)
	// FindCompanyByName returns the company whose name matches
	// case-insensitively, or nil.
	FindCompanyByName(ctx context.Context, name string) (*models.Company, error)
	// CreateCompany persists a new company and fills in its ID.
	CreateCompany(ctx context.Context, company *models.Company) error
}

// Candidate is one mapped, validated row on its way into storage. Fields
// absent from the upload stay zero; Value uses a pointer so "no value" and
// "zero value" stay distinct.
type Candidate struct {
	// Row is the 1-based source row number, header excluded.
	Row     int    `json:"row"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
	Source  string `json:"source,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Value   *float64 `json:"value,omitempty"`
	// CompanyName and CompanyWebsite pass through the mapper untouched; the
	// resolver turns them into CompanyID.
	CompanyName    string `json:"company_name,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	CompanyID      *uint  `json:"company_id,omitempty"`
}

// toLead converts the candidate into the persisted record shape.
func (c *Candidate) toLead(ownerID string) models.Lead {
	return models.Lead{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		Source:    c.Source,
		Value:     c.Value,
		Notes:     c.Notes,
		CompanyID: c.CompanyID,
		OwnerID:   ownerID,
	}
}

// RowError is a hard failure attributed to one source row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
	// Lead carries the mapped candidate when mapping got far enough to
	// produce one, for debugging rejected rows.
	Lead *Candidate `json:"record,omitempty"`
}

// RowWarning is a degraded-but-not-failed outcome for one source row.
type RowWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result is the terminal artifact of an import run. Each data row is
// classified exactly once: created, failed, or skipped.
type Result struct {
	Success  bool         `json:"success"`
	Created  int          `json:"success_count"`
	Failed   int          `json:"error_count"`
	Skipped  int          `json:"skipped_count"`
	Errors   []RowError   `json:"errors"`
	Warnings []RowWarning `json:"warnings"`
	Summary  string       `json:"summary"`
}

func (r *Result) addError(row int, message string, lead *Candidate) {
	r.Errors = append(r.Errors, RowError{Row: row, Message: message, Lead: lead})
}

func (r *Result) addWarning(row int, message string) {
	r.Warnings = append(r.Warnings, RowWarning{Row: row, Message: message})
}

// finalize computes the success flag and the human-readable summary.
// A run succeeds only when at least one lead was created and nothing failed.
func (r *Result) finalize() {
	// Clean runs still serialize errors/warnings as empty JSON arrays, not
	// null, so API consumers can index them unconditionally.
	if r.Errors == nil {
		r.Errors = []RowError{}
	}
	if r.Warnings == nil {
		r.Warnings = []RowWarning{}
	}
	r.Success = r.Failed == 0 && r.Created > 0
	r.Summary = fmt.Sprintf("Imported %d leads (%d skipped, %d failed)",
		r.Created, r.Skipped, r.Failed)
}
