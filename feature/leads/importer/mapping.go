package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"
)

// Target field names a mapping rule can point at.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"
	FieldStatus  = "status"
	FieldSource  = "source"
	FieldValue   = "value"
	FieldNotes   = "notes"
	FieldCompany = "company"
	FieldWebsite = "website"
)

// Rule maps one source column onto one lead field.
type Rule struct {
	// Column is the source column header, matched case-insensitively.
	Column string `json:"column"`
	// Field is the target field, one of the Field* constants.
	Field string `json:"field"`
	// Required marks rows lacking a value for Field as hard errors.
	Required bool `json:"required"`
}

// Table is an ordered set of mapping rules. Several rules may target the
// same field; the first rule that sources a non-empty value wins, which is
// how synonymous headers like "Email" and "Email Address" coexist.
type Table []Rule

// DefaultTable returns the built-in mapping covering the column names CRM
// exports commonly use. Callers may replace it wholesale.
func DefaultTable() Table {
	return Table{
		{Column: "Name", Field: FieldName, Required: true},
		{Column: "Full Name", Field: FieldName, Required: true},
		{Column: "Contact Name", Field: FieldName, Required: true},
		{Column: "Email", Field: FieldEmail},
		{Column: "Email Address", Field: FieldEmail},
		{Column: "E-mail", Field: FieldEmail},
		{Column: "Phone", Field: FieldPhone},
		{Column: "Phone Number", Field: FieldPhone},
		{Column: "Address", Field: FieldAddress},
		{Column: "Status", Field: FieldStatus},
		{Column: "Stage", Field: FieldStatus},
		{Column: "Source", Field: FieldSource},
		{Column: "Lead Source", Field: FieldSource},
		{Column: "Value", Field: FieldValue},
		{Column: "Deal Value", Field: FieldValue},
		{Column: "Amount", Field: FieldValue},
		{Column: "Notes", Field: FieldNotes},
		{Column: "Company", Field: FieldCompany},
		{Column: "Company Name", Field: FieldCompany},
		{Column: "Organization", Field: FieldCompany},
		{Column: "Website", Field: FieldWebsite},
		{Column: "Company Website", Field: FieldWebsite},
	}
}

// Pre-compiled: a bare local@domain shape is all we enforce; full RFC 5322
// validation rejects too many real addresses.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// statusSynonyms maps the controlled input vocabulary onto canonical
// statuses. Lookup is lowercase.
var statusSynonyms = map[string]string{
	"new":         models.StatusNew,
	"open":        models.StatusNew,
	"fresh":       models.StatusNew,
	"contacted":   models.StatusContacted,
	"working":     models.StatusContacted,
	"in progress": models.StatusContacted,
	"qualified":   models.StatusQualified,
	"hot":         models.StatusQualified,
	"sql":         models.StatusQualified,
	"unqualified": models.StatusUnqualified,
	"cold":        models.StatusUnqualified,
	"lost":        models.StatusUnqualified,
	"customer":    models.StatusCustomer,
	"won":         models.StatusCustomer,
	"converted":   models.StatusCustomer,
}

// normalizeStatus maps a raw status onto the canonical vocabulary.
// Unrecognized input falls back to StatusNew rather than erroring; uploads
// from other tools carry all kinds of stage labels and a wrong bucket beats
// a rejected row.
func normalizeStatus(raw string) string {
	if canonical, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return models.StatusNew
}

// parseValue parses a deal value, tolerating currency symbols and thousands
// separators.
func parseValue(raw string) (float64, bool) {
	s := strings.NewReplacer("$", "", "€", "", "£", "", ",", "").Replace(raw)
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// headerIndex maps lowercased, trimmed column names to their position.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// mapRow builds a Candidate from one data row.
//
// Required-field presence is checked before any per-field validation. A row
// with one or more hard errors returns a nil candidate; soft issues (an
// unparseable deal value) only reduce field population and surface as
// warnings. The company name and website hint pass through unvalidated for
// the resolver.
func (t Table) mapRow(row []string, idx map[string]int, rowNum int) (*Candidate, []string, []string) {
	// First non-empty value per target field, in rule order.
	values := make(map[string]string, len(t))
	for _, rule := range t {
		pos, ok := idx[strings.ToLower(rule.Column)]
		if !ok || pos >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[pos])
		if v == "" {
			continue
		}
		if _, taken := values[rule.Field]; !taken {
			values[rule.Field] = v
		}
	}

	var errs, warns []string

	// One error per missing required field, no matter how many synonym
	// rules name it.
	reported := make(map[string]bool)
	for _, rule := range t {
		if !rule.Required || reported[rule.Field] {
			continue
		}
		if values[rule.Field] == "" {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", rule.Field))
			reported[rule.Field] = true
		}
	}

	c := &Candidate{Row: rowNum}

	if email := values[FieldEmail]; email != "" {
		if emailRegex.MatchString(email) {
			c.Email = email
		} else {
			// Leave the field absent rather than store a corrupt identity key.
			errs = append(errs, fmt.Sprintf("Invalid email format: %s", email))
		}
	}

	if len(errs) > 0 {
		return nil, errs, warns
	}

	c.Name = values[FieldName]
	c.Phone = values[FieldPhone]
	c.Address = values[FieldAddress]
	c.Source = values[FieldSource]
	c.Notes = values[FieldNotes]
	c.Status = normalizeStatus(values[FieldStatus])
	c.CompanyName = values[FieldCompany]
	c.CompanyWebsite = values[FieldWebsite]

	if raw := values[FieldValue]; raw != "" {
		if f, ok := parseValue(raw); ok {
			c.Value = &f
		} else {
			warns = append(warns, fmt.Sprintf("Could not parse deal value %q, field left empty", raw))
		}
	}

	return c, nil, warns
}
