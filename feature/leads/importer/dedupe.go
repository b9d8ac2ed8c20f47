package importer

import "context"

// isDuplicate checks a candidate against already-persisted leads.
//
// Email is the primary identity signal: an exact match means duplicate. The
// composite fallback (display name plus resolved company) only applies when
// no email matched and both parts are present; it catches re-imports of
// leads that lack contact details. Without either signal the candidate is
// treated as new.
func isDuplicate(ctx context.Context, store Store, c *Candidate) (bool, error) {
	if c.Email != "" {
		existing, err := store.FindLeadByEmail(ctx, c.Email)
		if err != nil {
			return false, err
		}
		if existing != nil {
			return true, nil
		}
	}

	if c.Name != "" && c.CompanyID != nil {
		existing, err := store.FindLeadByNameAndCompany(ctx, c.Name, *c.CompanyID)
		if err != nil {
			return false, err
		}
		if existing != nil {
			return true, nil
		}
	}

	return false, nil
}
