package importer

import (
	"context"
	"strings"

	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"
)

// resolver turns free-text company names into stable company IDs with
// create-or-reuse semantics.
//
// Results are memoized per run, keyed by the normalized name, so two rows
// naming the same new company share one entity even before the store can
// enforce uniqueness. The cache lives and dies with a single run; concurrent
// runs can still race on brand-new names if the store has no unique
// constraint.
type resolver struct {
	store Store
	cache map[string]uint
}

func newResolver(store Store) *resolver {
	return &resolver{
		store: store,
		cache: make(map[string]uint),
	}
}

// resolve returns the ID of the company with the given name, creating it
// with the website hint and owner when absent. A store failure returns the
// error untouched; the caller decides how degraded the row becomes.
func (r *resolver) resolve(ctx context.Context, name, website, ownerID string) (*uint, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, nil
	}

	if id, ok := r.cache[key]; ok {
		return &id, nil
	}

	existing, err := r.store.FindCompanyByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		r.cache[key] = existing.ID
		id := existing.ID
		return &id, nil
	}

	company := &models.Company{
		Name:    strings.TrimSpace(name),
		Website: strings.TrimSpace(website),
		OwnerID: ownerID,
	}
	if err := r.store.CreateCompany(ctx, company); err != nil {
		return nil, err
	}

	r.cache[key] = company.ID
	id := company.ID
	return &id, nil
}
