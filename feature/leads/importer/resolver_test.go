package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverCreatesOncePerRun(t *testing.T) {
	store := newFakeStore()
	res := newResolver(store)
	ctx := context.Background()

	first, err := res.resolve(ctx, "Globex", "https://globex.test", "user-1")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Same company, different casing and whitespace.
	second, err := res.resolve(ctx, "  globex ", "", "user-1")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, store.createCompanyCalls)
	assert.Equal(t, 1, store.findCompanyCalls)

	require.Len(t, store.companies, 1)
	assert.Equal(t, "Globex", store.companies[0].Name)
	assert.Equal(t, "https://globex.test", store.companies[0].Website)
	assert.Equal(t, "user-1", store.companies[0].OwnerID)
}

func TestResolverReusesExistingCompany(t *testing.T) {
	store := newFakeStore()
	store.companies = []models.Company{{ID: 7, Name: "Acme"}}
	res := newResolver(store)

	id, err := res.resolve(context.Background(), "acme", "", "user-1")

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint(7), *id)
	assert.Equal(t, 0, store.createCompanyCalls)
}

func TestResolverIgnoresBlankNames(t *testing.T) {
	store := newFakeStore()
	res := newResolver(store)

	id, err := res.resolve(context.Background(), "   ", "https://x.test", "user-1")

	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Equal(t, 0, store.findCompanyCalls)
}

func TestResolverPropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.companyErr = errors.New("deadlock")
	res := newResolver(store)

	id, err := res.resolve(context.Background(), "Acme", "", "user-1")

	assert.Error(t, err)
	assert.Nil(t, id)

	// Failures are not cached; the next row retries.
	store.companyErr = nil
	id, err = res.resolve(context.Background(), "Acme", "", "user-1")
	require.NoError(t, err)
	assert.NotNil(t, id)
}
