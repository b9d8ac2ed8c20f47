package leads

import (
	"context"
	"testing"

	"github.com/stevetowers08/leadflow-sub006/core/database"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Lead{}, &models.Company{})
	require.NoError(t, err)

	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStoreLeadLookups(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	companyID := uint(1)
	err := store.CreateCompany(ctx, &models.Company{Name: "Acme"})
	require.NoError(t, err)

	err = store.InsertLeads(ctx, []models.Lead{
		{Name: "Jane Doe", Email: "jane@example.com", Status: models.StatusNew, CompanyID: &companyID},
		{Name: "Bob Stone", Status: models.StatusContacted},
	})
	require.NoError(t, err)

	t.Run("find by email", func(t *testing.T) {
		lead, err := store.FindLeadByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, lead)
		assert.Equal(t, "Jane Doe", lead.Name)

		lead, err = store.FindLeadByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, lead)
	})

	t.Run("find by name and company", func(t *testing.T) {
		lead, err := store.FindLeadByNameAndCompany(ctx, "Jane Doe", companyID)
		require.NoError(t, err)
		require.NotNil(t, lead)
		assert.Equal(t, "jane@example.com", lead.Email)

		lead, err = store.FindLeadByNameAndCompany(ctx, "Bob Stone", companyID)
		require.NoError(t, err)
		assert.Nil(t, lead)
	})
}

func TestStoreCompanyRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	company := &models.Company{Name: "Globex", Website: "https://globex.test"}
	err := store.CreateCompany(ctx, company)
	require.NoError(t, err)
	assert.NotZero(t, company.ID)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := store.FindCompanyByName(ctx, "GLOBEX")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, company.ID, found.ID)
	})

	t.Run("unknown name returns nil", func(t *testing.T) {
		found, err := store.FindCompanyByName(ctx, "Initech")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestStoreInsertLeadsEmptyBatch(t *testing.T) {
	store := NewStore(setupTestDB(t))

	err := store.InsertLeads(context.Background(), nil)

	assert.NoError(t, err)
}

func TestStoreFindLeadByEmailQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "status"}).
		AddRow(1, "Jane Doe", "jane@example.com", models.StatusNew)
	mock.ExpectQuery("SELECT \\* FROM `leads` WHERE email = \\?").
		WillReturnRows(rows)

	lead, err := store.FindLeadByEmail(context.Background(), "jane@example.com")

	assert.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
