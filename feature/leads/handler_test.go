package leads_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stevetowers08/leadflow-sub006/core/database"
	"github.com/stevetowers08/leadflow-sub006/feature/leads"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/importer"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Lead{}, &models.Company{}))

	app := fiber.New()
	feature := leads.NewFeature(db, nil, "lead-imports", "", zap.NewNop())
	require.NoError(t, feature.Load(app))

	return app, db
}

func newUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleImport(t *testing.T) {
	app, db := setupApp(t)

	csv := "Name,Email,Company\n" +
		"Jane Doe,jane@example.com,\"Acme, Inc.\"\n" +
		"Bob Stone,not-an-email,Initech\n"
	body, contentType := newUpload(t, "leads.csv", []byte(csv))

	req := httptest.NewRequest("POST", "/leads/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Actor-ID", "user-7")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result importer.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "Invalid email format")

	var lead models.Lead
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "user-7", lead.OwnerID)
	require.NotNil(t, lead.CompanyID)

	var company models.Company
	require.NoError(t, db.First(&company).Error)
	assert.Equal(t, "Acme, Inc.", company.Name)
}

func TestHandleImportKeepDuplicates(t *testing.T) {
	app, db := setupApp(t)
	require.NoError(t, db.Create(&models.Lead{Name: "Jane Doe", Email: "jane@example.com"}).Error)

	csv := "Name,Email\nJane Doe,jane@example.com\n"

	t.Run("skipped by default", func(t *testing.T) {
		body, contentType := newUpload(t, "leads.csv", []byte(csv))
		req := httptest.NewRequest("POST", "/leads/import", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)

		var result importer.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 0, result.Created)
	})

	t.Run("kept on request", func(t *testing.T) {
		body, contentType := newUpload(t, "leads.csv", []byte(csv))
		req := httptest.NewRequest("POST", "/leads/import?keep_duplicates=true", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)

		var result importer.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, 1, result.Created)
	})
}

func TestHandleImportRejectsBadRequests(t *testing.T) {
	app, _ := setupApp(t)

	t.Run("missing file field", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/leads/import", bytes.NewReader(nil))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong extension", func(t *testing.T) {
		body, contentType := newUpload(t, "leads.xlsx", []byte("Name\nJane\n"))
		req := httptest.NewRequest("POST", "/leads/import", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
