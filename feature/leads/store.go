package leads

import (
	"context"
	"errors"

	"github.com/stevetowers08/leadflow-sub006/feature/leads/importer"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"gorm.io/gorm"
)

// gormStore backs the import pipeline with the application database.
type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a database handle into the store the importer consumes.
func NewStore(db *gorm.DB) importer.Store {
	return &gormStore{db: db}
}

func (s *gormStore) InsertLeads(ctx context.Context, leads []models.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&leads).Error
}

func (s *gormStore) FindLeadByEmail(ctx context.Context, email string) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *gormStore) FindLeadByNameAndCompany(ctx context.Context, name string, companyID uint) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.WithContext(ctx).
		Where("name = ? AND company_id = ?", name, companyID).
		First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *gormStore) FindCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *gormStore) CreateCompany(ctx context.Context, company *models.Company) error {
	return s.db.WithContext(ctx).Create(company).Error
}
