package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"talentbridge_backend/internal/models"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

type OpportunityRepository interface {
	Create(opportunity *models.Opportunity) error
	FindByID(id string) (*models.Opportunity, error)
	Update(opportunity *models.Opportunity) error
	Delete(id string) error

	// IncrementApplicants bumps the applicant counter in a single UPDATE so
	// concurrent submits never lose increments to a read-modify-write race.
	IncrementApplicants(id string, delta int) error

	// FindPublic lists active, non-expired opportunities:
	// is_active AND (deadline IS NULL OR deadline > now).
	FindPublic(criteria OpportunityFilter) ([]models.Opportunity, int64, error)
	FindByProvider(providerID string) ([]models.Opportunity, error)

	// DeactivateExpired flips is_active off for past-deadline opportunities.
	// Maintenance only; public listing never depends on it having run.
	DeactivateExpired(now time.Time) (int64, error)
}

type OpportunityFilter struct {
	Type     models.OpportunityType
	Location string
	Search   string
	Page     int
	PageSize int
}

type OpportunityRepositoryImpl struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &OpportunityRepositoryImpl{db: db}
}

func (r *OpportunityRepositoryImpl) Create(opportunity *models.Opportunity) error {
	return r.db.Create(opportunity).Error
}

func (r *OpportunityRepositoryImpl) FindByID(id string) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	err := r.db.Preload("Provider").First(&opportunity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}
	return &opportunity, nil
}

func (r *OpportunityRepositoryImpl) Update(opportunity *models.Opportunity) error {
	return r.db.Save(opportunity).Error
}

func (r *OpportunityRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Opportunity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) IncrementApplicants(id string, delta int) error {
	result := r.db.Model(&models.Opportunity{}).
		Where("id = ?", id).
		UpdateColumn("current_applicants", gorm.Expr("current_applicants + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) FindPublic(criteria OpportunityFilter) ([]models.Opportunity, int64, error) {
	query := r.db.Model(&models.Opportunity{}).
		Where("is_active = ?", true).
		Where("deadline IS NULL OR deadline > ?", time.Now())

	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var opportunities []models.Opportunity
	err := query.
		Preload("Provider").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&opportunities).Error
	if err != nil {
		return nil, 0, err
	}

	return opportunities, total, nil
}

func (r *OpportunityRepositoryImpl) FindByProvider(providerID string) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	err := r.db.
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepositoryImpl) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Opportunity{}).
		Where("is_active = ? AND deadline IS NOT NULL AND deadline < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
