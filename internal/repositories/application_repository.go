package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"talentbridge_backend/internal/models"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	// Create persists a new application. The unique index over
	// (opportunity_id, applicant_id) is the authoritative duplicate guard;
	// a duplicate-key failure is returned as ErrApplicationAlreadyExists.
	Create(application *models.Application) error

	FindByID(id string) (*models.Application, error)
	FindByPair(opportunityID, applicantID string) (*models.Application, error)
	FindByOpportunity(opportunityID string) ([]models.Application, error)
	FindByApplicant(applicantID string) ([]models.Application, error)

	// UpdateReview writes status and review metadata as one record update.
	UpdateReview(id string, status models.ApplicationStatus, notes string, reviewerID string, at time.Time) error
	UpdateStatus(id string, status models.ApplicationStatus) error

	CountByOpportunity(opportunityID string) (int64, error)
	StatsByOpportunity(opportunityID string) (*ApplicationStats, error)
}

type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"under_review"`
	Accepted    int64 `json:"accepted"`
	Rejected    int64 `json:"rejected"`
	Withdrawn   int64 `json:"withdrawn"`
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Opportunity").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByPair(opportunityID, applicantID string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		First(&application, "opportunity_id = ? AND applicant_id = ?", opportunityID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByOpportunity(opportunityID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Applicant").
		Where("opportunity_id = ?", opportunityID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Opportunity").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateReview(id string, status models.ApplicationStatus, notes string, reviewerID string, at time.Time) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"review_notes": notes,
			"reviewed_by":  reviewerID,
			"reviewed_at":  at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByOpportunity(opportunityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("opportunity_id = ?", opportunityID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) StatsByOpportunity(opportunityID string) (*ApplicationStats, error) {
	rows, err := r.db.Model(&models.Application{}).
		Select("status, count(*) as count").
		Where("opportunity_id = ?", opportunityID).
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &ApplicationStats{}
	for rows.Next() {
		var status models.ApplicationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		stats.Total += count
		switch status {
		case models.ApplicationStatusPending:
			stats.Pending = count
		case models.ApplicationStatusUnderReview:
			stats.UnderReview = count
		case models.ApplicationStatusAccepted:
			stats.Accepted = count
		case models.ApplicationStatusRejected:
			stats.Rejected = count
		case models.ApplicationStatusWithdrawn:
			stats.Withdrawn = count
		}
	}
	return stats, rows.Err()
}
