package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"talentbridge_backend/internal/apperrors"
	"talentbridge_backend/internal/auth"
	"talentbridge_backend/internal/logger"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
	"talentbridge_backend/internal/services/dto"
)

type OpportunityService interface {
	Create(providerID string, req *dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error)
	Get(opportunityID string) (*dto.OpportunityResponse, error)
	Update(opportunityID string, actor auth.Actor, req *dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error)
	Publish(opportunityID string, actor auth.Actor) (*dto.OpportunityResponse, error)
	Delete(opportunityID string, actor auth.Actor) error

	ListPublic(criteria dto.ListOpportunitiesRequest) (*dto.OpportunityListResponse, error)
	ListByProvider(providerID string, actor auth.Actor) (*dto.OpportunityListResponse, error)
}

type opportunityService struct {
	opportunityRepo     repositories.OpportunityRepository
	applicationRepo     repositories.ApplicationRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewOpportunityService(
	opportunityRepo repositories.OpportunityRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) OpportunityService {
	return &opportunityService{
		opportunityRepo:     opportunityRepo,
		applicationRepo:     applicationRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

func (s *opportunityService) Create(providerID string, req *dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	provider, err := s.userRepo.FindByID(providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if provider.Role != models.UserRoleProvider && provider.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	tagsJSON, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("marshal tags: %w", err))
	}

	opportunity := &models.Opportunity{
		ProviderID:    providerID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          models.OpportunityType(req.Type),
		Location:      req.Location,
		Tags:          datatypes.JSON(tagsJSON),
		MaxApplicants: req.MaxApplicants,
		Deadline:      req.Deadline,
		IsActive:      false, // published explicitly
	}

	if err := s.opportunityRepo.Create(opportunity); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildResponse(opportunity, false)
}

func (s *opportunityService) Get(opportunityID string) (*dto.OpportunityResponse, error) {
	opportunity, err := s.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildResponse(opportunity, false)
}

func (s *opportunityService) Update(opportunityID string, actor auth.Actor, req *dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error) {
	opportunity, err := s.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !actor.CanManageOpportunity(opportunity.ProviderID) {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		opportunity.Title = *req.Title
	}
	if req.Description != nil {
		opportunity.Description = *req.Description
	}
	if req.Type != nil {
		opportunity.Type = models.OpportunityType(*req.Type)
	}
	if req.Location != nil {
		opportunity.Location = *req.Location
	}
	if req.MaxApplicants != nil {
		opportunity.MaxApplicants = *req.MaxApplicants
	}
	if req.Deadline != nil {
		opportunity.Deadline = req.Deadline
	}
	if req.IsActive != nil {
		opportunity.IsActive = *req.IsActive
	}
	if req.Tags != nil {
		tagsJSON, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, apperrors.InternalError(fmt.Errorf("marshal tags: %w", err))
		}
		opportunity.Tags = datatypes.JSON(tagsJSON)
	}

	if err := s.opportunityRepo.Update(opportunity); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildResponse(opportunity, false)
}

// Publish activates the opportunity and fans notifications out to the current
// talent snapshot. Fan-out runs after the activating write committed and its
// failure never fails the publish.
func (s *opportunityService) Publish(opportunityID string, actor auth.Actor) (*dto.OpportunityResponse, error) {
	opportunity, err := s.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !actor.CanManageOpportunity(opportunity.ProviderID) {
		return nil, apperrors.ErrForbidden
	}

	if opportunity.IsActive {
		return nil, apperrors.ErrOpportunityAlreadyPublished
	}

	opportunity.IsActive = true
	if err := s.opportunityRepo.Update(opportunity); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.notificationService.FanOutNewOpportunity(opportunity); err != nil {
		logger.Warn("opportunity fan-out failed", "opportunity_id", opportunity.ID, "error", err.Error())
	}

	return s.buildResponse(opportunity, false)
}

func (s *opportunityService) Delete(opportunityID string, actor auth.Actor) error {
	opportunity, err := s.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return apperrors.ErrOpportunityNotFound
		}
		return apperrors.InternalError(err)
	}

	if !actor.CanManageOpportunity(opportunity.ProviderID) {
		return apperrors.ErrForbidden
	}

	count, err := s.applicationRepo.CountByOpportunity(opportunityID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		// Applications reference this opportunity; deactivate instead.
		return apperrors.NewBadRequestError("Opportunity has applications; deactivate it instead of deleting")
	}

	if err := s.opportunityRepo.Delete(opportunityID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *opportunityService) ListPublic(criteria dto.ListOpportunitiesRequest) (*dto.OpportunityListResponse, error) {
	filter := repositories.OpportunityFilter{
		Type:     models.OpportunityType(criteria.Type),
		Location: criteria.Location,
		Search:   criteria.Search,
		Page:     criteria.Page,
		PageSize: criteria.Size,
	}

	opportunities, total, err := s.opportunityRepo.FindPublic(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		resp, err := s.buildResponse(&opportunities[i], false)
		if err != nil {
			continue
		}
		responses = append(responses, resp)
	}

	return &dto.OpportunityListResponse{
		Opportunities: responses,
		Total:         total,
		Page:          filter.Page,
	}, nil
}

func (s *opportunityService) ListByProvider(providerID string, actor auth.Actor) (*dto.OpportunityListResponse, error) {
	if !actor.CanManageOpportunity(providerID) {
		return nil, apperrors.ErrForbidden
	}

	opportunities, err := s.opportunityRepo.FindByProvider(providerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		resp, err := s.buildResponse(&opportunities[i], true)
		if err != nil {
			continue
		}
		responses = append(responses, resp)
	}

	return &dto.OpportunityListResponse{
		Opportunities: responses,
		Total:         int64(len(responses)),
	}, nil
}

func (s *opportunityService) buildResponse(opportunity *models.Opportunity, includeStats bool) (*dto.OpportunityResponse, error) {
	var tags []string
	if len(opportunity.Tags) > 0 {
		_ = json.Unmarshal(opportunity.Tags, &tags)
	}

	resp := &dto.OpportunityResponse{
		ID:                opportunity.ID,
		ProviderID:        opportunity.ProviderID,
		Title:             opportunity.Title,
		Description:       opportunity.Description,
		Type:              opportunity.Type,
		Location:          opportunity.Location,
		Tags:              tags,
		CurrentApplicants: opportunity.CurrentApplicants,
		MaxApplicants:     opportunity.MaxApplicants,
		IsActive:          opportunity.IsActive,
		Deadline:          opportunity.Deadline,
		CreatedAt:         opportunity.CreatedAt,
	}
	if opportunity.Provider != nil {
		resp.ProviderName = opportunity.Provider.Name
	}

	if includeStats {
		stats, err := s.applicationRepo.StatsByOpportunity(opportunity.ID)
		if err == nil {
			resp.Stats = stats
		}
	}

	return resp, nil
}
