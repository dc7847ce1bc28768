package services

import (
	"time"

	"talentbridge_backend/internal/apperrors"
	"talentbridge_backend/internal/auth"
	"talentbridge_backend/internal/logger"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
	"talentbridge_backend/internal/services/dto"
)

type ApplicationService interface {
	Submit(opportunityID, applicantID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	Transition(applicationID string, actor auth.Actor, req *dto.TransitionApplicationRequest) (*dto.ApplicationResponse, error)
	Withdraw(applicationID, actorID string, req *dto.WithdrawApplicationRequest) error

	GetApplication(applicationID string, actor auth.Actor) (*dto.ApplicationResponse, error)
	ListByOpportunity(opportunityID string, actor auth.Actor) (*dto.ApplicationListResponse, error)
	ListByApplicant(applicantID string) (*dto.ApplicationListResponse, error)
}

type applicationService struct {
	applicationRepo     repositories.ApplicationRepository
	opportunityRepo     repositories.OpportunityRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	opportunityRepo repositories.OpportunityRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) ApplicationService {
	return &applicationService{
		applicationRepo:     applicationRepo,
		opportunityRepo:     opportunityRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Submit creates one application per (opportunity, applicant) pair. The
// pre-check query exists only for a friendlier Conflict on the common path;
// the unique index is what actually decides concurrent duplicates.
func (s *applicationService) Submit(opportunityID, applicantID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	applicant, err := s.userRepo.FindByID(applicantID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	opportunity, err := s.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if opportunity.ProviderID == applicantID {
		return nil, apperrors.ErrCannotApplyToOwn
	}

	// Deadline wins over the active flag: an expired opportunity reports
	// expired even if someone left it flagged active.
	now := time.Now()
	if opportunity.Deadline != nil && opportunity.Deadline.Before(now) {
		return nil, apperrors.ErrOpportunityExpired
	}
	if !opportunity.IsActive {
		return nil, apperrors.ErrOpportunityInactive
	}
	if opportunity.MaxApplicants > 0 && opportunity.CurrentApplicants >= opportunity.MaxApplicants {
		return nil, apperrors.ErrOpportunityCapacityReached
	}

	if _, err := s.applicationRepo.FindByPair(opportunityID, applicantID); err == nil {
		return nil, apperrors.ErrApplicationExists
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		OpportunityID: opportunityID,
		ApplicantID:   applicantID,
		Status:        models.ApplicationStatusPending,
		CoverLetter:   req.CoverLetter,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			// Lost the race to a concurrent submit; the constraint is the
			// authoritative answer.
			return nil, apperrors.ErrApplicationExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewApplicationResponse(application)
	resp.ApplicantName = applicant.Name
	resp.Opportunity = opportunity.Title

	// Side effects are best-effort: the application stays committed even if
	// they fail, and the caller sees what went wrong as warnings.
	if err := s.opportunityRepo.IncrementApplicants(opportunityID, 1); err != nil {
		logger.Warn("applicant counter increment failed",
			"opportunity_id", opportunityID, "application_id", application.ID, "error", err.Error())
		resp.Warnings = append(resp.Warnings, "applicant counter update failed")
	}

	if err := s.notificationService.NotifyNewApplication(opportunity.ProviderID, opportunity, application, applicant.Name); err != nil {
		logger.Warn("new application notification failed",
			"opportunity_id", opportunityID, "application_id", application.ID, "error", err.Error())
		resp.Warnings = append(resp.Warnings, "provider notification failed")
	}

	return resp, nil
}

// Transition moves an application to a reviewer-assignable status. Status,
// notes, reviewer and timestamp land in one record write.
func (s *applicationService) Transition(applicationID string, actor auth.Actor, req *dto.TransitionApplicationRequest) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	opportunity, err := s.opportunityRepo.FindByID(application.OpportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !actor.CanReviewApplications(opportunity.ProviderID) {
		return nil, apperrors.ErrForbidden
	}

	if !models.ReviewerStatuses[req.Status] {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now()
	if err := s.applicationRepo.UpdateReview(applicationID, req.Status, req.Notes, actor.ID, now); err != nil {
		return nil, apperrors.InternalError(err)
	}

	oldStatus := application.Status
	application.Status = req.Status
	application.ReviewNotes = req.Notes
	application.ReviewedBy = &actor.ID
	application.ReviewedAt = &now

	resp := dto.NewApplicationResponse(application)

	if oldStatus != req.Status {
		if err := s.notificationService.NotifyApplicationStatus(application.ApplicantID, opportunity, application); err != nil {
			logger.Warn("status change notification failed",
				"application_id", applicationID, "error", err.Error())
			resp.Warnings = append(resp.Warnings, "applicant notification failed")
		}
	}

	return resp, nil
}

// Withdraw sets status=withdrawn for the original applicant. Withdrawing an
// already-withdrawn application succeeds as a no-op.
func (s *applicationService) Withdraw(applicationID, actorID string, req *dto.WithdrawApplicationRequest) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	if application.ApplicantID != actorID {
		return apperrors.ErrForbidden
	}

	if application.Status == models.ApplicationStatusWithdrawn {
		return nil
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, models.ApplicationStatusWithdrawn); err != nil {
		return apperrors.InternalError(err)
	}

	if req != nil && req.Reason != "" {
		logger.Info("application withdrawn", "application_id", applicationID, "reason", req.Reason)
	}
	return nil
}

func (s *applicationService) GetApplication(applicationID string, actor auth.Actor) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if application.ApplicantID != actor.ID {
		opportunity, err := s.opportunityRepo.FindByID(application.OpportunityID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !actor.CanReviewApplications(opportunity.ProviderID) {
			return nil, apperrors.ErrForbidden
		}
	}

	return dto.NewApplicationResponse(application), nil
}

// ListByOpportunity is the authorization-scoped read: only the owning
// provider or an admin sees an opportunity's applications.
func (s *applicationService) ListByOpportunity(opportunityID string, actor auth.Actor) (*dto.ApplicationListResponse, error) {
	opportunity, err := s.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !actor.CanReviewApplications(opportunity.ProviderID) {
		return nil, apperrors.ErrForbidden
	}

	applications, err := s.applicationRepo.FindByOpportunity(opportunityID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildApplicationList(applications), nil
}

func (s *applicationService) ListByApplicant(applicantID string) (*dto.ApplicationListResponse, error) {
	applications, err := s.applicationRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationList(applications), nil
}

func buildApplicationList(applications []models.Application) *dto.ApplicationListResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicationResponse(&applications[i]))
	}
	return &dto.ApplicationListResponse{
		Applications: responses,
		Total:        len(responses),
	}
}
