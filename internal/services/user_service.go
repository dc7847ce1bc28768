package services

import (
	"talentbridge_backend/internal/apperrors"
	"talentbridge_backend/internal/auth"
	"talentbridge_backend/internal/models"
	"talentbridge_backend/internal/repositories"
	"talentbridge_backend/internal/services/dto"
)

type UserService interface {
	GetUser(userID string) (*dto.UserResponse, error)
	ListUsers(actor auth.Actor, criteria dto.ListUsersRequest) (*dto.UserListResponse, error)
	UpdateStatus(actor auth.Actor, userID string, status models.UserStatus) (*dto.UserResponse, error)
	Deactivate(actor auth.Actor, userID string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) ListUsers(actor auth.Actor, criteria dto.ListUsersRequest) (*dto.UserListResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	filter := repositories.UserFilter{
		Role:     models.UserRole(criteria.Role),
		Status:   models.UserStatus(criteria.Status),
		Search:   criteria.Search,
		Page:     criteria.Page,
		PageSize: criteria.Size,
	}

	users, total, err := s.userRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users: responses,
		Total: total,
		Page:  filter.Page,
	}, nil
}

// UpdateStatus is the admin action behind account approval, suspension and
// rejection. Accounts are never hard-deleted.
func (s *userService) UpdateStatus(actor auth.Actor, userID string, status models.UserStatus) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	switch status {
	case models.UserStatusPending, models.UserStatusActive, models.UserStatusSuspended, models.UserStatusRejected:
	default:
		return nil, apperrors.ErrInvalidUserStatus
	}

	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) Deactivate(actor auth.Actor, userID string) error {
	if actor.ID != userID && !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}

	if err := s.userRepo.Deactivate(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
