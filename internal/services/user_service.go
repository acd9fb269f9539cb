package services

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/validation"
	"github.com/google/uuid"
)

// UserService manages HR accounts on behalf of admins.
type UserService struct {
	users UserRepository
	jobs  JobRepository
	creds *CredentialService
}

func NewUserService(users UserRepository, jobs JobRepository, creds *CredentialService) *UserService {
	return &UserService{users: users, jobs: jobs, creds: creds}
}

func (s *UserService) ListHR(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByRole(ctx, models.RoleHR)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *UserService) CreateHR(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Role:     models.RoleHR,
		Password: hash,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateHR applies patch to an HR account. Role is never changed and an
// empty password is ignored.
func (s *UserService) UpdateHR(ctx context.Context, id uuid.UUID, patch *dto.UserPatch) (*models.User, error) {
	if patch.Password != nil && *patch.Password == "" {
		patch.Password = nil
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	user, err := s.findHR(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if err := s.ensureEmailFree(ctx, *patch.Email); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := s.creds.HashPassword(*patch.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.Password = hash
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteHR removes an HR account that owns no jobs.
func (s *UserService) DeleteHR(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findHR(ctx, id); err != nil {
		return err
	}
	allocated, err := s.jobs.CountByAssignedHR(ctx, id)
	if err != nil {
		return err
	}
	if allocated > 0 {
		return apperr.Conflict("Cannot delete HR user with allocated jobs")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	return nil
}

func (s *UserService) findHR(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil && !errors.Is(err, apperr.ErrRecordNotFound) {
		return nil, err
	}
	if user == nil || !user.IsHR() {
		return nil, apperr.NotFound("HR user not found")
	}
	return user, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return apperr.Conflict("Email already registered")
	case errors.Is(err, apperr.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
