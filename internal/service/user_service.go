package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	apperrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/logger"
	"github.com/noah-isme/academy-api/pkg/pagination"
)

type userStore interface {
	List(filter models.UserFilter) ([]models.User, int)
	Get(id int64) (*models.User, bool)
	Create(user models.User) models.User
	Update(id int64, mutate func(*models.User)) (*models.User, bool)
}

// UserService owns validation and store access for the user endpoints.
type UserService struct {
	store    userStore
	validate *validator.Validate
	log      *logger.Logger
}

// NewUserService creates a UserService.
func NewUserService(store userStore, validate *validator.Validate, log *logger.Logger) *UserService {
	if validate == nil {
		validate = NewValidator()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &UserService{store: store, validate: validate, log: log}
}

// List returns a page of users.
func (s *UserService) List(ctx context.Context, query dto.ListUsersQuery) ([]models.User, *pagination.Meta, error) {
	params, err := pagination.Validate(query.Page, query.Limit)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	users, total := s.store.List(models.UserFilter{Offset: params.Offset(), Limit: params.Limit})
	s.log.Performance("list_users", time.Since(start), zap.Int("total", total))

	meta := pagination.Calculate(params.Page, params.Limit, total)
	return users, &meta, nil
}

// Get returns a user by its raw path identifier.
func (s *UserService) Get(ctx context.Context, rawID string) (*models.User, error) {
	id, err := dto.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	user, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "user not found")
	}
	return user, nil
}

// Create validates the payload and appends a new user.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user := s.store.Create(models.User{Name: req.Name, Email: req.Email})

	s.log.Success("user created", zap.Int64("id", user.ID))
	return &user, nil
}

// Update applies the supplied fields to an existing user. Absent fields keep
// their stored value.
func (s *UserService) Update(ctx context.Context, rawID string, req dto.UpdateUserRequest) (*models.User, error) {
	id, err := dto.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, ok := s.store.Update(id, func(u *models.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
	})
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrNotFound, "user not found")
	}

	s.log.Success("user updated", zap.Int64("id", user.ID))
	return user, nil
}
