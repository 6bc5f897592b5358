package service

import (
	"context"
	"errors"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/validator"

	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, req *model.UserRequest, creatorID string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	SearchUsers(ctx context.Context, name *string, olderThan *int) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req *model.UserRequest, creatorID string) (*model.User, error) {
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}

	user := &model.User{Name: req.Name, Age: req.Age}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

// SearchUsers filters by name, by age strictly above olderThan, or both.
// A name-only search returns at most the first match.
func (s *userService) SearchUsers(ctx context.Context, name *string, olderThan *int) ([]model.User, error) {
	switch {
	case name != nil && olderThan != nil:
		return s.userRepo.FindByNameAndAgeGreaterThan(ctx, *name, *olderThan)
	case name != nil:
		user, err := s.userRepo.FindOneByName(ctx, *name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.User{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []model.User{*user}, nil
	case olderThan != nil:
		return s.userRepo.FindByAgeGreaterThan(ctx, *olderThan)
	default:
		return nil, ErrSearchCriteriaRequired
	}
}
