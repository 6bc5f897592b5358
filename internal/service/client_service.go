package service

import (
	"context"
	"errors"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/validator"

	"gorm.io/gorm"
)

type ClientService interface {
	CreateClient(ctx context.Context, req *model.ClientRequest, creatorID string) (*model.Client, error)
	UpdateClient(ctx context.Context, id uint, req *model.ClientRequest, updaterID string) (*model.Client, error)
	GetClient(ctx context.Context, id uint) (*model.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) CreateClient(ctx context.Context, req *model.ClientRequest, creatorID string) (*model.Client, error) {
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}
	if err := s.ensureEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	client := &model.Client{}
	req.Apply(client)
	client.CreatedBy = creatorID
	client.UpdatedBy = creatorID

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClient replaces every field, payment methods included.
func (s *clientService) UpdateClient(ctx context.Context, id uint, req *model.ClientRequest, updaterID string) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}
	if req.Email != client.Email {
		if err := s.ensureEmailFree(ctx, req.Email, client.ID); err != nil {
			return nil, err
		}
	}

	req.Apply(client)
	client.UpdatedBy = updaterID
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return s.clientRepo.FindByID(ctx, id)
}

func (s *clientService) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.clientRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return &ConflictError{Field: "email", Value: email}
	}
	return nil
}

func (s *clientService) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrClientNotFound)
	}
	return client, nil
}
