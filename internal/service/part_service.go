package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/repository"
)

// partService implements PartService interface
type partService struct {
	partRepo     repository.PartRepository
	supplierRepo repository.SupplierRepository
}

// NewPartService creates a new part service
func NewPartService(partRepo repository.PartRepository, supplierRepo repository.SupplierRepository) PartService {
	return &partService{partRepo: partRepo, supplierRepo: supplierRepo}
}

func (s *partService) Create(ctx context.Context, req *dto.CreatePartRequest) (*domain.Part, error) {
	// Parts reference their supplier; reject dangling references up front.
	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "supplier %d not found", req.SupplierID)
		}
		return nil, err
	}

	part := &domain.Part{
		PartName:       req.PartName,
		LastPurchaseID: req.LastPurchaseID,
		SupplierID:     req.SupplierID,
	}
	if err := s.partRepo.Create(ctx, part); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Newf(apperr.KindConflict, "part %q already exists", req.PartName)
		}
		return nil, fmt.Errorf("failed to create part: %w", err)
	}
	return part, nil
}

func (s *partService) List(ctx context.Context) ([]domain.Part, error) {
	return s.partRepo.List(ctx)
}

func (s *partService) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	part, err := s.partRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "part %d not found", id)
		}
		return nil, err
	}
	return part, nil
}

func (s *partService) GetByName(ctx context.Context, name string) (*domain.Part, error) {
	part, err := s.partRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "part %q not found", name)
		}
		return nil, err
	}
	return part, nil
}

func (s *partService) Update(ctx context.Context, id int64, req *dto.UpdatePartRequest) error {
	if req.PartName == nil && req.LastPurchaseID == nil {
		return apperr.New(apperr.KindValidation, "no fields to update")
	}
	affected, err := s.partRepo.Update(ctx, id, repository.PartUpdate{
		PartName:       req.PartName,
		LastPurchaseID: req.LastPurchaseID,
	})
	if err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "part %d not found", id)
	}
	return nil
}

func (s *partService) DeleteByName(ctx context.Context, name string) error {
	affected, err := s.partRepo.DeleteByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "part %q not found", name)
	}
	return nil
}
