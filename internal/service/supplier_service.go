package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/repository"
	"github.com/rmfarias/warranty-service/internal/utils"
)

// supplierService implements SupplierService interface
type supplierService struct {
	supplierRepo repository.SupplierRepository
	locationRepo repository.LocationRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository, locationRepo repository.LocationRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo, locationRepo: locationRepo}
}

func (s *supplierService) Create(ctx context.Context, req *dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if !utils.ValidateCPF(req.SupplierCPF) {
		return nil, apperr.New(apperr.KindValidation, "invalid supplier cpf")
	}
	if _, err := s.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "location %d not found", req.LocationID)
		}
		return nil, err
	}

	supplier := &domain.Supplier{
		SupplierName: req.SupplierName,
		SupplierCPF:  req.SupplierCPF,
		LocationID:   req.LocationID,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Newf(apperr.KindConflict, "supplier %q already exists", req.SupplierName)
		}
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.List(ctx)
}

func (s *supplierService) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "supplier %d not found", id)
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetByName(ctx context.Context, name string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "supplier %q not found", name)
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetByCPF(ctx context.Context, cpf string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "supplier with cpf %q not found", cpf)
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(ctx context.Context, id int64, req *dto.UpdateSupplierRequest) error {
	if req.SupplierName == nil && req.SupplierCPF == nil {
		return apperr.New(apperr.KindValidation, "no fields to update")
	}
	if req.SupplierCPF != nil && !utils.ValidateCPF(*req.SupplierCPF) {
		return apperr.New(apperr.KindValidation, "invalid supplier cpf")
	}
	affected, err := s.supplierRepo.Update(ctx, id, repository.SupplierUpdate{
		SupplierName: req.SupplierName,
		SupplierCPF:  req.SupplierCPF,
	})
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "supplier %d not found", id)
	}
	return nil
}

func (s *supplierService) DeleteByName(ctx context.Context, name string) error {
	affected, err := s.supplierRepo.DeleteByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "supplier %q not found", name)
	}
	return nil
}
