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

// warrantyService implements WarrantyService interface
type warrantyService struct {
	warrantyRepo repository.WarrantyRepository
	vehicleRepo  repository.VehicleRepository
	partRepo     repository.PartRepository
	purchaseRepo repository.PurchaseRepository
	locationRepo repository.LocationRepository
}

// NewWarrantyService creates a new warranty service
func NewWarrantyService(
	warrantyRepo repository.WarrantyRepository,
	vehicleRepo repository.VehicleRepository,
	partRepo repository.PartRepository,
	purchaseRepo repository.PurchaseRepository,
	locationRepo repository.LocationRepository,
) WarrantyService {
	return &warrantyService{
		warrantyRepo: warrantyRepo,
		vehicleRepo:  vehicleRepo,
		partRepo:     partRepo,
		purchaseRepo: purchaseRepo,
		locationRepo: locationRepo,
	}
}

// Create files a claim after checking every referenced row exists.
func (s *warrantyService) Create(ctx context.Context, req *dto.CreateWarrantyRequest) (*domain.Warranty, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		return nil, s.refError(err, "vehicle", req.VehicleID)
	}
	if _, err := s.partRepo.GetByID(ctx, req.PartID); err != nil {
		return nil, s.refError(err, "part", req.PartID)
	}
	if _, err := s.purchaseRepo.GetByID(ctx, req.PurchaseID); err != nil {
		return nil, s.refError(err, "purchase", req.PurchaseID)
	}
	if _, err := s.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		return nil, s.refError(err, "location", req.LocationID)
	}

	warranty := &domain.Warranty{
		VehicleID:         req.VehicleID,
		PartID:            req.PartID,
		PurchaseID:        req.PurchaseID,
		LocationID:        req.LocationID,
		RepairDate:        req.RepairDate,
		ClientComment:     req.ClientComment,
		TechComment:       req.TechComment,
		ClassifiedFailure: req.ClassifiedFailure,
	}
	if err := s.warrantyRepo.Create(ctx, warranty); err != nil {
		return nil, fmt.Errorf("failed to create warranty claim: %w", err)
	}
	return warranty, nil
}

func (s *warrantyService) refError(err error, entity string, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.Newf(apperr.KindNotFound, "%s %d not found", entity, id)
	}
	return err
}

func (s *warrantyService) List(ctx context.Context) ([]domain.Warranty, error) {
	return s.warrantyRepo.List(ctx)
}

func (s *warrantyService) GetByClaimKey(ctx context.Context, claimKey int64) (*domain.Warranty, error) {
	warranty, err := s.warrantyRepo.GetByClaimKey(ctx, claimKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "warranty claim %d not found", claimKey)
		}
		return nil, err
	}
	return warranty, nil
}

func (s *warrantyService) Update(ctx context.Context, claimKey int64, req *dto.UpdateWarrantyRequest) error {
	if req.RepairDate == nil && req.ClientComment == nil && req.TechComment == nil && req.ClassifiedFailure == nil {
		return apperr.New(apperr.KindValidation, "no fields to update")
	}
	affected, err := s.warrantyRepo.Update(ctx, claimKey, repository.WarrantyUpdate{
		RepairDate:        req.RepairDate,
		ClientComment:     req.ClientComment,
		TechComment:       req.TechComment,
		ClassifiedFailure: req.ClassifiedFailure,
	})
	if err != nil {
		return fmt.Errorf("failed to update warranty claim: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "warranty claim %d not found", claimKey)
	}
	return nil
}

func (s *warrantyService) Delete(ctx context.Context, claimKey int64) error {
	affected, err := s.warrantyRepo.Delete(ctx, claimKey)
	if err != nil {
		return fmt.Errorf("failed to delete warranty claim: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "warranty claim %d not found", claimKey)
	}
	return nil
}
