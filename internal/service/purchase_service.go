package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/repository"
)

const purchaseDateLayout = "2006-01-02"

// purchaseService implements PurchaseService interface
type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	partRepo     repository.PartRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, partRepo repository.PartRepository) PurchaseService {
	return &purchaseService{purchaseRepo: purchaseRepo, partRepo: partRepo}
}

func (s *purchaseService) Create(ctx context.Context, req *dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	part, err := s.partRepo.GetByID(ctx, req.PartID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "part %d not found", req.PartID)
		}
		return nil, err
	}

	purchase := &domain.Purchase{
		PurchaseType: req.PurchaseType,
		PurchaseDate: req.PurchaseDate,
		PartID:       req.PartID,
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	// Track the most recent purchase on the part itself.
	_, err = s.partRepo.Update(ctx, part.ID, repository.PartUpdate{LastPurchaseID: &purchase.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to record last purchase on part: %w", err)
	}

	return purchase, nil
}

func (s *purchaseService) List(ctx context.Context) ([]domain.Purchase, error) {
	return s.purchaseRepo.List(ctx)
}

func (s *purchaseService) GetByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "purchase %d not found", id)
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) GetByType(ctx context.Context, purchaseType string) ([]domain.Purchase, error) {
	if !domain.ValidPurchaseType(purchaseType) {
		return nil, apperr.Newf(apperr.KindValidation, "unknown purchase type %q", purchaseType)
	}
	return s.purchaseRepo.GetByType(ctx, purchaseType)
}

func (s *purchaseService) GetByDate(ctx context.Context, date string) ([]domain.Purchase, error) {
	day, err := time.Parse(purchaseDateLayout, date)
	if err != nil {
		return nil, apperr.Newf(apperr.KindValidation, "invalid date %q, expected YYYY-MM-DD", date)
	}
	return s.purchaseRepo.GetByDate(ctx, day)
}

func (s *purchaseService) Update(ctx context.Context, id int64, req *dto.UpdatePurchaseRequest) error {
	if req.PurchaseType == nil && req.PurchaseDate == nil {
		return apperr.New(apperr.KindValidation, "no fields to update")
	}
	affected, err := s.purchaseRepo.Update(ctx, id, repository.PurchaseUpdate{
		PurchaseType: req.PurchaseType,
		PurchaseDate: req.PurchaseDate,
	})
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "purchase %d not found", id)
	}
	return nil
}

func (s *purchaseService) Delete(ctx context.Context, id int64) error {
	affected, err := s.purchaseRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "purchase %d not found", id)
	}
	return nil
}
