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

// locationService implements LocationService interface
type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*domain.Location, error) {
	location := &domain.Location{
		Market:   req.Market,
		Country:  req.Country,
		Province: req.Province,
		City:     req.City,
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *locationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepo.List(ctx)
}

func (s *locationService) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "location %d not found", id)
		}
		return nil, err
	}
	return location, nil
}

func (s *locationService) GetByMarket(ctx context.Context, market string) ([]domain.Location, error) {
	return s.locationRepo.GetByMarket(ctx, market)
}

func (s *locationService) GetByCountry(ctx context.Context, country string) ([]domain.Location, error) {
	return s.locationRepo.GetByCountry(ctx, country)
}

func (s *locationService) GetByProvince(ctx context.Context, province string) ([]domain.Location, error) {
	return s.locationRepo.GetByProvince(ctx, province)
}

func (s *locationService) GetByCity(ctx context.Context, city string) ([]domain.Location, error) {
	return s.locationRepo.GetByCity(ctx, city)
}

func (s *locationService) Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) error {
	if req.Market == nil && req.Country == nil && req.Province == nil && req.City == nil {
		return apperr.New(apperr.KindValidation, "no fields to update")
	}
	affected, err := s.locationRepo.Update(ctx, id, repository.LocationUpdate{
		Market:   req.Market,
		Country:  req.Country,
		Province: req.Province,
		City:     req.City,
	})
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "location %d not found", id)
	}
	return nil
}

func (s *locationService) Delete(ctx context.Context, id int64) error {
	affected, err := s.locationRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "location %d not found", id)
	}
	return nil
}
