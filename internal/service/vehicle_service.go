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

// vehicleService implements VehicleService interface
type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) Create(ctx context.Context, req *dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{
		Model:      req.Model,
		ProdDate:   req.ProdDate,
		Year:       req.Year,
		Propulsion: req.Propulsion,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "vehicle %d not found", id)
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) GetByModel(ctx context.Context, model string) ([]domain.Vehicle, error) {
	return s.vehicleRepo.GetByModel(ctx, model)
}

func (s *vehicleService) GetByPropulsion(ctx context.Context, propulsion string) ([]domain.Vehicle, error) {
	if !domain.ValidPropulsion(propulsion) {
		return nil, apperr.Newf(apperr.KindValidation, "unknown propulsion type %q", propulsion)
	}
	return s.vehicleRepo.GetByPropulsion(ctx, propulsion)
}

func (s *vehicleService) GetByYear(ctx context.Context, year int) ([]domain.Vehicle, error) {
	return s.vehicleRepo.GetByYear(ctx, year)
}

func (s *vehicleService) Update(ctx context.Context, id int64, req *dto.UpdateVehicleRequest) error {
	if req.Model == nil && req.ProdDate == nil && req.Year == nil && req.Propulsion == nil {
		return apperr.New(apperr.KindValidation, "no fields to update")
	}
	fields := repository.VehicleUpdate{
		Model:      req.Model,
		ProdDate:   req.ProdDate,
		Year:       req.Year,
		Propulsion: req.Propulsion,
	}
	affected, err := s.vehicleRepo.Update(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "vehicle %d not found", id)
	}
	return nil
}

func (s *vehicleService) Delete(ctx context.Context, id int64) error {
	affected, err := s.vehicleRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if affected == 0 {
		return apperr.Newf(apperr.KindNotFound, "vehicle %d not found", id)
	}
	return nil
}
