package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/rmfarias/warranty-service/internal/analytics"
	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/repository"
)

// analyticsService implements AnalyticsService. It fetches the rows a report
// needs in bulk, then hands the computation to the analytics package.
type analyticsService struct {
	repos   *repository.Repositories
	logger  *zap.Logger
	reports metric.Int64Counter
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repos *repository.Repositories, logger *zap.Logger) AnalyticsService {
	meter := otel.Meter("warranty-service/analytics")
	reports, err := meter.Int64Counter("analytics_reports_total",
		metric.WithDescription("Number of analytics reports computed, by report name"))
	if err != nil {
		logger.Warn("failed to create report counter", zap.Error(err))
	}

	return &analyticsService{
		repos:   repos,
		logger:  logger,
		reports: reports,
	}
}

func (s *analyticsService) count(ctx context.Context, report string) {
	if s.reports != nil {
		s.reports.Add(ctx, 1, metric.WithAttributes(attribute.String("report", report)))
	}
}

// partNames builds the part id to name lookup used by every report.
func (s *analyticsService) partNames(ctx context.Context) (map[int64]string, error) {
	parts, err := s.repos.Part.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	names := make(map[int64]string, len(parts))
	for _, p := range parts {
		names[p.ID] = p.PartName
	}
	return names, nil
}

// claimsByVehicle fetches the warranty claims of each vehicle.
func (s *analyticsService) claimsByVehicle(ctx context.Context, vehicles []domain.Vehicle) (map[int64][]domain.Warranty, error) {
	claims := make(map[int64][]domain.Warranty, len(vehicles))
	for _, v := range vehicles {
		rows, err := s.repos.Warranty.GetByVehicleID(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get claims for vehicle %d: %w", v.ID, err)
		}
		if len(rows) > 0 {
			claims[v.ID] = rows
		}
	}
	return claims, nil
}

// PurchasesByType reports purchase volume over time for one purchase type.
func (s *analyticsService) PurchasesByType(ctx context.Context, purchaseType string) (*analytics.PurchaseReport, error) {
	if !domain.ValidPurchaseType(purchaseType) {
		return nil, apperr.Newf(apperr.KindValidation, "unknown purchase type %q", purchaseType)
	}

	purchases, err := s.repos.Purchase.GetByType(ctx, purchaseType)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}
	if len(purchases) == 0 {
		return nil, apperr.Newf(apperr.KindNotFound, "no purchases of type %q", purchaseType)
	}

	names, err := s.partNames(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.PurchaseTypeReport(purchaseType, purchases, names)
	s.count(ctx, "purchases_by_type")
	return &report, nil
}

// VehicleModel reports fleet composition and warranty history for one model.
func (s *analyticsService) VehicleModel(ctx context.Context, model string) (*analytics.ModelReport, error) {
	vehicles, err := s.repos.Vehicle.GetByModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		return nil, apperr.Newf(apperr.KindNotFound, "no vehicles of model %q", model)
	}

	claims, err := s.claimsByVehicle(ctx, vehicles)
	if err != nil {
		return nil, err
	}
	names, err := s.partNames(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.VehicleModelReport(model, vehicles, claims, names)
	s.count(ctx, "vehicle_model")
	return &report, nil
}

// PropulsionType reports per-part failure pressure for one propulsion type.
func (s *analyticsService) PropulsionType(ctx context.Context, propulsion string) (*analytics.PropulsionTypeReport, error) {
	if !domain.ValidPropulsion(propulsion) {
		return nil, apperr.Newf(apperr.KindValidation, "unknown propulsion type %q", propulsion)
	}

	vehicles, err := s.repos.Vehicle.GetByPropulsion(ctx, propulsion)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		return nil, apperr.Newf(apperr.KindNotFound, "no vehicles with propulsion %q", propulsion)
	}

	claims, err := s.claimsByVehicle(ctx, vehicles)
	if err != nil {
		return nil, err
	}
	names, err := s.partNames(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.PropulsionTypeReportFor(propulsion, vehicles, claims, names)
	s.count(ctx, "propulsion_type")
	return &report, nil
}

// SupplierParts reports the warranty record of every part a supplier provides.
func (s *analyticsService) SupplierParts(ctx context.Context, supplierName string) (*analytics.SupplierReport, error) {
	supplier, err := s.repos.Supplier.GetByName(ctx, supplierName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "supplier %q not found", supplierName)
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	parts, err := s.repos.Part.GetBySupplierID(ctx, supplier.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier parts: %w", err)
	}

	claimsByPart := make(map[int64][]domain.Warranty, len(parts))
	vehicleByID := make(map[int64]domain.Vehicle)
	for _, part := range parts {
		rows, err := s.repos.Warranty.GetByPartID(ctx, part.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get claims for part %d: %w", part.ID, err)
		}
		claimsByPart[part.ID] = rows

		for _, claim := range rows {
			if _, ok := vehicleByID[claim.VehicleID]; ok {
				continue
			}
			vehicle, err := s.repos.Vehicle.GetByID(ctx, claim.VehicleID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to get vehicle %d: %w", claim.VehicleID, err)
			}
			vehicleByID[claim.VehicleID] = *vehicle
		}
	}

	report := analytics.SupplierPartsReport(supplier, parts, claimsByPart, vehicleByID)
	s.count(ctx, "supplier_parts")
	return &report, nil
}

// SupplierByProvince compares the suppliers located in one province by claim
// volume.
func (s *analyticsService) SupplierByProvince(ctx context.Context, province string) (*analytics.ProvinceReport, error) {
	locations, err := s.repos.Location.GetByProvince(ctx, province)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	if len(locations) == 0 {
		return nil, apperr.Newf(apperr.KindNotFound, "no locations in province %q", province)
	}

	locationIDs := make([]int64, 0, len(locations))
	for _, l := range locations {
		locationIDs = append(locationIDs, l.ID)
	}

	suppliers, err := s.repos.Supplier.GetByLocationIDs(ctx, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get suppliers: %w", err)
	}

	partsBySupplier := make(map[int64][]domain.Part, len(suppliers))
	claimsByPart := make(map[int64][]domain.Warranty)
	for _, supplier := range suppliers {
		parts, err := s.repos.Part.GetBySupplierID(ctx, supplier.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parts for supplier %d: %w", supplier.ID, err)
		}
		partsBySupplier[supplier.ID] = parts

		for _, part := range parts {
			rows, err := s.repos.Warranty.GetByPartID(ctx, part.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to get claims for part %d: %w", part.ID, err)
			}
			claimsByPart[part.ID] = rows
		}
	}

	report := analytics.ProvinceSupplierReport(province, suppliers, partsBySupplier, claimsByPart)
	s.count(ctx, "supplier_by_province")
	return &report, nil
}
