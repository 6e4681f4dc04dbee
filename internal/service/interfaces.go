package service

import (
	"context"
	"time"

	"github.com/rmfarias/warranty-service/internal/analytics"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
)

// AuthService defines methods for authentication operations
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID int64, refreshToken string) error
	GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	ValidateToken(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// VehicleService defines methods for vehicle operations
type VehicleService interface {
	Create(ctx context.Context, req *dto.CreateVehicleRequest) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByModel(ctx context.Context, model string) ([]domain.Vehicle, error)
	GetByPropulsion(ctx context.Context, propulsion string) ([]domain.Vehicle, error)
	GetByYear(ctx context.Context, year int) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int64, req *dto.UpdateVehicleRequest) error
	Delete(ctx context.Context, id int64) error
}

// PartService defines methods for part operations
type PartService interface {
	Create(ctx context.Context, req *dto.CreatePartRequest) (*domain.Part, error)
	List(ctx context.Context) ([]domain.Part, error)
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	GetByName(ctx context.Context, name string) (*domain.Part, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePartRequest) error
	DeleteByName(ctx context.Context, name string) error
}

// SupplierService defines methods for supplier operations
type SupplierService interface {
	Create(ctx context.Context, req *dto.CreateSupplierRequest) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetByName(ctx context.Context, name string) (*domain.Supplier, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Supplier, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSupplierRequest) error
	DeleteByName(ctx context.Context, name string) error
}

// LocationService defines methods for location operations
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	GetByMarket(ctx context.Context, market string) ([]domain.Location, error)
	GetByCountry(ctx context.Context, country string) ([]domain.Location, error)
	GetByProvince(ctx context.Context, province string) ([]domain.Location, error)
	GetByCity(ctx context.Context, city string) ([]domain.Location, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) error
	Delete(ctx context.Context, id int64) error
}

// PurchaseService defines methods for purchase operations
type PurchaseService interface {
	Create(ctx context.Context, req *dto.CreatePurchaseRequest) (*domain.Purchase, error)
	List(ctx context.Context) ([]domain.Purchase, error)
	GetByID(ctx context.Context, id int64) (*domain.Purchase, error)
	GetByType(ctx context.Context, purchaseType string) ([]domain.Purchase, error)
	GetByDate(ctx context.Context, date string) ([]domain.Purchase, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePurchaseRequest) error
	Delete(ctx context.Context, id int64) error
}

// WarrantyService defines methods for warranty claim operations
type WarrantyService interface {
	Create(ctx context.Context, req *dto.CreateWarrantyRequest) (*domain.Warranty, error)
	List(ctx context.Context) ([]domain.Warranty, error)
	GetByClaimKey(ctx context.Context, claimKey int64) (*domain.Warranty, error)
	Update(ctx context.Context, claimKey int64, req *dto.UpdateWarrantyRequest) error
	Delete(ctx context.Context, claimKey int64) error
}

// AnalyticsService defines the reporting operations
type AnalyticsService interface {
	PurchasesByType(ctx context.Context, purchaseType string) (*analytics.PurchaseReport, error)
	VehicleModel(ctx context.Context, model string) (*analytics.ModelReport, error)
	PropulsionType(ctx context.Context, propulsion string) (*analytics.PropulsionTypeReport, error)
	SupplierParts(ctx context.Context, supplierName string) (*analytics.SupplierReport, error)
	SupplierByProvince(ctx context.Context, province string) (*analytics.ProvinceReport, error)
}

// TokenBlacklist is the revocation check consulted on every token use.
type TokenBlacklist interface {
	AddToken(ctx context.Context, tokenHash string, expiry time.Duration) error
	IsTokenBlacklisted(ctx context.Context, tokenHash string) (bool, error)
}
