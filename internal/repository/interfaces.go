package repository

import (
	"context"
	"time"

	"github.com/rmfarias/warranty-service/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenRepository defines methods for persisted token-pair operations
type TokenRepository interface {
	Create(ctx context.Context, token *domain.Token) error
	GetByUserAndRefreshHash(ctx context.Context, userID int64, refreshHash string) (*domain.Token, error)
	Revoke(ctx context.Context, tokenID int64) error
	RevokeByRefreshHash(ctx context.Context, refreshHash string) error
	DeleteExpired(ctx context.Context) error
}

// VehicleRepository defines methods for vehicle operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByModel(ctx context.Context, model string) ([]domain.Vehicle, error)
	GetByPropulsion(ctx context.Context, propulsion string) ([]domain.Vehicle, error)
	GetByYear(ctx context.Context, year int) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int64, fields VehicleUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PartRepository defines methods for part operations
type PartRepository interface {
	Create(ctx context.Context, part *domain.Part) error
	List(ctx context.Context) ([]domain.Part, error)
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	GetByName(ctx context.Context, name string) (*domain.Part, error)
	GetBySupplierID(ctx context.Context, supplierID int64) ([]domain.Part, error)
	Update(ctx context.Context, id int64, fields PartUpdate) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// SupplierRepository defines methods for supplier operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetByName(ctx context.Context, name string) (*domain.Supplier, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Supplier, error)
	GetByLocationIDs(ctx context.Context, locationIDs []int64) ([]domain.Supplier, error)
	Update(ctx context.Context, id int64, fields SupplierUpdate) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// LocationRepository defines methods for location operations
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	List(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	GetByMarket(ctx context.Context, market string) ([]domain.Location, error)
	GetByCountry(ctx context.Context, country string) ([]domain.Location, error)
	GetByProvince(ctx context.Context, province string) ([]domain.Location, error)
	GetByCity(ctx context.Context, city string) ([]domain.Location, error)
	Update(ctx context.Context, id int64, fields LocationUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PurchaseRepository defines methods for purchase operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	List(ctx context.Context) ([]domain.Purchase, error)
	GetByID(ctx context.Context, id int64) (*domain.Purchase, error)
	GetByType(ctx context.Context, purchaseType string) ([]domain.Purchase, error)
	GetByDate(ctx context.Context, date time.Time) ([]domain.Purchase, error)
	Update(ctx context.Context, id int64, fields PurchaseUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// WarrantyRepository defines methods for warranty claim operations
type WarrantyRepository interface {
	Create(ctx context.Context, warranty *domain.Warranty) error
	List(ctx context.Context) ([]domain.Warranty, error)
	GetByClaimKey(ctx context.Context, claimKey int64) (*domain.Warranty, error)
	GetByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Warranty, error)
	GetByPartID(ctx context.Context, partID int64) ([]domain.Warranty, error)
	Update(ctx context.Context, claimKey int64, fields WarrantyUpdate) (int64, error)
	Delete(ctx context.Context, claimKey int64) (int64, error)
}
