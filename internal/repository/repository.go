package repository

import (
	"github.com/rmfarias/warranty-service/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Token    TokenRepository
	Vehicle  VehicleRepository
	Part     PartRepository
	Supplier SupplierRepository
	Location LocationRepository
	Purchase PurchaseRepository
	Warranty WarrantyRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Token:    NewTokenRepository(db),
		Vehicle:  NewVehicleRepository(db),
		Part:     NewPartRepository(db),
		Supplier: NewSupplierRepository(db),
		Location: NewLocationRepository(db),
		Purchase: NewPurchaseRepository(db),
		Warranty: NewWarrantyRepository(db),
	}
}
