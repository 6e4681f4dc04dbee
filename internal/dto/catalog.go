package dto

import "time"

// Create requests mirror the insertable fields of each entity. Update
// requests carry pointer fields; only non-nil fields are applied.

type CreateVehicleRequest struct {
	Model      string    `json:"model" binding:"required"`
	ProdDate   time.Time `json:"prod_date" binding:"required"`
	Year       int       `json:"year" binding:"required"`
	Propulsion string    `json:"propulsion" binding:"required,oneof=electric hybrid gas"`
}

type UpdateVehicleRequest struct {
	Model      *string    `json:"model"`
	ProdDate   *time.Time `json:"prod_date"`
	Year       *int       `json:"year"`
	Propulsion *string    `json:"propulsion" binding:"omitempty,oneof=electric hybrid gas"`
}

type CreatePartRequest struct {
	PartName       string `json:"part_name" binding:"required"`
	LastPurchaseID *int64 `json:"last_purchase_id"`
	SupplierID     int64  `json:"supplier_id" binding:"required"`
}

type UpdatePartRequest struct {
	PartName       *string `json:"part_name"`
	LastPurchaseID *int64  `json:"last_purchase_id"`
}

type CreateSupplierRequest struct {
	SupplierName string `json:"supplier_name" binding:"required"`
	SupplierCPF  string `json:"supplier_cpf" binding:"required,min=11,max=20"`
	LocationID   int64  `json:"location_id" binding:"required"`
}

type UpdateSupplierRequest struct {
	SupplierName *string `json:"supplier_name"`
	SupplierCPF  *string `json:"supplier_cpf"`
}

type CreateLocationRequest struct {
	Market   string `json:"market" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Province string `json:"province" binding:"required"`
	City     string `json:"city" binding:"required"`
}

type UpdateLocationRequest struct {
	Market   *string `json:"market"`
	Country  *string `json:"country"`
	Province *string `json:"province"`
	City     *string `json:"city"`
}

type CreatePurchaseRequest struct {
	PurchaseType string    `json:"purchase_type" binding:"required,oneof=bulk warranty"`
	PurchaseDate time.Time `json:"purchase_date" binding:"required"`
	PartID       int64     `json:"part_id" binding:"required"`
}

type UpdatePurchaseRequest struct {
	PurchaseType *string    `json:"purchase_type" binding:"omitempty,oneof=bulk warranty"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

type CreateWarrantyRequest struct {
	VehicleID         int64     `json:"vehicle_id" binding:"required"`
	PartID            int64     `json:"part_id" binding:"required"`
	PurchaseID        int64     `json:"purchase_id" binding:"required"`
	LocationID        int64     `json:"location_id" binding:"required"`
	RepairDate        time.Time `json:"repair_date" binding:"required"`
	ClientComment     string    `json:"client_comment"`
	TechComment       string    `json:"tech_comment"`
	ClassifiedFailure string    `json:"classified_failure" binding:"required"`
}

type UpdateWarrantyRequest struct {
	RepairDate        *time.Time `json:"repair_date"`
	ClientComment     *string    `json:"client_comment"`
	TechComment       *string    `json:"tech_comment"`
	ClassifiedFailure *string    `json:"classified_failure"`
}
