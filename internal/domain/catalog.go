package domain

// Part represents a vehicle part supplied by a supplier
type Part struct {
	ID             int64  `json:"id" db:"id"`
	PartName       string `json:"part_name" db:"part_name"`
	LastPurchaseID *int64 `json:"last_purchase_id" db:"last_purchase_id"`
	SupplierID     int64  `json:"supplier_id" db:"supplier_id"`
}

// Supplier represents a parts supplier
type Supplier struct {
	ID           int64  `json:"id" db:"id"`
	SupplierName string `json:"supplier_name" db:"supplier_name"`
	SupplierCPF  string `json:"supplier_cpf" db:"supplier_cpf"`
	LocationID   int64  `json:"location_id" db:"location_id"`
}

// Location represents a market location
type Location struct {
	ID       int64  `json:"id" db:"id"`
	Market   string `json:"market" db:"market"`
	Country  string `json:"country" db:"country"`
	Province string `json:"province" db:"province"`
	City     string `json:"city" db:"city"`
}
