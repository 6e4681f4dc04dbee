package domain

import "time"

// Purchase types distinguishing routine stock purchases from warranty-driven
// replacement purchases.
const (
	PurchaseTypeBulk     = "bulk"
	PurchaseTypeWarranty = "warranty"
)

// ValidPurchaseType reports whether t is a known purchase type.
func ValidPurchaseType(t string) bool {
	return t == PurchaseTypeBulk || t == PurchaseTypeWarranty
}

// Purchase represents a part purchase, immutable after creation except for
// admin corrections.
type Purchase struct {
	ID           int64     `json:"id" db:"id"`
	PurchaseType string    `json:"purchase_type" db:"purchase_type"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	PartID       int64     `json:"part_id" db:"part_id"`
}
