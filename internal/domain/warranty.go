package domain

import "time"

// Warranty represents a repair claim linking a vehicle, part, purchase and
// location.
type Warranty struct {
	ClaimKey          int64     `json:"claim_key" db:"claim_key"`
	VehicleID         int64     `json:"vehicle_id" db:"vehicle_id"`
	PartID            int64     `json:"part_id" db:"part_id"`
	PurchaseID        int64     `json:"purchase_id" db:"purchase_id"`
	LocationID        int64     `json:"location_id" db:"location_id"`
	RepairDate        time.Time `json:"repair_date" db:"repair_date"`
	ClientComment     string    `json:"client_comment" db:"client_comment"`
	TechComment       string    `json:"tech_comment" db:"tech_comment"`
	ClassifiedFailure string    `json:"classified_failure" db:"classified_failure"`
}
