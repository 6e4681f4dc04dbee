package analytics

import "time"

// CountEntry pairs a grouping key with its claim or purchase count.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Distribution extends a count with its percentage of the group total.
type Distribution struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthCount is one bucket of a monthly purchase trend.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// PartCount ranks a part by how often it appears in a purchase set.
type PartCount struct {
	PartID   int64  `json:"part_id"`
	PartName string `json:"part_name"`
	Count    int    `json:"count"`
}

// PartShare ranks a part by claim count relative to the total claims of the
// group.
type PartShare struct {
	PartID     int64   `json:"part_id"`
	PartName   string  `json:"part_name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PurchaseReport summarizes all purchases of a single purchase type.
type PurchaseReport struct {
	PurchaseType  string       `json:"purchase_type"`
	TotalCount    int          `json:"total_count"`
	FirstPurchase time.Time    `json:"first_purchase"`
	LastPurchase  time.Time    `json:"last_purchase"`
	MonthlyTrend  []MonthCount `json:"monthly_trend"`
	TopParts      []PartCount  `json:"top_parts"`
}

// ModelReport summarizes the fleet and warranty history of one vehicle model.
type ModelReport struct {
	Model            string         `json:"model"`
	VehicleCount     int            `json:"vehicle_count"`
	Propulsion       []Distribution `json:"propulsion_distribution"`
	ProductionYears  []Distribution `json:"production_year_distribution"`
	TotalClaims      int            `json:"total_claims"`
	ClaimsPerVehicle float64        `json:"claims_per_vehicle"`
	TopFailingParts  []PartShare    `json:"top_failing_parts"`
}

// PropulsionPartStats describes how one part fails across a propulsion fleet.
type PropulsionPartStats struct {
	PartID              int64    `json:"part_id"`
	PartName            string   `json:"part_name"`
	ClaimCount          int      `json:"claim_count"`
	AffectedVehicles    int      `json:"affected_vehicles"`
	AffectedPercentage  float64  `json:"affected_percentage"`
	AvgClaimsPerVehicle float64  `json:"avg_claims_per_affected_vehicle"`
	Models              []string `json:"models"`
}

// PropulsionTypeReport summarizes warranty pressure on one propulsion type.
type PropulsionTypeReport struct {
	Propulsion   string                `json:"propulsion"`
	VehicleCount int                   `json:"vehicle_count"`
	TotalClaims  int                   `json:"total_claims"`
	Models       []Distribution        `json:"model_distribution"`
	Parts        []PropulsionPartStats `json:"parts"`
}

// SupplierPartStats breaks the claims against one supplied part down by
// vehicle model, propulsion, failure classification and production era.
type SupplierPartStats struct {
	PartID             int64        `json:"part_id"`
	PartName           string       `json:"part_name"`
	TotalClaims        int          `json:"total_claims"`
	ByModel            []CountEntry `json:"by_model"`
	ByPropulsion       []CountEntry `json:"by_propulsion"`
	ByFailure          []CountEntry `json:"by_failure"`
	ByProductionBucket []CountEntry `json:"by_production_bucket"`
	MeanDaysToFailure  float64      `json:"mean_days_to_failure"`
}

// SupplierReport summarizes the warranty record of every part a supplier
// provides.
type SupplierReport struct {
	SupplierID   int64               `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	TotalClaims  int                 `json:"total_claims"`
	Parts        []SupplierPartStats `json:"parts"`
}

// ProvinceSupplierStats is one supplier's slice of a province claim total.
type ProvinceSupplierStats struct {
	SupplierID   int64   `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	PartCount    int     `json:"part_count"`
	TotalClaims  int     `json:"total_claims"`
	ClaimShare   float64 `json:"claim_share"`
}

// ProvinceReport compares the suppliers located in one province by warranty
// claim volume.
type ProvinceReport struct {
	Province      string                  `json:"province"`
	SupplierCount int                     `json:"supplier_count"`
	TotalClaims   int                     `json:"total_claims"`
	Suppliers     []ProvinceSupplierStats `json:"suppliers"`
}
