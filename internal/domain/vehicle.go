package domain

import "time"

// Propulsion types
const (
	PropulsionElectric = "electric"
	PropulsionHybrid   = "hybrid"
	PropulsionGas      = "gas"
)

// ValidPropulsion reports whether p is a known propulsion type.
func ValidPropulsion(p string) bool {
	return p == PropulsionElectric || p == PropulsionHybrid || p == PropulsionGas
}

// Vehicle represents a produced vehicle
type Vehicle struct {
	ID         int64     `json:"id" db:"id"`
	Model      string    `json:"model" db:"model"`
	ProdDate   time.Time `json:"prod_date" db:"prod_date"`
	Year       int       `json:"year" db:"year"`
	Propulsion string    `json:"propulsion" db:"propulsion"`
}
