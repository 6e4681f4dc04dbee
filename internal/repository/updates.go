package repository

import (
	"fmt"
	"strings"
	"time"
)

// Update structs carry the optional fields of a partial update. Only non-nil
// fields are written; a fully nil struct updates nothing and reports zero
// rows affected.

type VehicleUpdate struct {
	Model      *string
	ProdDate   *time.Time
	Year       *int
	Propulsion *string
}

type PartUpdate struct {
	PartName       *string
	LastPurchaseID *int64
}

type SupplierUpdate struct {
	SupplierName *string
	SupplierCPF  *string
}

type LocationUpdate struct {
	Market   *string
	Country  *string
	Province *string
	City     *string
}

type PurchaseUpdate struct {
	PurchaseType *string
	PurchaseDate *time.Time
}

type WarrantyUpdate struct {
	RepairDate        *time.Time
	ClientComment     *string
	TechComment       *string
	ClassifiedFailure *string
}

// setClause builds the SET fragment of an UPDATE from column/value pairs,
// numbering placeholders from firstArg. Columns and values are parallel
// slices already filtered down to the assigned fields.
func setClause(columns []string, firstArg int) string {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, firstArg+i)
	}
	return strings.Join(assignments, ", ")
}

func (u VehicleUpdate) fields() ([]string, []any) {
	var cols []string
	var args []any
	if u.Model != nil {
		cols, args = append(cols, "model"), append(args, *u.Model)
	}
	if u.ProdDate != nil {
		cols, args = append(cols, "prod_date"), append(args, *u.ProdDate)
	}
	if u.Year != nil {
		cols, args = append(cols, "year"), append(args, *u.Year)
	}
	if u.Propulsion != nil {
		cols, args = append(cols, "propulsion"), append(args, *u.Propulsion)
	}
	return cols, args
}

func (u PartUpdate) fields() ([]string, []any) {
	var cols []string
	var args []any
	if u.PartName != nil {
		cols, args = append(cols, "part_name"), append(args, *u.PartName)
	}
	if u.LastPurchaseID != nil {
		cols, args = append(cols, "last_purchase_id"), append(args, *u.LastPurchaseID)
	}
	return cols, args
}

func (u SupplierUpdate) fields() ([]string, []any) {
	var cols []string
	var args []any
	if u.SupplierName != nil {
		cols, args = append(cols, "supplier_name"), append(args, *u.SupplierName)
	}
	if u.SupplierCPF != nil {
		cols, args = append(cols, "supplier_cpf"), append(args, *u.SupplierCPF)
	}
	return cols, args
}

func (u LocationUpdate) fields() ([]string, []any) {
	var cols []string
	var args []any
	if u.Market != nil {
		cols, args = append(cols, "market"), append(args, *u.Market)
	}
	if u.Country != nil {
		cols, args = append(cols, "country"), append(args, *u.Country)
	}
	if u.Province != nil {
		cols, args = append(cols, "province"), append(args, *u.Province)
	}
	if u.City != nil {
		cols, args = append(cols, "city"), append(args, *u.City)
	}
	return cols, args
}

func (u PurchaseUpdate) fields() ([]string, []any) {
	var cols []string
	var args []any
	if u.PurchaseType != nil {
		cols, args = append(cols, "purchase_type"), append(args, *u.PurchaseType)
	}
	if u.PurchaseDate != nil {
		cols, args = append(cols, "purchase_date"), append(args, *u.PurchaseDate)
	}
	return cols, args
}

func (u WarrantyUpdate) fields() ([]string, []any) {
	var cols []string
	var args []any
	if u.RepairDate != nil {
		cols, args = append(cols, "repair_date"), append(args, *u.RepairDate)
	}
	if u.ClientComment != nil {
		cols, args = append(cols, "client_comment"), append(args, *u.ClientComment)
	}
	if u.TechComment != nil {
		cols, args = append(cols, "tech_comment"), append(args, *u.TechComment)
	}
	if u.ClassifiedFailure != nil {
		cols, args = append(cols, "classified_failure"), append(args, *u.ClassifiedFailure)
	}
	return cols, args
}
