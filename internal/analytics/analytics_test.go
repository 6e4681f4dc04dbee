package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmfarias/warranty-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPurchaseTypeReport(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: 1, PurchaseType: domain.PurchaseTypeBulk, PurchaseDate: date(2023, 3, 1), PartID: 1},
		{ID: 2, PurchaseType: domain.PurchaseTypeBulk, PurchaseDate: date(2023, 3, 1), PartID: 1},
		{ID: 3, PurchaseType: domain.PurchaseTypeBulk, PurchaseDate: date(2023, 10, 1), PartID: 3},
	}
	partNames := map[int64]string{1: "battery", 3: "inverter"}

	report := PurchaseTypeReport(domain.PurchaseTypeBulk, purchases, partNames)

	assert.Equal(t, 3, report.TotalCount)
	assert.Equal(t, date(2023, 3, 1), report.FirstPurchase)
	assert.Equal(t, date(2023, 10, 1), report.LastPurchase)
	assert.Equal(t, []MonthCount{
		{Month: "2023-03", Count: 2},
		{Month: "2023-10", Count: 1},
	}, report.MonthlyTrend)
	assert.Equal(t, []PartCount{
		{PartID: 1, PartName: "battery", Count: 2},
		{PartID: 3, PartName: "inverter", Count: 1},
	}, report.TopParts)
}

func TestPurchaseTypeReportMonthsSortedAscending(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: 1, PurchaseDate: date(2024, 1, 5), PartID: 1},
		{ID: 2, PurchaseDate: date(2023, 11, 5), PartID: 1},
		{ID: 3, PurchaseDate: date(2023, 2, 5), PartID: 1},
	}

	report := PurchaseTypeReport(domain.PurchaseTypeBulk, purchases, nil)

	require.Len(t, report.MonthlyTrend, 3)
	assert.Equal(t, "2023-02", report.MonthlyTrend[0].Month)
	assert.Equal(t, "2023-11", report.MonthlyTrend[1].Month)
	assert.Equal(t, "2024-01", report.MonthlyTrend[2].Month)
	assert.Equal(t, date(2023, 2, 5), report.FirstPurchase)
	assert.Equal(t, date(2024, 1, 5), report.LastPurchase)
}

func TestPurchaseTypeReportTopPartsTieBreak(t *testing.T) {
	// Six parts with one purchase each: the ranking keeps input order and
	// truncates to five.
	var purchases []domain.Purchase
	for id := int64(10); id < 16; id++ {
		purchases = append(purchases, domain.Purchase{ID: id, PurchaseDate: date(2023, 1, 1), PartID: id})
	}

	report := PurchaseTypeReport(domain.PurchaseTypeBulk, purchases, nil)

	require.Len(t, report.TopParts, 5)
	for i, pc := range report.TopParts {
		assert.Equal(t, int64(10+i), pc.PartID)
		assert.Equal(t, 1, pc.Count)
	}

	again := PurchaseTypeReport(domain.PurchaseTypeBulk, purchases, nil)
	assert.Equal(t, report.TopParts, again.TopParts)
}

func TestVehicleModelReport(t *testing.T) {
	vehicles := []domain.Vehicle{
		{ID: 1, Model: "ZX", Year: 2021, Propulsion: domain.PropulsionElectric},
		{ID: 2, Model: "ZX", Year: 2021, Propulsion: domain.PropulsionElectric},
		{ID: 3, Model: "ZX", Year: 2019, Propulsion: domain.PropulsionGas},
		{ID: 4, Model: "ZX", Year: 2023, Propulsion: domain.PropulsionHybrid},
	}
	claims := map[int64][]domain.Warranty{
		1: {{ClaimKey: 1, VehicleID: 1, PartID: 7}, {ClaimKey: 2, VehicleID: 1, PartID: 8}},
		3: {{ClaimKey: 3, VehicleID: 3, PartID: 7}},
	}
	partNames := map[int64]string{7: "brake pad", 8: "sensor"}

	report := VehicleModelReport("ZX", vehicles, claims, partNames)

	assert.Equal(t, 4, report.VehicleCount)
	assert.Equal(t, []Distribution{
		{Key: domain.PropulsionElectric, Count: 2, Percentage: 50},
		{Key: domain.PropulsionGas, Count: 1, Percentage: 25},
		{Key: domain.PropulsionHybrid, Count: 1, Percentage: 25},
	}, report.Propulsion)
	assert.Equal(t, []Distribution{
		{Key: "2019", Count: 1, Percentage: 25},
		{Key: "2021", Count: 2, Percentage: 50},
		{Key: "2023", Count: 1, Percentage: 25},
	}, report.ProductionYears)
	assert.Equal(t, 3, report.TotalClaims)
	assert.Equal(t, 0.75, report.ClaimsPerVehicle)
	assert.Equal(t, []PartShare{
		{PartID: 7, PartName: "brake pad", Count: 2, Percentage: 66.67},
		{PartID: 8, PartName: "sensor", Count: 1, Percentage: 33.33},
	}, report.TopFailingParts)
}

func TestVehicleModelReportNoClaims(t *testing.T) {
	vehicles := []domain.Vehicle{
		{ID: 1, Model: "ZX", Year: 2021, Propulsion: domain.PropulsionElectric},
	}

	report := VehicleModelReport("ZX", vehicles, nil, nil)

	assert.Equal(t, 0, report.TotalClaims)
	assert.Equal(t, float64(0), report.ClaimsPerVehicle)
	assert.Empty(t, report.TopFailingParts)
}

func TestPropulsionTypeReport(t *testing.T) {
	vehicles := []domain.Vehicle{
		{ID: 1, Model: "ZX", Propulsion: domain.PropulsionElectric},
		{ID: 2, Model: "QR", Propulsion: domain.PropulsionElectric},
		{ID: 3, Model: "ZX", Propulsion: domain.PropulsionElectric},
		{ID: 4, Model: "QR", Propulsion: domain.PropulsionElectric},
	}
	claims := map[int64][]domain.Warranty{
		1: {{ClaimKey: 1, VehicleID: 1, PartID: 7}, {ClaimKey: 2, VehicleID: 1, PartID: 7}},
		2: {{ClaimKey: 3, VehicleID: 2, PartID: 7}},
	}
	partNames := map[int64]string{7: "battery"}

	report := PropulsionTypeReportFor(domain.PropulsionElectric, vehicles, claims, partNames)

	assert.Equal(t, 4, report.VehicleCount)
	assert.Equal(t, 3, report.TotalClaims)
	assert.Equal(t, []Distribution{
		{Key: "ZX", Count: 2, Percentage: 50},
		{Key: "QR", Count: 2, Percentage: 50},
	}, report.Models)

	require.Len(t, report.Parts, 1)
	part := report.Parts[0]
	assert.Equal(t, int64(7), part.PartID)
	assert.Equal(t, 3, part.ClaimCount)
	assert.Equal(t, 2, part.AffectedVehicles)
	assert.Equal(t, float64(50), part.AffectedPercentage)
	assert.Equal(t, 1.5, part.AvgClaimsPerVehicle)
	assert.Equal(t, []string{"ZX", "QR"}, part.Models)
}

func TestSupplierPartsReport(t *testing.T) {
	supplier := &domain.Supplier{ID: 5, SupplierName: "Acme"}
	parts := []domain.Part{
		{ID: 7, PartName: "battery", SupplierID: 5},
		{ID: 8, PartName: "sensor", SupplierID: 5},
	}
	vehicles := map[int64]domain.Vehicle{
		1: {ID: 1, Model: "ZX", Propulsion: domain.PropulsionElectric, Year: 2021, ProdDate: date(2021, 1, 1)},
		2: {ID: 2, Model: "QR", Propulsion: domain.PropulsionGas, Year: 2018, ProdDate: date(2018, 6, 1)},
	}
	claims := map[int64][]domain.Warranty{
		8: {
			{ClaimKey: 1, VehicleID: 1, PartID: 8, RepairDate: date(2021, 1, 11), ClassifiedFailure: "short circuit"},
			{ClaimKey: 2, VehicleID: 2, PartID: 8, RepairDate: date(2018, 6, 21), ClassifiedFailure: "corrosion"},
			{ClaimKey: 3, VehicleID: 2, PartID: 8, RepairDate: date(2018, 6, 1), ClassifiedFailure: "corrosion"},
		},
		7: {
			{ClaimKey: 4, VehicleID: 1, PartID: 7, RepairDate: date(2022, 1, 1), ClassifiedFailure: "cell degradation"},
		},
	}

	report := SupplierPartsReport(supplier, parts, claims, vehicles)

	assert.Equal(t, int64(5), report.SupplierID)
	assert.Equal(t, 4, report.TotalClaims)
	require.Len(t, report.Parts, 2)

	// Sorted by claim volume, sensor first.
	sensor := report.Parts[0]
	assert.Equal(t, int64(8), sensor.PartID)
	assert.Equal(t, 3, sensor.TotalClaims)
	assert.Equal(t, []CountEntry{{Key: "ZX", Count: 1}, {Key: "QR", Count: 2}}, sensor.ByModel)
	assert.Equal(t, []CountEntry{{Key: domain.PropulsionElectric, Count: 1}, {Key: domain.PropulsionGas, Count: 2}}, sensor.ByPropulsion)
	assert.Equal(t, []CountEntry{{Key: "short circuit", Count: 1}, {Key: "corrosion", Count: 2}}, sensor.ByFailure)
	assert.Equal(t, []CountEntry{{Key: "2015-2019", Count: 2}, {Key: "2020-2024", Count: 1}}, sensor.ByProductionBucket)
	// Claim 3 has a zero-day delta and is excluded: (10 + 20) / 2.
	assert.Equal(t, float64(15), sensor.MeanDaysToFailure)

	battery := report.Parts[1]
	assert.Equal(t, int64(7), battery.PartID)
	assert.Equal(t, 1, battery.TotalClaims)
	assert.Equal(t, float64(365), battery.MeanDaysToFailure)
}

func TestSupplierPartsReportNoPositiveDeltas(t *testing.T) {
	supplier := &domain.Supplier{ID: 5, SupplierName: "Acme"}
	parts := []domain.Part{{ID: 7, PartName: "battery", SupplierID: 5}}
	vehicles := map[int64]domain.Vehicle{
		1: {ID: 1, Model: "ZX", Year: 2021, ProdDate: date(2021, 5, 1)},
	}
	claims := map[int64][]domain.Warranty{
		7: {{ClaimKey: 1, VehicleID: 1, PartID: 7, RepairDate: date(2021, 4, 1)}},
	}

	report := SupplierPartsReport(supplier, parts, claims, vehicles)

	require.Len(t, report.Parts, 1)
	assert.Equal(t, float64(0), report.Parts[0].MeanDaysToFailure)
}

func TestProductionBucket(t *testing.T) {
	assert.Equal(t, "2020-2024", productionBucket(2020))
	assert.Equal(t, "2020-2024", productionBucket(2023))
	assert.Equal(t, "2020-2024", productionBucket(2024))
	assert.Equal(t, "2015-2019", productionBucket(2019))
}

func TestProvinceSupplierReport(t *testing.T) {
	suppliers := []domain.Supplier{
		{ID: 1, SupplierName: "Acme"},
		{ID: 2, SupplierName: "Borealis"},
	}
	parts := map[int64][]domain.Part{
		1: {{ID: 7, SupplierID: 1}},
		2: {{ID: 8, SupplierID: 2}, {ID: 9, SupplierID: 2}},
	}
	claims := map[int64][]domain.Warranty{
		7: {{ClaimKey: 1, PartID: 7}},
		8: {{ClaimKey: 2, PartID: 8}, {ClaimKey: 3, PartID: 8}},
		9: {{ClaimKey: 4, PartID: 9}},
	}

	report := ProvinceSupplierReport("Ontario", suppliers, parts, claims)

	assert.Equal(t, 2, report.SupplierCount)
	assert.Equal(t, 4, report.TotalClaims)
	require.Len(t, report.Suppliers, 2)
	assert.Equal(t, ProvinceSupplierStats{
		SupplierID: 2, SupplierName: "Borealis", PartCount: 2, TotalClaims: 3, ClaimShare: 75,
	}, report.Suppliers[0])
	assert.Equal(t, ProvinceSupplierStats{
		SupplierID: 1, SupplierName: "Acme", PartCount: 1, TotalClaims: 1, ClaimShare: 25,
	}, report.Suppliers[1])
}

func TestProvinceSupplierReportZeroClaims(t *testing.T) {
	suppliers := []domain.Supplier{{ID: 1, SupplierName: "Acme"}}

	report := ProvinceSupplierReport("Ontario", suppliers, nil, nil)

	require.Len(t, report.Suppliers, 1)
	assert.Equal(t, float64(0), report.Suppliers[0].ClaimShare)
}

func TestPercentageZeroDenominator(t *testing.T) {
	assert.Equal(t, float64(0), percentage(5, 0))
	assert.Equal(t, 66.67, percentage(2, 3))
}
