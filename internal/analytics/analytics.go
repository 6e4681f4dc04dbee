// Package analytics computes warranty and purchase reports from rows already
// fetched by the caller. Every function here is pure: no I/O, no clock, and
// deterministic output for the same input order.
package analytics

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rmfarias/warranty-service/internal/domain"
)

const topPartsLimit = 5

// partCounter tallies claim or purchase counts per part id, preserving
// first-seen order for tie-breaking.
type partCounter struct {
	counts map[int64]int
	order  []int64
}

func newPartCounter() *partCounter {
	return &partCounter{counts: make(map[int64]int)}
}

func (c *partCounter) add(partID int64) {
	if _, ok := c.counts[partID]; !ok {
		c.order = append(c.order, partID)
	}
	c.counts[partID]++
}

// topCounts returns up to limit parts by count descending, ties broken by
// first-seen order.
func (c *partCounter) topCounts(limit int, partNames map[int64]string) []PartCount {
	ids := make([]int64, len(c.order))
	copy(ids, c.order)
	sort.SliceStable(ids, func(i, j int) bool { return c.counts[ids[i]] > c.counts[ids[j]] })

	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]PartCount, 0, len(ids))
	for _, id := range ids {
		out = append(out, PartCount{PartID: id, PartName: partNames[id], Count: c.counts[id]})
	}
	return out
}

// topShares is topCounts with each count expressed as a percentage of total.
func (c *partCounter) topShares(limit, total int, partNames map[int64]string) []PartShare {
	counts := c.topCounts(limit, partNames)
	out := make([]PartShare, 0, len(counts))
	for _, pc := range counts {
		out = append(out, PartShare{
			PartID:     pc.PartID,
			PartName:   pc.PartName,
			Count:      pc.Count,
			Percentage: percentage(pc.Count, total),
		})
	}
	return out
}

// PurchaseTypeReport builds the monthly trend and top-part ranking for the
// purchases of a single type. The caller rejects an empty input set before
// calling.
func PurchaseTypeReport(purchaseType string, purchases []domain.Purchase, partNames map[int64]string) PurchaseReport {
	report := PurchaseReport{
		PurchaseType: purchaseType,
		TotalCount:   len(purchases),
	}
	if len(purchases) == 0 {
		return report
	}

	months := newCounter()
	parts := newPartCounter()
	report.FirstPurchase = purchases[0].PurchaseDate
	report.LastPurchase = purchases[0].PurchaseDate

	for _, p := range purchases {
		months.add(p.PurchaseDate.Format("2006-01"))
		parts.add(p.PartID)
		if p.PurchaseDate.Before(report.FirstPurchase) {
			report.FirstPurchase = p.PurchaseDate
		}
		if p.PurchaseDate.After(report.LastPurchase) {
			report.LastPurchase = p.PurchaseDate
		}
	}

	for _, e := range months.sortedEntries() {
		report.MonthlyTrend = append(report.MonthlyTrend, MonthCount{Month: e.Key, Count: e.Count})
	}
	report.TopParts = parts.topCounts(topPartsLimit, partNames)
	return report
}

// VehicleModelReport builds the propulsion and production-year distributions
// for one model plus its warranty-failure ranking.
func VehicleModelReport(model string, vehicles []domain.Vehicle, claimsByVehicle map[int64][]domain.Warranty, partNames map[int64]string) ModelReport {
	report := ModelReport{
		Model:        model,
		VehicleCount: len(vehicles),
	}

	propulsion := newCounter()
	years := newCounter()
	failingParts := newPartCounter()

	for _, v := range vehicles {
		propulsion.add(v.Propulsion)
		years.add(strconv.Itoa(v.Year))
		for _, claim := range claimsByVehicle[v.ID] {
			failingParts.add(claim.PartID)
			report.TotalClaims++
		}
	}

	report.Propulsion = propulsion.distributions(len(vehicles))
	report.ProductionYears = yearDistributions(years, len(vehicles))
	if len(vehicles) > 0 {
		report.ClaimsPerVehicle = round2(float64(report.TotalClaims) / float64(len(vehicles)))
	}
	report.TopFailingParts = failingParts.topShares(topPartsLimit, report.TotalClaims, partNames)
	return report
}

// yearDistributions sorts the year tallies ascending by numeric year.
func yearDistributions(years *counter, total int) []Distribution {
	out := years.distributions(total)
	sort.Slice(out, func(i, j int) bool {
		yi, _ := strconv.Atoi(out[i].Key)
		yj, _ := strconv.Atoi(out[j].Key)
		return yi < yj
	})
	return out
}

// PropulsionTypeReportFor builds the per-part failure statistics for the
// fleet of one propulsion type.
func PropulsionTypeReportFor(propulsion string, vehicles []domain.Vehicle, claimsByVehicle map[int64][]domain.Warranty, partNames map[int64]string) PropulsionTypeReport {
	report := PropulsionTypeReport{
		Propulsion:   propulsion,
		VehicleCount: len(vehicles),
	}

	models := newCounter()
	claims := newPartCounter()
	affectedVehicles := make(map[int64]map[int64]bool)
	affectedModels := make(map[int64]*counter)

	for _, v := range vehicles {
		models.add(v.Model)
		for _, claim := range claimsByVehicle[v.ID] {
			claims.add(claim.PartID)
			report.TotalClaims++

			if affectedVehicles[claim.PartID] == nil {
				affectedVehicles[claim.PartID] = make(map[int64]bool)
				affectedModels[claim.PartID] = newCounter()
			}
			if !affectedVehicles[claim.PartID][v.ID] {
				affectedVehicles[claim.PartID][v.ID] = true
				affectedModels[claim.PartID].add(v.Model)
			}
		}
	}

	report.Models = models.distributions(len(vehicles))

	for _, pc := range claims.topCounts(len(claims.order), partNames) {
		affected := len(affectedVehicles[pc.PartID])
		stats := PropulsionPartStats{
			PartID:             pc.PartID,
			PartName:           pc.PartName,
			ClaimCount:         pc.Count,
			AffectedVehicles:   affected,
			AffectedPercentage: percentage(affected, len(vehicles)),
		}
		if affected > 0 {
			stats.AvgClaimsPerVehicle = round2(float64(pc.Count) / float64(affected))
		}
		for _, e := range affectedModels[pc.PartID].entries() {
			stats.Models = append(stats.Models, e.Key)
		}
		report.Parts = append(report.Parts, stats)
	}
	return report
}

// SupplierPartsReport breaks the warranty record of a supplier down per part:
// which models, propulsion types, failure classes and production eras the
// claims came from, and how long parts survived before failing.
func SupplierPartsReport(supplier *domain.Supplier, parts []domain.Part, claimsByPart map[int64][]domain.Warranty, vehicleByID map[int64]domain.Vehicle) SupplierReport {
	report := SupplierReport{
		SupplierID:   supplier.ID,
		SupplierName: supplier.SupplierName,
	}

	for _, part := range parts {
		claims := claimsByPart[part.ID]
		stats := SupplierPartStats{
			PartID:      part.ID,
			PartName:    part.PartName,
			TotalClaims: len(claims),
		}

		byModel := newCounter()
		byPropulsion := newCounter()
		byFailure := newCounter()
		byBucket := newCounter()
		var daysTotal float64
		var daysCount int

		for _, claim := range claims {
			byFailure.add(claim.ClassifiedFailure)

			vehicle, ok := vehicleByID[claim.VehicleID]
			if !ok {
				continue
			}
			byModel.add(vehicle.Model)
			byPropulsion.add(vehicle.Propulsion)
			byBucket.add(productionBucket(vehicle.Year))

			days := claim.RepairDate.Sub(vehicle.ProdDate).Hours() / 24
			if days > 0 {
				daysTotal += days
				daysCount++
			}
		}

		stats.ByModel = byModel.entries()
		stats.ByPropulsion = byPropulsion.entries()
		stats.ByFailure = byFailure.entries()
		stats.ByProductionBucket = byBucket.sortedEntries()
		if daysCount > 0 {
			stats.MeanDaysToFailure = round2(daysTotal / float64(daysCount))
		}

		report.TotalClaims += stats.TotalClaims
		report.Parts = append(report.Parts, stats)
	}

	sort.SliceStable(report.Parts, func(i, j int) bool {
		return report.Parts[i].TotalClaims > report.Parts[j].TotalClaims
	})
	return report
}

// productionBucket maps a production year to its 5-year era label, e.g.
// 2023 -> "2020-2024".
func productionBucket(year int) string {
	base := (year / 5) * 5
	return fmt.Sprintf("%d-%d", base, base+4)
}

// ProvinceSupplierReport compares the suppliers of one province by the claim
// volume against the parts they supply.
func ProvinceSupplierReport(province string, suppliers []domain.Supplier, partsBySupplier map[int64][]domain.Part, claimsByPart map[int64][]domain.Warranty) ProvinceReport {
	report := ProvinceReport{
		Province:      province,
		SupplierCount: len(suppliers),
	}

	for _, s := range suppliers {
		parts := partsBySupplier[s.ID]
		stats := ProvinceSupplierStats{
			SupplierID:   s.ID,
			SupplierName: s.SupplierName,
			PartCount:    len(parts),
		}
		for _, part := range parts {
			stats.TotalClaims += len(claimsByPart[part.ID])
		}
		report.TotalClaims += stats.TotalClaims
		report.Suppliers = append(report.Suppliers, stats)
	}

	for i := range report.Suppliers {
		report.Suppliers[i].ClaimShare = percentage(report.Suppliers[i].TotalClaims, report.TotalClaims)
	}

	sort.SliceStable(report.Suppliers, func(i, j int) bool {
		return report.Suppliers[i].TotalClaims > report.Suppliers[j].TotalClaims
	})
	return report
}
