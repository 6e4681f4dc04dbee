package acceptance

import (
	"net/http"
	"time"

	"github.com/rmfarias/warranty-service/internal/analytics"
)

func (s *Suite) TestPurchasesByTypeReport() {
	admin := s.signupUser("reporter", "reporter@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	pump := s.createPart(token, "water pump", supplier.ID)
	filter := s.createPart(token, "oil filter", supplier.ID)

	march := time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)
	october := time.Date(2023, time.October, 12, 0, 0, 0, 0, time.UTC)

	s.createPurchase(token, "bulk", march, pump.ID)
	s.createPurchase(token, "bulk", march, pump.ID)
	s.createPurchase(token, "bulk", october, filter.ID)
	s.createPurchase(token, "warranty", october, filter.ID)

	resp := s.request(http.MethodGet, "/api/v1/analytics/purchases_by_type/bulk", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report analytics.PurchaseReport
	s.decode(resp, &report)
	s.Equal("bulk", report.PurchaseType)
	s.Equal(3, report.TotalCount)
	s.Require().Len(report.MonthlyTrend, 2)
	s.Equal("2023-03", report.MonthlyTrend[0].Month)
	s.Equal(2, report.MonthlyTrend[0].Count)
	s.Equal("2023-10", report.MonthlyTrend[1].Month)
	s.Equal(1, report.MonthlyTrend[1].Count)
	s.Require().Len(report.TopParts, 2)
	s.Equal("water pump", report.TopParts[0].PartName)
	s.Equal(2, report.TopParts[0].Count)
}

func (s *Suite) TestPurchasesByTypeRejectsUnknownType() {
	admin := s.signupUser("badtype", "badtype@example.com", "admin")

	resp := s.request(http.MethodGet, "/api/v1/analytics/purchases_by_type/lease", nil, admin.AccessToken)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestVehicleModelReport() {
	admin := s.signupUser("modelstats", "modelstats@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "inverter", supplier.ID)
	purchase := s.createPurchase(token, "warranty", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), part.ID)

	electric := s.createVehicle(token, "Falcon", "electric", 2023)
	s.createVehicle(token, "Falcon", "electric", 2023)
	s.createVehicle(token, "Falcon", "hybrid", 2024)

	s.createWarranty(token, electric.ID, part.ID, purchase.ID, location.ID,
		time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC), "inverter fault")

	resp := s.request(http.MethodGet, "/api/v1/analytics/vehicle_model/Falcon", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report analytics.ModelReport
	s.decode(resp, &report)
	s.Equal(3, report.VehicleCount)
	s.Equal(1, report.TotalClaims)
	s.InDelta(0.33, report.ClaimsPerVehicle, 0.001)
	s.Require().Len(report.Propulsion, 2)
	s.Equal("electric", report.Propulsion[0].Key)
	s.InDelta(66.67, report.Propulsion[0].Percentage, 0.001)
	s.Require().Len(report.TopFailingParts, 1)
	s.Equal("inverter", report.TopFailingParts[0].PartName)
}

func (s *Suite) TestVehicleModelReportUnknownModel() {
	admin := s.signupUser("nomodel", "nomodel@example.com", "admin")

	resp := s.request(http.MethodGet, "/api/v1/analytics/vehicle_model/Phantom", nil, admin.AccessToken)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestPropulsionTypeReport() {
	admin := s.signupUser("propstats", "propstats@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "charge port", supplier.ID)
	purchase := s.createPurchase(token, "warranty", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), part.ID)

	vehicle := s.createVehicle(token, "Falcon", "electric", 2023)
	s.createVehicle(token, "Swift", "electric", 2022)

	s.createWarranty(token, vehicle.ID, part.ID, purchase.ID, location.ID,
		time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), "connector wear")

	resp := s.request(http.MethodGet, "/api/v1/analytics/propulsion_type/electric", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report analytics.PropulsionTypeReport
	s.decode(resp, &report)
	s.Equal(2, report.VehicleCount)
	s.Equal(1, report.TotalClaims)
	s.Require().Len(report.Parts, 1)
	s.Equal("charge port", report.Parts[0].PartName)
	s.Equal(1, report.Parts[0].AffectedVehicles)
	s.InDelta(50.0, report.Parts[0].AffectedPercentage, 0.001)
	s.Equal([]string{"Falcon"}, report.Parts[0].Models)
}

func (s *Suite) TestSupplierPartsReport() {
	admin := s.signupUser("supplierstats", "supplierstats@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "coolant valve", supplier.ID)
	purchase := s.createPurchase(token, "warranty", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), part.ID)

	vehicle := s.createVehicle(token, "Falcon", "hybrid", 2023)
	s.createWarranty(token, vehicle.ID, part.ID, purchase.ID, location.ID,
		time.Date(2023, time.March, 25, 0, 0, 0, 0, time.UTC), "leak")

	resp := s.request(http.MethodGet, "/api/v1/analytics/part_by_suppliers/Norte Motors", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report analytics.SupplierReport
	s.decode(resp, &report)
	s.Equal("Norte Motors", report.SupplierName)
	s.Equal(1, report.TotalClaims)
	s.Require().Len(report.Parts, 1)
	s.Equal("coolant valve", report.Parts[0].PartName)
	s.Equal([]analytics.CountEntry{{Key: "leak", Count: 1}}, report.Parts[0].ByFailure)
	s.Equal([]analytics.CountEntry{{Key: "2020-2024", Count: 1}}, report.Parts[0].ByProductionBucket)
	s.InDelta(15.0, report.Parts[0].MeanDaysToFailure, 0.001)
}

func (s *Suite) TestSupplierByProvinceReport() {
	admin := s.signupUser("provincestats", "provincestats@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "wiper motor", supplier.ID)
	purchase := s.createPurchase(token, "warranty", time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC), part.ID)

	vehicle := s.createVehicle(token, "Falcon", "gas", 2021)
	s.createWarranty(token, vehicle.ID, part.ID, purchase.ID, location.ID,
		time.Date(2023, time.May, 5, 0, 0, 0, 0, time.UTC), "motor burnout")

	resp := s.request(http.MethodGet, "/api/v1/analytics/supplier_by_province/Minho", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)

	var report analytics.ProvinceReport
	s.decode(resp, &report)
	s.Equal("Minho", report.Province)
	s.Equal(1, report.SupplierCount)
	s.Equal(1, report.TotalClaims)
	s.Require().Len(report.Suppliers, 1)
	s.Equal("Norte Motors", report.Suppliers[0].SupplierName)
	s.Equal(1, report.Suppliers[0].PartCount)
	s.InDelta(100.0, report.Suppliers[0].ClaimShare, 0.001)
}

func (s *Suite) TestSupplierByProvinceUnknownProvince() {
	admin := s.signupUser("noprovince", "noprovince@example.com", "admin")

	resp := s.request(http.MethodGet, "/api/v1/analytics/supplier_by_province/Atlantis", nil, admin.AccessToken)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
