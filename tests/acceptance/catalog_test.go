package acceptance

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/internal/dto"
)

func (s *Suite) createLocation(token, province string) domain.Location {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/api/v1/location", dto.CreateLocationRequest{
		Market:   "EMEA",
		Country:  "Portugal",
		Province: province,
		City:     "Porto",
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var location domain.Location
	s.decode(resp, &location)
	return location
}

func (s *Suite) createSupplier(token, name string, locationID int64) domain.Supplier {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/api/v1/supplier", dto.CreateSupplierRequest{
		SupplierName: name,
		SupplierCPF:  "98765432100",
		LocationID:   locationID,
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var supplier domain.Supplier
	s.decode(resp, &supplier)
	return supplier
}

func (s *Suite) createPart(token, name string, supplierID int64) domain.Part {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/api/v1/part", dto.CreatePartRequest{
		PartName:   name,
		SupplierID: supplierID,
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var part domain.Part
	s.decode(resp, &part)
	return part
}

func (s *Suite) createVehicle(token, model, propulsion string, year int) domain.Vehicle {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/api/v1/vehicle", dto.CreateVehicleRequest{
		Model:      model,
		ProdDate:   time.Date(year, time.March, 10, 0, 0, 0, 0, time.UTC),
		Year:       year,
		Propulsion: propulsion,
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var vehicle domain.Vehicle
	s.decode(resp, &vehicle)
	return vehicle
}

func (s *Suite) createPurchase(token, purchaseType string, date time.Time, partID int64) domain.Purchase {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/api/v1/purchases", dto.CreatePurchaseRequest{
		PurchaseType: purchaseType,
		PurchaseDate: date,
		PartID:       partID,
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var purchase domain.Purchase
	s.decode(resp, &purchase)
	return purchase
}

func (s *Suite) createWarranty(token string, vehicleID, partID, purchaseID, locationID int64, repairDate time.Time, failure string) domain.Warranty {
	s.T().Helper()

	resp := s.request(http.MethodPost, "/api/v1/warranty", dto.CreateWarrantyRequest{
		VehicleID:         vehicleID,
		PartID:            partID,
		PurchaseID:        purchaseID,
		LocationID:        locationID,
		RepairDate:        repairDate,
		ClientComment:     "stopped working",
		TechComment:       "replaced under warranty",
		ClassifiedFailure: failure,
	}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var warranty domain.Warranty
	s.decode(resp, &warranty)
	return warranty
}

func (s *Suite) TestVehicleCRUD() {
	admin := s.signupUser("vehicleadmin", "vehicleadmin@example.com", "admin")
	token := admin.AccessToken

	created := s.createVehicle(token, "Falcon", "electric", 2023)
	s.NotZero(created.ID)
	s.Equal("Falcon", created.Model)

	resp := s.request(http.MethodGet, fmt.Sprintf("/api/v1/vehicle/id/%d", created.ID), nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var fetched domain.Vehicle
	s.decode(resp, &fetched)
	s.Equal(created.ID, fetched.ID)

	resp = s.request(http.MethodGet, "/api/v1/vehicle/model/Falcon", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byModel []domain.Vehicle
	s.decode(resp, &byModel)
	s.Len(byModel, 1)

	resp = s.request(http.MethodGet, "/api/v1/vehicle/propulsion/electric", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byPropulsion []domain.Vehicle
	s.decode(resp, &byPropulsion)
	s.Len(byPropulsion, 1)

	resp = s.request(http.MethodGet, "/api/v1/vehicle/year/2023", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byYear []domain.Vehicle
	s.decode(resp, &byYear)
	s.Len(byYear, 1)

	newModel := "Falcon S"
	resp = s.request(http.MethodPut, fmt.Sprintf("/api/v1/vehicle/id/%d", created.ID), dto.UpdateVehicleRequest{
		Model: &newModel,
	}, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/api/v1/vehicle/id/%d", created.ID), nil, token)
	s.decode(resp, &fetched)
	s.Equal("Falcon S", fetched.Model)

	resp = s.request(http.MethodDelete, fmt.Sprintf("/api/v1/vehicle/id/%d", created.ID), nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/api/v1/vehicle/id/%d", created.ID), nil, token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestVehicleUpdateWithoutFields() {
	admin := s.signupUser("emptyupdate", "emptyupdate@example.com", "admin")
	vehicle := s.createVehicle(admin.AccessToken, "Falcon", "gas", 2022)

	resp := s.request(http.MethodPut, fmt.Sprintf("/api/v1/vehicle/id/%d", vehicle.ID), dto.UpdateVehicleRequest{}, admin.AccessToken)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestVehicleInvalidPropulsionLookup() {
	admin := s.signupUser("propcheck", "propcheck@example.com", "admin")

	resp := s.request(http.MethodGet, "/api/v1/vehicle/propulsion/steam", nil, admin.AccessToken)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestDeleteRequiresElevatedRole() {
	admin := s.signupUser("roleadmin", "roleadmin@example.com", "admin")
	plain := s.signupUser("roleuser", "roleuser@example.com", "user")

	vehicle := s.createVehicle(admin.AccessToken, "Falcon", "hybrid", 2024)

	resp := s.request(http.MethodDelete, fmt.Sprintf("/api/v1/vehicle/id/%d", vehicle.ID), nil, plain.AccessToken)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodDelete, fmt.Sprintf("/api/v1/vehicle/id/%d", vehicle.ID), nil, admin.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestSupplierChain() {
	admin := s.signupUser("chainadmin", "chainadmin@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	s.Equal(location.ID, supplier.LocationID)

	part := s.createPart(token, "brake caliper", supplier.ID)
	s.Equal(supplier.ID, part.SupplierID)
	s.Nil(part.LastPurchaseID)

	resp := s.request(http.MethodGet, "/api/v1/supplier/name/Norte Motors", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byName domain.Supplier
	s.decode(resp, &byName)
	s.Equal(supplier.ID, byName.ID)

	resp = s.request(http.MethodGet, "/api/v1/supplier/cpf/98765432100", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, "/api/v1/location/province/Minho", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byProvince []domain.Location
	s.decode(resp, &byProvince)
	s.Len(byProvince, 1)

	resp = s.request(http.MethodGet, "/api/v1/part/name/brake caliper", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var partByName domain.Part
	s.decode(resp, &partByName)
	s.Equal(part.ID, partByName.ID)

	resp = s.request(http.MethodDelete, "/api/v1/part/name/brake caliper", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/api/v1/part/id/%d", part.ID), nil, token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestSupplierUnknownLocation() {
	admin := s.signupUser("nolocation", "nolocation@example.com", "admin")

	resp := s.request(http.MethodPost, "/api/v1/supplier", dto.CreateSupplierRequest{
		SupplierName: "Ghost Parts",
		SupplierCPF:  "98765432100",
		LocationID:   99999,
	}, admin.AccessToken)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestDuplicatePartName() {
	admin := s.signupUser("dupepart", "dupepart@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	s.createPart(token, "alternator", supplier.ID)

	resp := s.request(http.MethodPost, "/api/v1/part", dto.CreatePartRequest{
		PartName:   "alternator",
		SupplierID: supplier.ID,
	}, token)
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestPurchaseUpdatesPartLastPurchase() {
	admin := s.signupUser("buyer", "buyer@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "water pump", supplier.ID)

	purchase := s.createPurchase(token, "bulk", time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC), part.ID)
	s.Equal("bulk", purchase.PurchaseType)

	resp := s.request(http.MethodGet, fmt.Sprintf("/api/v1/part/id/%d", part.ID), nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var refreshed domain.Part
	s.decode(resp, &refreshed)
	s.Require().NotNil(refreshed.LastPurchaseID)
	s.Equal(purchase.ID, *refreshed.LastPurchaseID)

	resp = s.request(http.MethodGet, "/api/v1/purchases/type/bulk", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byType []domain.Purchase
	s.decode(resp, &byType)
	s.Len(byType, 1)

	resp = s.request(http.MethodGet, "/api/v1/purchases/date/2023-03-05", nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var byDate []domain.Purchase
	s.decode(resp, &byDate)
	s.Len(byDate, 1)

	resp = s.request(http.MethodGet, "/api/v1/purchases/date/not-a-date", nil, token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestWarrantyCRUD() {
	admin := s.signupUser("claims", "claims@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "battery pack", supplier.ID)
	vehicle := s.createVehicle(token, "Falcon", "electric", 2023)
	purchase := s.createPurchase(token, "warranty", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), part.ID)

	claim := s.createWarranty(token, vehicle.ID, part.ID, purchase.ID, location.ID,
		time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), "cell degradation")
	s.NotZero(claim.ClaimKey)

	resp := s.request(http.MethodGet, fmt.Sprintf("/api/v1/warranty/id/%d", claim.ClaimKey), nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	var fetched domain.Warranty
	s.decode(resp, &fetched)
	s.Equal("cell degradation", fetched.ClassifiedFailure)

	newFailure := "thermal runaway"
	resp = s.request(http.MethodPut, fmt.Sprintf("/api/v1/warranty/id/%d", claim.ClaimKey), dto.UpdateWarrantyRequest{
		ClassifiedFailure: &newFailure,
	}, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/api/v1/warranty/id/%d", claim.ClaimKey), nil, token)
	s.decode(resp, &fetched)
	s.Equal("thermal runaway", fetched.ClassifiedFailure)

	resp = s.request(http.MethodDelete, fmt.Sprintf("/api/v1/warranty/id/%d", claim.ClaimKey), nil, token)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.request(http.MethodGet, fmt.Sprintf("/api/v1/warranty/id/%d", claim.ClaimKey), nil, token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *Suite) TestWarrantyUnknownReferences() {
	admin := s.signupUser("badrefs", "badrefs@example.com", "admin")
	token := admin.AccessToken

	location := s.createLocation(token, "Minho")
	supplier := s.createSupplier(token, "Norte Motors", location.ID)
	part := s.createPart(token, "headlight", supplier.ID)
	purchase := s.createPurchase(token, "bulk", time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), part.ID)

	resp := s.request(http.MethodPost, "/api/v1/warranty", dto.CreateWarrantyRequest{
		VehicleID:         99999,
		PartID:            part.ID,
		PurchaseID:        purchase.ID,
		LocationID:        location.ID,
		RepairDate:        time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		ClassifiedFailure: "condensation",
	}, token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
