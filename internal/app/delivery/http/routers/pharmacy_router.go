package routers

import (
	"fmt"
	"medflow-service/internal/app/services/core/pharmacy"
	"medflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPharmacyRoutes(router chi.Router, pharmacyController *pharmacy.PharmacyController) {
	router.Get("/", pharmacyController.GetAllDrugs)
	router.Post("/", pharmacyController.CreateDrug)
	router.Get("/search", pharmacyController.SearchDrugs)
	router.Get("/bills", pharmacyController.GetAllBills)
	router.Post("/bills", pharmacyController.CreateBill)
	router.Get(fmt.Sprintf("/bills/{%s}", constvars.URLParamBillID), pharmacyController.GetBillByID)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamDrugID), pharmacyController.GetDrugByID)
	router.Put(fmt.Sprintf("/{%s}/stock", constvars.URLParamDrugID), pharmacyController.UpdateStock)
}
