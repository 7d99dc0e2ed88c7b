package routers

import (
	"fmt"
	"medflow-service/internal/app/services/core/wards"
	"medflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWardRoutes(router chi.Router, wardController *wards.WardController) {
	router.Get("/", wardController.ListWards)
	router.Get("/beds", wardController.ListBeds)
	router.Get(fmt.Sprintf("/{%s}/beds", constvars.URLParamWardID), wardController.ListWardBeds)
	router.Post(fmt.Sprintf("/beds/{%s}/admit", constvars.URLParamBedID), wardController.AdmitPatient)
	router.Post(fmt.Sprintf("/beds/{%s}/discharge", constvars.URLParamBedID), wardController.DischargePatient)
	router.Post(fmt.Sprintf("/transfer/{%s}", constvars.URLParamPatientID), wardController.FulfillTransfer)
}
