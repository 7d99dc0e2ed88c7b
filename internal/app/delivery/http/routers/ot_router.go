package routers

import (
	"fmt"
	"medflow-service/internal/app/services/core/ot"
	"medflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachOTRoutes(router chi.Router, otController *ot.OTController) {
	router.Get("/data", otController.GetAllTheatres)
	router.Get(fmt.Sprintf("/data/{%s}", constvars.URLParamOTID), otController.GetTheatreBoard)
	router.Put(fmt.Sprintf("/patient/{%s}/stage", constvars.URLParamPatientID), otController.AdvanceSurgeryStage)
	router.Put(fmt.Sprintf("/patient/{%s}/complete", constvars.URLParamPatientID), otController.CompleteSurgery)
	router.Put(fmt.Sprintf("/patient/{%s}/transfer", constvars.URLParamPatientID), otController.TransferToWard)
}
