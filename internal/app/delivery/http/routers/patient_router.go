package routers

import (
	"fmt"
	"medflow-service/internal/app/services/core/patients"
	"medflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.RegisterPatient)
	router.Get("/", patientController.GetAllPatients)
	router.Get("/recent", patientController.GetRecentPatients)
	router.Get("/search", patientController.SearchPatients)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.GetPatientByID)
	router.Patch(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.UpdatePatient)
	router.Post(fmt.Sprintf("/{%s}/update", constvars.URLParamPatientID), patientController.UpdatePatientFlow)
}
