package routers

import (
	"fmt"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/delivery/http/middlewares"
	"medflow-service/internal/app/services/core/departments"
	"medflow-service/internal/app/services/core/ot"
	"medflow-service/internal/app/services/core/patients"
	"medflow-service/internal/app/services/core/pharmacy"
	"medflow-service/internal/app/services/core/wards"
	"medflow-service/internal/app/services/shared/notifier"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	hub *notifier.Hub,
	patientController *patients.PatientController,
	departmentController *departments.DepartmentController,
	otController *ot.OTController,
	wardController *wards.WardController,
	pharmacyController *pharmacy.PharmacyController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	// websocket endpoint sits outside the versioned prefix, dashboards
	// connect once and receive every event
	router.Get("/ws", hub.ServeWS)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/departments", func(r chi.Router) {
				attachDepartmentRoutes(r, departmentController)
			})

			r.Route("/ot", func(r chi.Router) {
				attachOTRoutes(r, otController)
			})

			r.Route("/wards", func(r chi.Router) {
				attachWardRoutes(r, wardController)
			})

			r.Route("/pharmacy", func(r chi.Router) {
				attachPharmacyRoutes(r, pharmacyController)
			})
		})
	})
}
