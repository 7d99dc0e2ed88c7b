package routers

import (
	"fmt"
	"medflow-service/internal/app/services/core/departments"
	"medflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDepartmentRoutes(router chi.Router, departmentController *departments.DepartmentController) {
	router.Get("/", departmentController.ListDepartments)
	router.Post("/", departmentController.CreateDepartment)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamDepartmentID), departmentController.GetDepartmentBoard)
	router.Patch(fmt.Sprintf("/{%s}", constvars.URLParamDepartmentID), departmentController.UpdateDepartment)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamDepartmentID), departmentController.DeactivateDepartment)
}
