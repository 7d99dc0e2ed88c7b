package departments

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DepartmentController struct {
	DepartmentUsecase contracts.DepartmentUsecase
	Log               *zap.Logger
}

func NewDepartmentController(departmentUsecase contracts.DepartmentUsecase, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{
		DepartmentUsecase: departmentUsecase,
		Log:               logger,
	}
}

func (ctrl *DepartmentController) ListDepartments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	departments, err := ctrl.DepartmentUsecase.ListDepartments(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DepartmentFetchSuccess, departments)
}

func (ctrl *DepartmentController) GetDepartmentBoard(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, constvars.URLParamDepartmentID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	board, err := ctrl.DepartmentUsecase.GetDepartmentBoard(ctx, departmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DepartmentFetchSuccess, board)
}

func (ctrl *DepartmentController) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDepartmentRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	department, err := ctrl.DepartmentUsecase.CreateDepartment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DepartmentCreatedSuccess, department)
}

func (ctrl *DepartmentController) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, constvars.URLParamDepartmentID)

	request := new(requests.UpdateDepartmentRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	department, err := ctrl.DepartmentUsecase.UpdateDepartment(ctx, departmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DepartmentUpdatedSuccess, department)
}

// DeactivateDepartment soft-deletes, the document stays for historical
// patient references.
func (ctrl *DepartmentController) DeactivateDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, constvars.URLParamDepartmentID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.DepartmentUsecase.DeactivateDepartment(ctx, departmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DepartmentDeactivatedSuccess, nil)
}
