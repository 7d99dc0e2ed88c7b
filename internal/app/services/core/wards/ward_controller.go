package wards

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

type WardController struct {
	BedPool     contracts.BedPool
	FlowUsecase contracts.FlowUsecase
	Log         *zap.Logger
}

func NewWardController(
	bedPool contracts.BedPool,
	flowUsecase contracts.FlowUsecase,
	logger *zap.Logger,
) *WardController {
	return &WardController{
		BedPool:     bedPool,
		FlowUsecase: flowUsecase,
		Log:         logger,
	}
}

func (ctrl *WardController) ListWards(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WardFetchSuccess, ctrl.BedPool.Wards())
}

func (ctrl *WardController) ListBeds(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BedFetchSuccess, ctrl.BedPool.Beds())
}

func (ctrl *WardController) ListWardBeds(w http.ResponseWriter, r *http.Request) {
	wardID := chi.URLParam(r, constvars.URLParamWardID)

	if _, err := ctrl.BedPool.Ward(wardID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BedFetchSuccess, ctrl.BedPool.WardBeds(wardID))
}

func (ctrl *WardController) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	bedID := chi.URLParam(r, constvars.URLParamBedID)

	request := new(requests.AdmitPatientRequest)
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

	bed, err := ctrl.FlowUsecase.AdmitToBed(ctx, bedID, request.PatientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientAdmitSuccess, bed)
}

func (ctrl *WardController) DischargePatient(w http.ResponseWriter, r *http.Request) {
	bedID := chi.URLParam(r, constvars.URLParamBedID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bed, err := ctrl.FlowUsecase.DischargeBed(ctx, bedID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BedDischargeSuccess, bed)
}

// FulfillTransfer consumes a pending ward transfer created through the
// patient flow endpoint.
func (ctrl *WardController) FulfillTransfer(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.FulfillWardTransferRequest)
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

	result, err := ctrl.FlowUsecase.FulfillWardTransfer(ctx, patientID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WardTransferSuccess, result)
}
