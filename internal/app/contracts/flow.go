package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

// FlowUsecase is the transfer and stage engine, the single authority for
// changing a patient's location, status and surgery stage. Every
// operation either fully applies or returns an error with no mutation.
type FlowUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*models.Patient, error)

	// UpdatePatientFlow applies a status change and an optional transfer
	// request. Department and OT targets apply immediately, ward targets
	// create a pending sub-record consumed by FulfillWardTransfer.
	UpdatePatientFlow(ctx context.Context, patientID string, request *requests.UpdatePatientFlowRequest) (*models.Patient, error)

	AdvanceSurgeryStage(ctx context.Context, patientID string, request *requests.AdvanceStageRequest) (*models.Patient, error)
	CompleteSurgery(ctx context.Context, patientID string) (*models.Patient, error)

	// TransferToWard is the OT-origin immediate path, the patient is
	// admitted even when no bed is free.
	TransferToWard(ctx context.Context, patientID string, request *requests.TheatreWardTransferRequest) (*responses.AdmissionResult, error)

	FulfillWardTransfer(ctx context.Context, patientID string, request *requests.FulfillWardTransferRequest) (*responses.AdmissionResult, error)

	AdmitToBed(ctx context.Context, bedID, patientID string) (*models.Bed, error)
	DischargeBed(ctx context.Context, bedID string) (*models.Bed, error)
}
