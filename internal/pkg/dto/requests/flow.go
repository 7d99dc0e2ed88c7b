package requests

// UpdatePatientFlowRequest is the engine entrypoint: a status change
// optionally combined with a transfer request.
type UpdatePatientFlowRequest struct {
	Status      string                  `json:"status" validate:"omitempty,oneof=Waiting 'In Progress' Completed Admitted Discharged"`
	Description string                  `json:"description"`
	Transfer    *TransferTargetRequest  `json:"transfer" validate:"omitempty"`
}

type TransferTargetRequest struct {
	Type     string `json:"type" validate:"required,transfer_type"`
	TargetID string `json:"targetId" validate:"required"`
}

type AdvanceStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=Pre-operative Anaesthetic Surgical Recovery"`
	Notes string `json:"notes"`
}

// TheatreWardTransferRequest moves an OT-resident patient straight into
// a ward, bypassing the pending phase.
type TheatreWardTransferRequest struct {
	WardID string `json:"wardId" validate:"required"`
}

// FulfillWardTransferRequest consumes a pending ward transfer. BedID is
// optional, the first unoccupied bed of the ward is taken otherwise.
type FulfillWardTransferRequest struct {
	WardID string `json:"wardId" validate:"required"`
	BedID  string `json:"bedId"`
}

type AdmitPatientRequest struct {
	PatientID string `json:"patientId" validate:"required"`
}
