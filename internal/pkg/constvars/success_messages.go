package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientCreatedSuccess = "patient registered successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientFetchSuccess   = "patients fetched successfully"

	// Flow messages
	TransferRequestedSuccess = "transfer processed successfully"
	StageUpdatedSuccess      = "surgery stage updated successfully"
	SurgeryCompletedSuccess  = "surgery completed successfully"
	WardTransferSuccess      = "patient transferred successfully to ward"

	// Department messages
	DepartmentCreatedSuccess     = "department created successfully"
	DepartmentUpdatedSuccess     = "department updated successfully"
	DepartmentDeactivatedSuccess = "department deactivated"
	DepartmentFetchSuccess       = "departments fetched successfully"

	// Ward and bed messages
	WardFetchSuccess      = "wards fetched successfully"
	BedFetchSuccess       = "beds fetched successfully"
	PatientAdmitSuccess   = "patient admitted successfully"
	BedDischargeSuccess   = "patient discharged successfully"

	// OT messages
	OTDataFetchSuccess = "operation theatre data fetched successfully"

	// Pharmacy messages
	DrugCreatedSuccess  = "drug created successfully"
	DrugUpdatedSuccess  = "drug stock updated successfully"
	DrugFetchSuccess    = "drugs fetched successfully"
	BillCreatedSuccess  = "bill created successfully"
	BillFetchSuccess    = "bills fetched successfully"
)
