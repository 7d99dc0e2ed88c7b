package constvars

// Mongo collections
const (
	MongoCollectionPatients    = "patients"
	MongoCollectionDepartments = "departments"
	MongoCollectionDrugs       = "drugs"
	MongoCollectionBills       = "bills"
)

// Patient flow statuses
const (
	PatientStatusWaiting    = "Waiting"
	PatientStatusInProgress = "In Progress"
	PatientStatusCompleted  = "Completed"
	PatientStatusAdmitted   = "Admitted"
	PatientStatusDischarged = "Discharged"
)

// Priorities, ordered Normal < Urgent < Emergency
const (
	PriorityNormal    = "Normal"
	PriorityUrgent    = "Urgent"
	PriorityEmergency = "Emergency"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Operation theatre statuses
const (
	OTStatusWaiting    = "Waiting"
	OTStatusInProgress = "In Progress"
	OTStatusCompleted  = "Completed"
)

// Surgery stages. The engine does not enforce an ordering between these,
// an operator may move a patient backwards.
const (
	SurgeryStagePreOperative = "Pre-operative"
	SurgeryStageAnaesthetic  = "Anaesthetic"
	SurgeryStageSurgical     = "Surgical"
	SurgeryStageRecovery     = "Recovery"
)

const DefaultSurgeryType = "General Surgery"

// Transfer sub-record
const (
	TransferTypeDepartment = "department"
	TransferTypeWard       = "ward"
	TransferTypeOT         = "ot"

	TransferStatusPending   = "Pending"
	TransferStatusCompleted = "Completed"
	TransferStatusRejected  = "Rejected"
)

// Theatre identifiers
const (
	OT1 = "OT1"
	OT2 = "OT2"
	OT3 = "OT3"
)

// Drug stock statuses
const (
	DrugStatusAvailable  = "Available"
	DrugStatusLowStock   = "Low Stock"
	DrugStatusOutOfStock = "Out of Stock"
)

// Drug stock transaction types
const (
	StockTransactionReceived  = "Received"
	StockTransactionDispensed = "Dispensed"
)

const (
	TokenNumberDateLayout     = "060102"
	TokenNumberSequenceWidth  = 3
	BillNumberPrefix          = "BILL-"
	BillNumberSequenceWidth   = 4
	DefaultAttendingDoctor    = "Assigned Doctor"
	RecentPatientsLimit       = 10
	SearchResultsLimit        = 10
)

// Notification event names pushed to connected dashboards
const (
	EventPatientCreated = "patientCreated"
	EventPatientUpdated = "patientUpdated"
	EventOTDataUpdate   = "otDataUpdate"
	EventOTStatsUpdate  = "otStatsUpdate"
	EventBedUpdated     = "bedUpdated"
	EventEmergency      = "emergency"
	EventClearEmergency = "clearEmergency"

	// inbound-only relay messages from dashboard clients
	EventTriggerEmergency = "triggerEmergency"
)
