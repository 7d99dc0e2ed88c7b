package constvars

// Validation messages for request DTOs, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"oneof":         "must be one of %s",
	"priority":      "must be Normal, Urgent or Emergency",
	"gender":        "must be Male, Female or Other",
	"transfer_type": "must be department, ward or ot",
	"ot_id":         "must be OT1, OT2 or OT3",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"

	ErrClientPatientNotFound        = "patient not found"
	ErrClientDepartmentNotFound     = "department not found"
	ErrClientWardNotFound           = "ward not found"
	ErrClientBedNotFound            = "bed not found"
	ErrClientTheatreNotFound        = "operation theatre not found"
	ErrClientDrugNotFound           = "drug not found"
	ErrClientBillNotFound           = "bill not found"
	ErrClientBedAlreadyOccupied     = "bed is already occupied"
	ErrClientBedNotOccupied         = "bed is not occupied"
	ErrClientTransferAlreadyPending = "patient already has a pending ward transfer"
	ErrClientNoPendingWardTransfer  = "no pending ward transfer for this patient"
	ErrClientPatientNotInTheatre    = "patient has no active operation theatre"
	ErrClientSurgeryAlreadyComplete = "surgery is already completed"
	ErrClientNoAvailableBeds        = "no available beds in the selected ward"
	ErrClientInsufficientStock      = "insufficient stock"
	ErrClientSearchTermRequired     = "search term is required"
	ErrClientWardBusy               = "ward is busy, please retry"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "request validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevPatientNotFound        = "patient document not found"
	ErrDevDepartmentNotFound     = "department document not found"
	ErrDevDepartmentInactive     = "department is deactivated"
	ErrDevTheatreNotFound        = "ot id is not one of the provisioned theatres"
	ErrDevWardNotFound           = "ward not registered in the directory"
	ErrDevBedNotFound            = "bed not registered in the pool"
	ErrDevBedAlreadyOccupied     = "bed already occupied"
	ErrDevBedNotOccupied         = "bed already vacant"
	ErrDevTransferAlreadyPending = "duplicate pending ward transfer"
	ErrDevNoPendingWardTransfer  = "transfer sub-record missing or not a pending ward transfer"
	ErrDevPatientNotInTheatre    = "currentOT is not set"
	ErrDevSurgeryAlreadyComplete = "otStatus already Completed"
	ErrDevNoAvailableBeds        = "ward has no unoccupied beds"
	ErrDevInsufficientStock      = "dispense quantity exceeds stock"
	ErrDevWardLockNotAcquired    = "ward allocation lock not acquired"

	// Mongo messages
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToCountDocuments  = "failed to count documents"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID       = "string is not a valid ObjectID"

	// Redis messages
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisPublish       = "failed to publish message to redis channel"
	ErrDevRedisTrySetNX      = "failed to execute SETNX on redis"

	// RabbitMQ messages
	ErrDevQueuePublish = "failed to publish message to event queue"
)
