package constvars

const (
	LoggingPatientIDKey    = "patient_id"
	LoggingDepartmentIDKey = "department_id"
	LoggingOTIDKey         = "ot_id"
	LoggingWardIDKey       = "ward_id"
	LoggingBedIDKey        = "bed_id"
	LoggingEventKey        = "event"
	LoggingRedisKey        = "redis_key"
	LoggingDataKey         = "data"
)
