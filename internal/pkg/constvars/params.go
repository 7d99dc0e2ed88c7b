package constvars

const (
	URLParamPatientID    = "patient_id"
	URLParamDepartmentID = "department_id"
	URLParamOTID         = "ot_id"
	URLParamWardID       = "ward_id"
	URLParamBedID        = "bed_id"
	URLParamDrugID       = "drug_id"
	URLParamBillID       = "bill_id"
)

const (
	URLQueryParamTerm = "term"
)
