package utils

import (
	"medflow-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("priority", validatePriority)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("transfer_type", validateTransferType)
	validate.RegisterValidation("ot_id", validateOTID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.PriorityNormal ||
		value == constvars.PriorityUrgent ||
		value == constvars.PriorityEmergency
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.GenderMale ||
		value == constvars.GenderFemale ||
		value == constvars.GenderOther
}

func validateTransferType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.TransferTypeDepartment ||
		value == constvars.TransferTypeWard ||
		value == constvars.TransferTypeOT
}

func validateOTID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.OT1 || value == constvars.OT2 || value == constvars.OT3
}
