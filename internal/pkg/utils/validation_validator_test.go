package utils

import (
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() *requests.RegisterPatientRequest {
	age := 32
	return &requests.RegisterPatientRequest{
		Name:          "Anita Sharma",
		Age:           &age,
		Gender:        constvars.GenderFemale,
		DepartmentID:  "dept-1",
		ContactNumber: "9876543210",
	}
}

func TestValidateRegisterPatientRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, ValidateStruct(validRegistration()))
	})

	t.Run("newborn age zero is accepted", func(t *testing.T) {
		request := validRegistration()
		age := 0
		request.Age = &age
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("missing age is rejected", func(t *testing.T) {
		request := validRegistration()
		request.Age = nil
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("age beyond range is rejected", func(t *testing.T) {
		request := validRegistration()
		age := 151
		request.Age = &age
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("unknown gender is rejected", func(t *testing.T) {
		request := validRegistration()
		request.Gender = "Unknown"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("priority is optional but must be a known value", func(t *testing.T) {
		request := validRegistration()
		request.Priority = constvars.PriorityUrgent
		assert.NoError(t, ValidateStruct(request))

		request.Priority = "Critical"
		assert.Error(t, ValidateStruct(request))
	})
}
