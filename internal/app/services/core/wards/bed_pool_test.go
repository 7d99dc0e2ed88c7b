package wards

import (
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testOccupant(patientID string) models.BedOccupant {
	return models.BedOccupant{
		PatientID:     patientID,
		Name:          "Test Patient",
		Age:           40,
		Gender:        "Male",
		AdmissionDate: time.Now(),
		DepartmentID:  "dept-1",
		Doctor:        "Assigned Doctor",
	}
}

func TestNewBedPool(t *testing.T) {
	pool := NewBedPool(DefaultWards(), zap.NewNop())

	wards := pool.Wards()
	require.Len(t, wards, 5)

	total := 0
	for _, ward := range wards {
		beds := pool.WardBeds(ward.ID)
		assert.Len(t, beds, ward.Capacity)
		total += ward.Capacity
	}
	assert.Len(t, pool.Beds(), total)

	bed, err := pool.Bed("General-1")
	require.NoError(t, err)
	assert.Equal(t, 1, bed.Number)
	assert.Equal(t, "General", bed.Ward)
	assert.False(t, bed.IsOccupied)
}

func TestBedPool_AllocateBed(t *testing.T) {
	t.Run("allocates lowest numbered free bed first", func(t *testing.T) {
		pool := NewBedPool(DefaultWards(), zap.NewNop())

		first, err := pool.AllocateBed("ICU", testOccupant("p1"))
		require.NoError(t, err)
		assert.Equal(t, "ICU-1", first.ID)

		second, err := pool.AllocateBed("ICU", testOccupant("p2"))
		require.NoError(t, err)
		assert.Equal(t, "ICU-2", second.ID)
	})

	t.Run("skips occupied beds", func(t *testing.T) {
		pool := NewBedPool(DefaultWards(), zap.NewNop())

		_, err := pool.Occupy("ICU-1", testOccupant("p1"))
		require.NoError(t, err)

		bed, err := pool.AllocateBed("ICU", testOccupant("p2"))
		require.NoError(t, err)
		assert.Equal(t, "ICU-2", bed.ID)
	})

	t.Run("returns nil without error when the ward is full", func(t *testing.T) {
		pool := NewBedPool([]models.Ward{{ID: "Tiny", Name: "Tiny Ward", Capacity: 2, Floor: 1}}, zap.NewNop())

		for i := 0; i < 2; i++ {
			bed, err := pool.AllocateBed("Tiny", testOccupant("p"))
			require.NoError(t, err)
			require.NotNil(t, bed)
		}

		bed, err := pool.AllocateBed("Tiny", testOccupant("p3"))
		require.NoError(t, err)
		assert.Nil(t, bed)
	})

	t.Run("unknown ward", func(t *testing.T) {
		pool := NewBedPool(DefaultWards(), zap.NewNop())

		_, err := pool.AllocateBed("Cardiology", testOccupant("p1"))
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestBedPool_Occupy(t *testing.T) {
	pool := NewBedPool(DefaultWards(), zap.NewNop())

	bed, err := pool.Occupy("General-3", testOccupant("p1"))
	require.NoError(t, err)
	assert.True(t, bed.IsOccupied)
	require.NotNil(t, bed.Patient)
	assert.Equal(t, "p1", bed.Patient.PatientID)

	t.Run("double occupy conflicts", func(t *testing.T) {
		_, err := pool.Occupy("General-3", testOccupant("p2"))
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("unknown bed", func(t *testing.T) {
		_, err := pool.Occupy("General-999", testOccupant("p2"))
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestBedPool_Vacate(t *testing.T) {
	pool := NewBedPool(DefaultWards(), zap.NewNop())

	_, err := pool.Occupy("Recovery-1", testOccupant("p1"))
	require.NoError(t, err)

	bed, err := pool.Vacate("Recovery-1")
	require.NoError(t, err)
	assert.False(t, bed.IsOccupied)
	assert.Nil(t, bed.Patient)

	t.Run("double vacate conflicts", func(t *testing.T) {
		_, err := pool.Vacate("Recovery-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestBedPool_CopiesAreIsolated(t *testing.T) {
	pool := NewBedPool(DefaultWards(), zap.NewNop())

	bed, err := pool.Occupy("ICU-1", testOccupant("p1"))
	require.NoError(t, err)

	// mutating the returned copy must not leak into the pool
	bed.Patient.PatientID = "tampered"
	bed.IsOccupied = false

	fresh, err := pool.Bed("ICU-1")
	require.NoError(t, err)
	assert.True(t, fresh.IsOccupied)
	assert.Equal(t, "p1", fresh.Patient.PatientID)
}
