package contracts

import "medflow-service/internal/app/models"

// BedPool tracks occupancy of the fixed, pre-provisioned set of beds per
// ward. Implementations must make AllocateBed a single critical section,
// two concurrent transfers into the same ward must never claim the same
// bed.
type BedPool interface {
	Wards() []models.Ward
	Ward(wardID string) (*models.Ward, error)
	Beds() []models.Bed
	WardBeds(wardID string) []models.Bed
	Bed(bedID string) (*models.Bed, error)

	// AllocateBed occupies the first unoccupied bed of the ward, lowest
	// bed number first. Returns (nil, nil) when the ward exists but has
	// no free bed.
	AllocateBed(wardID string, occupant models.BedOccupant) (*models.Bed, error)

	Occupy(bedID string, occupant models.BedOccupant) (*models.Bed, error)
	Vacate(bedID string) (*models.Bed, error)
}
