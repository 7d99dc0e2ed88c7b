package models

import "time"

// Ward is a static directory entry. Capacity is fixed at startup and
// determines how many beds the pool pre-creates for the ward.
type Ward struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Floor    int    `json:"floor"`
}

// Bed is owned by the bed pool and written only through the engine's
// admission and discharge paths. IsOccupied is true exactly when
// Patient is set.
type Bed struct {
	ID         string       `json:"id"`
	Number     int          `json:"number"`
	Ward       string       `json:"ward"`
	IsOccupied bool         `json:"isOccupied"`
	Patient    *BedOccupant `json:"patient,omitempty"`
}

// BedOccupant is a denormalized snapshot of the admitted patient taken
// at occupation time.
type BedOccupant struct {
	PatientID     string    `json:"patientId"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	AdmissionDate time.Time `json:"admissionDate"`
	DepartmentID  string    `json:"departmentId"`
	Doctor        string    `json:"doctor"`
}
