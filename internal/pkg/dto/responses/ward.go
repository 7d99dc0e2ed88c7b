package responses

import "medflow-service/internal/app/models"

// AdmissionResult pairs the updated patient with the bed they landed in.
// Bed is nil on the best-effort path when the ward was full.
type AdmissionResult struct {
	Patient *models.Patient `json:"patient"`
	Bed     *models.Bed     `json:"bed"`
}
