package responses

import "medflow-service/internal/app/models"

// DepartmentSummary is a directory entry enriched with live queue counts.
type DepartmentSummary struct {
	models.Department
	WaitingCount     int64 `json:"waitingCount"`
	InProgressCount  int64 `json:"inProgressCount"`
	PendingTransfers int64 `json:"pendingTransfers"`
}

// DepartmentBoard is the per-department dashboard view.
type DepartmentBoard struct {
	Department       models.Department `json:"department"`
	CurrentPatient   *models.Patient   `json:"currentPatient"`
	Queue            []models.Patient  `json:"queue"`
	WaitingCount     int64             `json:"waitingCount"`
	InProgressCount  int64             `json:"inProgressCount"`
	PendingTransfers int64             `json:"pendingTransfers"`
}
