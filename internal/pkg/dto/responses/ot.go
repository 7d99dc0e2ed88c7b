package responses

import "medflow-service/internal/app/models"

// TheatreBoard is one operation theatre's live view: the patient on the
// table, the patient being prepared, and the waiting queue.
type TheatreBoard struct {
	OTID         string           `json:"otId"`
	Current      *models.Patient  `json:"current"`
	PreOperative *models.Patient  `json:"preOperative"`
	Queue        []models.Patient `json:"queue"`
}

type TheatreStats struct {
	TotalScheduled int64 `json:"totalScheduled"`
	InProgress     int64 `json:"inProgress"`
	CompletedToday int64 `json:"completedToday"`
}

type TheatreOverview struct {
	Theatres map[string]*TheatreBoard `json:"otData"`
	Stats    *TheatreStats            `json:"stats"`
}
