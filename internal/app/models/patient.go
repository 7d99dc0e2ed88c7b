package models

import (
	"medflow-service/internal/pkg/constvars"
	"time"
)

// Patient is one person's single active visit. It is never hard-deleted,
// the status moves to a terminal value instead.
type Patient struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	TokenNumber   string `json:"tokenNumber" bson:"tokenNumber"`
	Name          string `json:"name" bson:"name"`
	Age           int    `json:"age" bson:"age"`
	Gender        string `json:"gender" bson:"gender"`
	ContactNumber string `json:"contactNumber" bson:"contactNumber"`

	DepartmentID string `json:"departmentId" bson:"departmentId"`
	Priority     string `json:"priority" bson:"priority"`
	Status       string `json:"status" bson:"status"`

	CurrentOT     string     `json:"currentOT,omitempty" bson:"currentOT,omitempty"`
	OTStatus      string     `json:"otStatus,omitempty" bson:"otStatus,omitempty"`
	SurgeryType   string     `json:"surgeryType,omitempty" bson:"surgeryType,omitempty"`
	SurgeryStage  string     `json:"surgeryStage,omitempty" bson:"surgeryStage,omitempty"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty" bson:"scheduledTime,omitempty"`

	CurrentWard string `json:"currentWard,omitempty" bson:"currentWard,omitempty"`
	CurrentBed  string `json:"currentBed,omitempty" bson:"currentBed,omitempty"`

	Transfer *Transfer `json:"transfer,omitempty" bson:"transfer,omitempty"`

	// StageNotes is the only retained history, an append-only log of
	// surgery stage changes.
	StageNotes []StageNote `json:"stageNotes" bson:"stageNotes"`

	TimeModel `bson:",inline"`
}

// Transfer is the embedded request-to-move sub-record. Pending means the
// patient has not physically moved yet, Completed means the location
// fields already reflect the move.
type Transfer struct {
	Type        string     `json:"type" bson:"type"`
	TargetID    string     `json:"targetId" bson:"targetId"`
	Status      string     `json:"status" bson:"status"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	RequestedAt time.Time  `json:"requestedAt" bson:"requestedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

type StageNote struct {
	Stage     string    `json:"stage" bson:"stage"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

func (p *Patient) HasPendingWardTransfer() bool {
	return p.Transfer != nil &&
		p.Transfer.Type == constvars.TransferTypeWard &&
		p.Transfer.Status == constvars.TransferStatusPending
}

func (p *Patient) HasPendingOTTransfer() bool {
	return p.Transfer != nil &&
		p.Transfer.Type == constvars.TransferTypeOT &&
		p.Transfer.Status == constvars.TransferStatusPending
}

func (p *Patient) InTheatre() bool {
	return p.CurrentOT != ""
}

// ClearTheatre wipes every OT-related field. Used when the patient is
// routed away from a theatre they currently hold.
func (p *Patient) ClearTheatre() {
	p.CurrentOT = ""
	p.OTStatus = ""
	p.SurgeryType = ""
	p.ScheduledTime = nil
}

func (p *Patient) AppendStageNote(stage, notes string, at time.Time) {
	p.StageNotes = append(p.StageNotes, StageNote{
		Stage:     stage,
		Notes:     notes,
		Timestamp: at,
	})
}

// PriorityRank maps priorities onto an ordering usable in queue sorts,
// higher means seen first.
func PriorityRank(priority string) int {
	switch priority {
	case constvars.PriorityEmergency:
		return 3
	case constvars.PriorityUrgent:
		return 2
	case constvars.PriorityNormal:
		return 1
	default:
		return 0
	}
}
