package models

import (
	"medflow-service/internal/pkg/constvars"
	"time"
)

type Drug struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Code         string    `json:"code" bson:"code"`
	Category     string    `json:"category,omitempty" bson:"category,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	UnitPrice    float64   `json:"unitPrice" bson:"unitPrice"`
	Stock        DrugStock `json:"stock" bson:"stock"`
	Status       string    `json:"status" bson:"status"`
	BatchNumber  string    `json:"batchNumber,omitempty" bson:"batchNumber,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	Location     DrugLocation       `json:"location" bson:"location"`
	Transactions []StockTransaction `json:"transactions" bson:"transactions"`

	TimeModel `bson:",inline"`
}

type DrugStock struct {
	Quantity      int    `json:"quantity" bson:"quantity"`
	Unit          string `json:"unit,omitempty" bson:"unit,omitempty"`
	ReorderLevel  int    `json:"reorderLevel" bson:"reorderLevel"`
	CriticalLevel int    `json:"criticalLevel" bson:"criticalLevel"`
}

type DrugLocation struct {
	Shelf string `json:"shelf,omitempty" bson:"shelf,omitempty"`
	Bin   string `json:"bin,omitempty" bson:"bin,omitempty"`
}

type StockTransaction struct {
	Type      string    `json:"type" bson:"type"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	PatientID string    `json:"patientId,omitempty" bson:"patientId,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// RefreshStatus derives the stock status from the current quantity and
// the configured thresholds.
func (d *Drug) RefreshStatus() {
	switch {
	case d.Stock.Quantity <= 0:
		d.Status = constvars.DrugStatusOutOfStock
	case d.Stock.Quantity <= d.Stock.CriticalLevel:
		d.Status = constvars.DrugStatusLowStock
	default:
		d.Status = constvars.DrugStatusAvailable
	}
}
