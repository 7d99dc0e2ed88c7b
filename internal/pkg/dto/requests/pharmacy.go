package requests

import "time"

type CreateDrugRequest struct {
	Name         string     `json:"name" validate:"required"`
	Code         string     `json:"code" validate:"required"`
	Category     string     `json:"category"`
	Manufacturer string     `json:"manufacturer"`
	Description  string     `json:"description"`
	UnitPrice    float64    `json:"unitPrice" validate:"required,min=0"`
	Stock        DrugStockRequest `json:"stock" validate:"required"`
	BatchNumber  string     `json:"batchNumber"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	Location     DrugLocationRequest `json:"location"`
}

type DrugStockRequest struct {
	Quantity      int    `json:"quantity" validate:"min=0"`
	Unit          string `json:"unit"`
	ReorderLevel  int    `json:"reorderLevel" validate:"min=0"`
	CriticalLevel int    `json:"criticalLevel" validate:"min=0"`
}

type DrugLocationRequest struct {
	Shelf string `json:"shelf"`
	Bin   string `json:"bin"`
}

type UpdateStockRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Type     string `json:"type" validate:"required,oneof=Received Dispensed"`
}

type CreateBillRequest struct {
	PatientID string                `json:"patientId" validate:"required"`
	Doctor    string                `json:"doctor"`
	Medicines []BillMedicineRequest `json:"medicines" validate:"required,min=1,dive"`
	Subtotal  float64               `json:"subtotal" validate:"min=0"`
	Tax       float64               `json:"tax" validate:"min=0"`
	Total     float64               `json:"total" validate:"min=0"`
}

type BillMedicineRequest struct {
	DrugID    string  `json:"drugId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" validate:"min=0"`
	Total     float64 `json:"total" validate:"min=0"`
}
