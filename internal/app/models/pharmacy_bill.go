package models

import "time"

type PharmacyBill struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	BillNumber string         `json:"billNumber" bson:"billNumber"`
	Date       time.Time      `json:"date" bson:"date"`
	PatientID  string         `json:"patientId" bson:"patientId"`
	Doctor     string         `json:"doctor,omitempty" bson:"doctor,omitempty"`
	Medicines  []BillMedicine `json:"medicines" bson:"medicines"`
	Subtotal   float64        `json:"subtotal" bson:"subtotal"`
	Tax        float64        `json:"tax" bson:"tax"`
	Total      float64        `json:"total" bson:"total"`
}

type BillMedicine struct {
	DrugID    string  `json:"drugId" bson:"drugId"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unitPrice" bson:"unitPrice"`
	Total     float64 `json:"total" bson:"total"`
}
