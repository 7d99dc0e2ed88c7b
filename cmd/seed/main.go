package main

import (
	"context"
	"fmt"
	"medflow-service/internal/app/config"
	"medflow-service/internal/app/drivers/database"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seeds the department directory, a handful of sample patients and a
// starter drug formulary. Drops the affected collections first, run it
// against a fresh database only.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{
		constvars.MongoCollectionPatients,
		constvars.MongoCollectionDepartments,
		constvars.MongoCollectionDrugs,
		constvars.MongoCollectionBills,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			logrus.Fatalf("Failed to drop collection %s: %v", name, err)
		}
	}

	departmentIDs := seedDepartments(ctx, db)
	seedPatients(ctx, db, departmentIDs)
	seedDrugs(ctx, db)

	logrus.Println("Seeding completed")
}

func seedDepartments(ctx context.Context, db *mongo.Database) []string {
	now := time.Now()
	seed := []struct {
		name        string
		description string
		floor       int
	}{
		{"General Medicine", "Outpatient consultations and general care", 1},
		{"Cardiology", "Heart and vascular care", 2},
		{"Orthopedics", "Bone and joint care", 2},
		{"Pediatrics", "Child healthcare", 3},
		{"Emergency", "24/7 emergency care", 1},
	}

	documents := make([]interface{}, len(seed))
	for i, item := range seed {
		documents[i] = models.Department{
			Name:        item.name,
			Description: item.description,
			Floor:       item.floor,
			IsActive:    true,
			TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
	}

	result, err := db.Collection(constvars.MongoCollectionDepartments).InsertMany(ctx, documents)
	if err != nil {
		logrus.Fatalf("Failed to seed departments: %v", err)
	}
	logrus.Printf("Seeded %d departments", len(result.InsertedIDs))

	ids := make([]string, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID).Hex()
	}
	return ids
}

func seedPatients(ctx context.Context, db *mongo.Database, departmentIDs []string) {
	now := time.Now()
	prefix := now.Format(constvars.TokenNumberDateLayout)
	seed := []struct {
		name     string
		age      int
		gender   string
		priority string
		contact  string
	}{
		{"Ramesh Kumar", 45, constvars.GenderMale, constvars.PriorityNormal, "9876543210"},
		{"Anita Sharma", 32, constvars.GenderFemale, constvars.PriorityUrgent, "9876501234"},
		{"Vijay Menon", 58, constvars.GenderMale, constvars.PriorityEmergency, "9812345678"},
		{"Lakshmi Iyer", 7, constvars.GenderFemale, constvars.PriorityNormal, "9898989898"},
	}

	documents := make([]interface{}, len(seed))
	for i, item := range seed {
		documents[i] = models.Patient{
			TokenNumber:   fmt.Sprintf("%s%0*d", prefix, constvars.TokenNumberSequenceWidth, i+1),
			Name:          item.name,
			Age:           item.age,
			Gender:        item.gender,
			ContactNumber: item.contact,
			DepartmentID:  departmentIDs[i%len(departmentIDs)],
			Priority:      item.priority,
			Status:        constvars.PatientStatusWaiting,
			StageNotes:    []models.StageNote{},
			TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
	}

	result, err := db.Collection(constvars.MongoCollectionPatients).InsertMany(ctx, documents)
	if err != nil {
		logrus.Fatalf("Failed to seed patients: %v", err)
	}
	logrus.Printf("Seeded %d patients", len(result.InsertedIDs))
}

func seedDrugs(ctx context.Context, db *mongo.Database) {
	now := time.Now()
	seed := []models.Drug{
		{
			Name:         "Paracetamol 500mg",
			Code:         "PARA500",
			Category:     "Analgesic",
			Manufacturer: "Cipla",
			UnitPrice:    2.50,
			Stock:        models.DrugStock{Quantity: 500, Unit: "tablets", ReorderLevel: 100, CriticalLevel: 50},
			Location:     models.DrugLocation{Shelf: "A1", Bin: "3"},
		},
		{
			Name:         "Amoxicillin 250mg",
			Code:         "AMOX250",
			Category:     "Antibiotic",
			Manufacturer: "Sun Pharma",
			UnitPrice:    8.00,
			Stock:        models.DrugStock{Quantity: 200, Unit: "capsules", ReorderLevel: 60, CriticalLevel: 30},
			Location:     models.DrugLocation{Shelf: "A2", Bin: "1"},
		},
		{
			Name:         "Atorvastatin 10mg",
			Code:         "ATOR10",
			Category:     "Statin",
			Manufacturer: "Ranbaxy",
			UnitPrice:    12.75,
			Stock:        models.DrugStock{Quantity: 40, Unit: "tablets", ReorderLevel: 50, CriticalLevel: 25},
			Location:     models.DrugLocation{Shelf: "B1", Bin: "2"},
		},
		{
			Name:         "Insulin Glargine",
			Code:         "INSGLA",
			Category:     "Antidiabetic",
			Manufacturer: "Biocon",
			UnitPrice:    450.00,
			Stock:        models.DrugStock{Quantity: 0, Unit: "vials", ReorderLevel: 20, CriticalLevel: 10},
			Location:     models.DrugLocation{Shelf: "C1", Bin: "1"},
		},
	}

	documents := make([]interface{}, len(seed))
	for i := range seed {
		seed[i].Transactions = []models.StockTransaction{}
		seed[i].RefreshStatus()
		seed[i].TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		documents[i] = seed[i]
	}

	result, err := db.Collection(constvars.MongoCollectionDrugs).InsertMany(ctx, documents)
	if err != nil {
		logrus.Fatalf("Failed to seed drugs: %v", err)
	}
	logrus.Printf("Seeded %d drugs", len(result.InsertedIDs))
}
