package patients

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientMongoRepository) Update(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	// full replacement so cleared optional fields (currentOT, transfer)
	// are removed from the stored document
	replacement := *patient
	replacement.ID = ""
	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, replacement)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findMany(ctx, bson.M{}, opts)
}

func (r *PatientMongoRepository) FindRecent(ctx context.Context, limit int) ([]models.Patient, error) {
	filter := bson.M{"status": bson.M{"$ne": constvars.PatientStatusCompleted}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.findMany(ctx, filter, opts)
}

func (r *PatientMongoRepository) SearchByName(ctx context.Context, term string, limit int) ([]models.Patient, error) {
	filter := bson.M{"name": bson.M{"$regex": term, "$options": "i"}}
	opts := options.Find().SetLimit(int64(limit))
	return r.findMany(ctx, filter, opts)
}

func (r *PatientMongoRepository) HighestTokenNumber(ctx context.Context, prefix string) (string, error) {
	filter := bson.M{"tokenNumber": bson.M{"$regex": "^" + prefix}}
	opts := options.FindOne().SetSort(bson.D{{Key: "tokenNumber", Value: -1}})

	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", exceptions.ErrMongoDBFindDocument(err)
	}
	return patient.TokenNumber, nil
}

func (r *PatientMongoRepository) FindWaitingByDepartment(ctx context.Context, departmentID string) ([]models.Patient, error) {
	filter := bson.M{
		"departmentId": departmentID,
		"status":       constvars.PatientStatusWaiting,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.findMany(ctx, filter, opts)
}

func (r *PatientMongoRepository) FindCurrentInDepartment(ctx context.Context, departmentID string) (*models.Patient, error) {
	filter := bson.M{
		"departmentId": departmentID,
		"status":       constvars.PatientStatusInProgress,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) CountByDepartmentAndStatus(ctx context.Context, departmentID, status string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"departmentId": departmentID,
		"status":       status,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *PatientMongoRepository) CountPendingTransfersByDepartment(ctx context.Context, departmentID string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"departmentId":    departmentID,
		"transfer.status": constvars.TransferStatusPending,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *PatientMongoRepository) FindTheatreCurrent(ctx context.Context, otID string) (*models.Patient, error) {
	// $ne also matches documents where surgeryStage is absent
	filter := bson.M{
		"currentOT":    otID,
		"otStatus":     constvars.OTStatusInProgress,
		"surgeryStage": bson.M{"$ne": constvars.SurgeryStagePreOperative},
	}
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindTheatrePreOperative(ctx context.Context, otID string) (*models.Patient, error) {
	filter := bson.M{
		"currentOT":    otID,
		"otStatus":     constvars.OTStatusInProgress,
		"surgeryStage": constvars.SurgeryStagePreOperative,
	}
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindTheatreQueue(ctx context.Context, otID string) ([]models.Patient, error) {
	filter := bson.M{
		"$or": []bson.M{
			{
				"currentOT": otID,
				"otStatus":  constvars.OTStatusWaiting,
			},
			{
				"transfer.type":     constvars.TransferTypeOT,
				"transfer.targetId": otID,
				"transfer.status":   constvars.TransferStatusPending,
			},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.findMany(ctx, filter, opts)
}

func (r *PatientMongoRepository) CountTheatreScheduled(ctx context.Context) (int64, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"otStatus": bson.M{"$in": []string{constvars.OTStatusWaiting, constvars.OTStatusInProgress}}},
			{
				"transfer.type":   constvars.TransferTypeOT,
				"transfer.status": constvars.TransferStatusPending,
			},
		},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *PatientMongoRepository) CountTheatreInProgress(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"otStatus": constvars.OTStatusInProgress})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *PatientMongoRepository) CountTheatreCompletedSince(ctx context.Context, since time.Time) (int64, error) {
	filter := bson.M{
		"otStatus":             constvars.OTStatusCompleted,
		"stageNotes.timestamp": bson.M{"$gte": since},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *PatientMongoRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Patient, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}
