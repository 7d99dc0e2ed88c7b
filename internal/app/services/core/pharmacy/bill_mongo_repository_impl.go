package pharmacy

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BillMongoRepository struct {
	Collection *mongo.Collection
}

func NewBillMongoRepository(db *mongo.Client, dbName string) contracts.BillRepository {
	return &BillMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBills),
	}
}

func (r *BillMongoRepository) Create(ctx context.Context, bill *models.PharmacyBill) (string, error) {
	result, err := r.Collection.InsertOne(ctx, bill)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BillMongoRepository) FindByID(ctx context.Context, billID string) (*models.PharmacyBill, error) {
	objectID, err := primitive.ObjectIDFromHex(billID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var bill models.PharmacyBill
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (r *BillMongoRepository) FindAll(ctx context.Context) ([]models.PharmacyBill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bills := []models.PharmacyBill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bills, nil
}

func (r *BillMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
