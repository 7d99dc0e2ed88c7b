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

type DrugMongoRepository struct {
	Collection *mongo.Collection
}

func NewDrugMongoRepository(db *mongo.Client, dbName string) contracts.DrugRepository {
	return &DrugMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDrugs),
	}
}

func (r *DrugMongoRepository) Create(ctx context.Context, drug *models.Drug) (string, error) {
	result, err := r.Collection.InsertOne(ctx, drug)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DrugMongoRepository) Update(ctx context.Context, drug *models.Drug) error {
	objectID, err := primitive.ObjectIDFromHex(drug.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	replacement := *drug
	replacement.ID = ""
	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, replacement)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DrugMongoRepository) FindByID(ctx context.Context, drugID string) (*models.Drug, error) {
	objectID, err := primitive.ObjectIDFromHex(drugID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var drug models.Drug
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&drug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &drug, nil
}

func (r *DrugMongoRepository) FindAll(ctx context.Context) ([]models.Drug, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.findMany(ctx, bson.M{}, opts)
}

func (r *DrugMongoRepository) SearchByName(ctx context.Context, term string, limit int) ([]models.Drug, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": term, "$options": "i"}},
			{"code": bson.M{"$regex": term, "$options": "i"}},
		},
	}
	opts := options.Find().SetLimit(int64(limit))
	return r.findMany(ctx, filter, opts)
}

func (r *DrugMongoRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Drug, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	drugs := []models.Drug{}
	if err := cursor.All(ctx, &drugs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return drugs, nil
}
