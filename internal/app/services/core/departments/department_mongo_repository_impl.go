package departments

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

type DepartmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDepartmentMongoRepository(db *mongo.Client, dbName string) contracts.DepartmentRepository {
	return &DepartmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDepartments),
	}
}

func (r *DepartmentMongoRepository) Create(ctx context.Context, department *models.Department) (string, error) {
	result, err := r.Collection.InsertOne(ctx, department)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DepartmentMongoRepository) Update(ctx context.Context, department *models.Department) error {
	objectID, err := primitive.ObjectIDFromHex(department.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	replacement := *department
	replacement.ID = ""
	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, replacement)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DepartmentMongoRepository) FindByID(ctx context.Context, departmentID string) (*models.Department, error) {
	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var department models.Department
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindActive(ctx context.Context) ([]models.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	departments := []models.Department{}
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return departments, nil
}
