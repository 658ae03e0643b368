package appointments

import (
	"context"
	"geics-service/internal/app/models"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	// _id is stored as ObjectID hex so both backends hand out plain strings.
	appointment.ID = primitive.NewObjectID().Hex()
	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Confirm(ctx context.Context, appointmentID string, date time.Time, timeOfDay string) (*models.Appointment, error) {
	filter := bson.M{"_id": appointmentID}
	update := bson.M{"$set": bson.M{
		"status":          constvars.AppointmentStatusConfirmed,
		"appointmentDate": date,
		"appointmentTime": timeOfDay,
	}}

	var appointment models.Appointment
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) Delete(ctx context.Context, appointmentID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": appointmentID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
